package models

// Activity is a guided agro activity (tours, workshops).
type Activity struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Status        AttractionStatus `json:"status"`
	Capacity      int              `json:"capacity"`
	CurrentGuests int              `json:"current_guests"`
	Duration      string           `json:"duration"`
	Description   string           `json:"description"`
	NextTour      string           `json:"next_tour"`
	Guide         string           `json:"guide"`
}

func (a Activity) SearchFields() []string {
	return []string{a.Name}
}

func (a Activity) Attr(name string) (string, bool) {
	switch name {
	case "status":
		return string(a.Status), true
	case "guide":
		return a.Guide, true
	}
	return "", false
}
