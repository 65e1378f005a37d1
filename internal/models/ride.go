package models

type AttractionStatus string

const (
	StatusOpen        AttractionStatus = "open"
	StatusMaintenance AttractionStatus = "maintenance"
)

// Ride is a water ride as shown on the water rides page.
type Ride struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Status          AttractionStatus `json:"status"`
	Capacity        int              `json:"capacity"`
	CurrentGuests   int              `json:"current_guests"`
	WaitTime        string           `json:"wait_time"`
	Description     string           `json:"description"`
	MaintenanceNext string           `json:"maintenance_next"`
}

func (r Ride) SearchFields() []string {
	return []string{r.Name}
}

func (r Ride) Attr(name string) (string, bool) {
	switch name {
	case "status":
		return string(r.Status), true
	}
	return "", false
}
