package models

type FeatureToggles struct {
	OnlineBooking       bool `json:"online_booking"`
	MobileNotifications bool `json:"mobile_notifications"`
	WeatherUpdates      bool `json:"weather_updates"`
	MaintenanceMode     bool `json:"maintenance_mode"`
	DynamicPricing      bool `json:"dynamic_pricing"`
	GroupDiscounts      bool `json:"group_discounts"`
}

// Settings is the park configuration edited on the settings page.
type Settings struct {
	ParkName          string         `json:"park_name" validate:"required"`
	ContactEmail      string         `json:"contact_email" validate:"required,email"`
	ContactPhone      string         `json:"contact_phone" validate:"required"`
	Address           string         `json:"address"`
	OpeningHours      string         `json:"opening_hours" validate:"required"`
	ClosingHours      string         `json:"closing_hours"`
	WaterParkPrice    int            `json:"water_park_price" validate:"gte=0"`
	AgroTourPrice     int            `json:"agro_tour_price" validate:"gte=0"`
	ComboPackagePrice int            `json:"combo_package_price" validate:"gte=0"`
	MaxCapacity       int            `json:"max_capacity" validate:"gt=0"`
	Description       string         `json:"description"`
	Features          FeatureToggles `json:"features"`
}
