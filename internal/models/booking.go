package models

import "time"

type BookingStatus string

const (
	StatusIdle       BookingStatus = "idle"
	StatusProcessing BookingStatus = "processing"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusCancelled  BookingStatus = "cancelled"
	StatusFailed     BookingStatus = "failed"
)

// Booking is a ticket booking. Only confirmed bookings are persisted.
type Booking struct {
	ID          uint          `gorm:"primaryKey" json:"-"`
	Reference   string        `gorm:"type:varchar(36);uniqueIndex;not null" json:"reference"`
	TierID      string        `gorm:"type:varchar(32);not null" json:"tier"`
	VisitDate   time.Time     `gorm:"type:date;not null" json:"visit_date"`
	Adults      int           `gorm:"not null" json:"adults"`
	Children    int           `gorm:"not null" json:"children"`
	Total       int           `gorm:"not null" json:"total"`
	Status      BookingStatus `gorm:"type:varchar(20);not null;default:'confirmed'" json:"status"`
	ConfirmedAt *time.Time    `json:"confirmed_at,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func (b Booking) SearchFields() []string {
	return []string{b.Reference, b.TierID}
}

func (b Booking) Attr(name string) (string, bool) {
	switch name {
	case "tier":
		return b.TierID, true
	case "status":
		return string(b.Status), true
	}
	return "", false
}

// BookingDraft is the booking form while a visitor fills it in.
type BookingDraft struct {
	TierID    string    `json:"tier"`
	VisitDate time.Time `json:"visit_date"`
	Adults    int       `json:"adults"`
	Children  int       `json:"children"`
}

// NewBookingDraft returns the form defaults: one adult, no children.
func NewBookingDraft() BookingDraft {
	return BookingDraft{Adults: 1}
}
