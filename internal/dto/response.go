package dto

import (
	"time"

	"github.com/Eursukkul/aquaagro-admin/internal/models"
	"github.com/Eursukkul/aquaagro-admin/internal/pricing"
)

type RideResponse struct {
	models.Ride
	OccupancyPercent int               `json:"occupancy_percent"`
	Load             pricing.LoadLevel `json:"load"`
}

type ActivityResponse struct {
	models.Activity
	OccupancyPercent int               `json:"occupancy_percent"`
	Load             pricing.LoadLevel `json:"load"`
}

// ListResponse wraps a filtered list with the size of the unfiltered one.
type ListResponse[T any] struct {
	Items   []T `json:"items"`
	Showing int `json:"showing"`
	Total   int `json:"total"`
	Summary any `json:"summary,omitempty"`
}

type BookingResponse struct {
	Reference   string               `json:"reference"`
	TierID      string               `json:"tier"`
	VisitDate   string               `json:"visit_date"`
	Adults      int                  `json:"adults"`
	Children    int                  `json:"children"`
	Total       int                  `json:"total"`
	Status      models.BookingStatus `json:"status"`
	ConfirmedAt *time.Time           `json:"confirmed_at,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
}

type DraftResponse struct {
	ID    string              `json:"id"`
	Draft models.BookingDraft `json:"draft"`
	Total int                 `json:"total"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToRideResponse(r models.Ride) RideResponse {
	pct, load := pricing.Load(r.CurrentGuests, r.Capacity)
	return RideResponse{Ride: r, OccupancyPercent: pct, Load: load}
}

func ToActivityResponse(a models.Activity) ActivityResponse {
	pct, load := pricing.Load(a.CurrentGuests, a.Capacity)
	return ActivityResponse{Activity: a, OccupancyPercent: pct, Load: load}
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	return BookingResponse{
		Reference:   b.Reference,
		TierID:      b.TierID,
		VisitDate:   b.VisitDate.Format(time.DateOnly),
		Adults:      b.Adults,
		Children:    b.Children,
		Total:       b.Total,
		Status:      b.Status,
		ConfirmedAt: b.ConfirmedAt,
		CreatedAt:   b.CreatedAt,
	}
}
