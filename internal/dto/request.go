package dto

import (
	"time"

	"github.com/Eursukkul/aquaagro-admin/internal/models"
)

type DraftRequest struct {
	TierID    string `json:"tier"`
	VisitDate string `json:"visit_date" validate:"omitempty,datetime=2006-01-02"`
	Adults    int    `json:"adults" validate:"gte=0"`
	Children  int    `json:"children" validate:"gte=0"`
}

// CreateBookingRequest submits either a saved draft or an inline form.
type CreateBookingRequest struct {
	DraftID   string `json:"draft_id"`
	TierID    string `json:"tier" validate:"required_without=DraftID"`
	VisitDate string `json:"visit_date" validate:"omitempty,datetime=2006-01-02"`
	Adults    int    `json:"adults" validate:"gte=0"`
	Children  int    `json:"children" validate:"gte=0"`
}

type QuoteQuery struct {
	TierID   string `query:"tier"`
	Adults   int    `query:"adults" validate:"gte=0"`
	Children int    `query:"children" validate:"gte=0"`
}

func (r DraftRequest) ToDraft() models.BookingDraft {
	return toDraft(r.TierID, r.VisitDate, r.Adults, r.Children)
}

func (r CreateBookingRequest) ToDraft() models.BookingDraft {
	return toDraft(r.TierID, r.VisitDate, r.Adults, r.Children)
}

// toDraft expects a validated date; an empty date stays zero.
func toDraft(tier, date string, adults, children int) models.BookingDraft {
	d := models.BookingDraft{TierID: tier, Adults: adults, Children: children}
	if date != "" {
		d.VisitDate, _ = time.Parse(time.DateOnly, date)
	}
	return d
}
