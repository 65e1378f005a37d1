package pricing

import "github.com/Eursukkul/aquaagro-admin/internal/models"

const (
	TierWaterPark = "water-park"
	TierAgroTour  = "agro-tour"
	TierCombo     = "combo"
)

// RateTable maps a tier id to its adult and child rates.
type RateTable map[string]models.Rates

func DefaultRates() RateTable {
	return RateTable{
		TierWaterPark: {Adult: 25, Child: 15},
		TierAgroTour:  {Adult: 20, Child: 12},
		TierCombo:     {Adult: 40, Child: 25},
	}
}

// Price returns the booking total. An unknown or empty tier prices at zero,
// as do negative head counts.
func (rt RateTable) Price(tier string, adults, children int) int {
	r, ok := rt[tier]
	if !ok {
		return 0
	}
	return max(adults, 0)*r.Adult + max(children, 0)*r.Child
}

func (rt RateTable) Has(tier string) bool {
	_, ok := rt[tier]
	return ok
}

var tierInfo = []models.Tier{
	{ID: TierWaterPark, Name: "Water Park Only", Description: "Access to all water rides and pools"},
	{ID: TierAgroTour, Name: "Agro Tour Only", Description: "Farm activities and animal feeding"},
	{ID: TierCombo, Name: "Combo Package", Description: "Full access to water park + agro activities"},
}

// Tiers lists the tiers known to rt in display order.
func (rt RateTable) Tiers() []models.Tier {
	out := make([]models.Tier, 0, len(tierInfo))
	for _, t := range tierInfo {
		r, ok := rt[t.ID]
		if !ok {
			continue
		}
		t.Rates = r
		out = append(out, t)
	}
	return out
}
