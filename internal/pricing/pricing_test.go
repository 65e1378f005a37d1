package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrice(t *testing.T) {
	rt := DefaultRates()

	tests := []struct {
		name     string
		tier     string
		adults   int
		children int
		want     int
	}{
		{"combo family", TierCombo, 2, 1, 105},
		{"water park adults only", TierWaterPark, 3, 0, 75},
		{"agro tour children only", TierAgroTour, 0, 2, 24},
		{"no tier selected", "", 2, 2, 0},
		{"unknown tier", "vip", 4, 1, 0},
		{"negative counts", TierCombo, -1, -5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rt.Price(tt.tier, tt.adults, tt.children))
		})
	}
}

func TestPrice_ZeroHeadsIsZeroForEveryTier(t *testing.T) {
	rt := DefaultRates()
	for tier := range rt {
		assert.Equal(t, 0, rt.Price(tier, 0, 0), tier)
	}
}

func TestTiers_DisplayOrder(t *testing.T) {
	tiers := DefaultRates().Tiers()

	assert.Len(t, tiers, 3)
	assert.Equal(t, TierWaterPark, tiers[0].ID)
	assert.Equal(t, TierCombo, tiers[2].ID)
	assert.Equal(t, 40, tiers[2].Rates.Adult)
	assert.Equal(t, 25, tiers[2].Rates.Child)
}

func TestTiers_SkipsMissingRates(t *testing.T) {
	rt := RateTable{TierAgroTour: {Adult: 1, Child: 1}}
	tiers := rt.Tiers()

	assert.Len(t, tiers, 1)
	assert.Equal(t, "Agro Tour Only", tiers[0].Name)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		current, capacity int
		percent           int
		level             LoadLevel
	}{
		{89, 150, 59, LoadLow},
		{12, 20, 60, LoadMedium},
		{8, 10, 80, LoadHigh},
		{0, 100, 0, LoadLow},
		{5, 0, 0, LoadLow},
		{120, 100, 120, LoadHigh},
	}

	for _, tt := range tests {
		p, l := Load(tt.current, tt.capacity)
		assert.Equal(t, tt.percent, p, "%d/%d", tt.current, tt.capacity)
		assert.Equal(t, tt.level, l, "%d/%d", tt.current, tt.capacity)
	}
}
