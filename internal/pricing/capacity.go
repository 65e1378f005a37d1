package pricing

type LoadLevel string

const (
	LoadLow    LoadLevel = "low"
	LoadMedium LoadLevel = "medium"
	LoadHigh   LoadLevel = "high"
)

// Load classifies how full an attraction is. Percent is truncated.
func Load(current, capacity int) (percent int, level LoadLevel) {
	if capacity <= 0 {
		return 0, LoadLow
	}
	percent = current * 100 / capacity
	switch {
	case percent >= 80:
		return percent, LoadHigh
	case percent >= 60:
		return percent, LoadMedium
	}
	return percent, LoadLow
}
