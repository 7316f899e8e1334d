package salary

import "github.com/fr4nk3nst1ner/salarystats/internal/models"

const (
	lowerBoundFactor = 1.2
	upperBoundFactor = 0.8
)

// Estimate derives a single expected salary from a vacancy's range.
// It reports false when the vacancy is paid in another currency or
// carries no bounds at all.
func Estimate(v models.Vacancy, currency string) (float64, bool) {
	if v.Currency != currency {
		return 0, false
	}

	switch {
	case v.From > 0 && v.To > 0:
		return (v.From + v.To) / 2, true
	case v.From > 0:
		return v.From * lowerBoundFactor, true
	case v.To > 0:
		return v.To * upperBoundFactor, true
	default:
		return 0, false
	}
}
