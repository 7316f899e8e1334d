package salary

import "github.com/fr4nk3nst1ner/salarystats/internal/models"

// Average returns the integer-truncated mean of the estimates, or nil when
// there is nothing to average.
func Average(estimates []float64) *int {
	if len(estimates) == 0 {
		return nil
	}

	var sum float64
	for _, e := range estimates {
		sum += e
	}

	avg := int(sum / float64(len(estimates)))
	return &avg
}

// Aggregator collects estimates for one language across all fetched pages
type Aggregator struct {
	currency  string
	estimates []float64
}

// NewAggregator creates an aggregator that only accepts salaries in currency
func NewAggregator(currency string) *Aggregator {
	return &Aggregator{currency: currency}
}

// Add estimates the vacancy and keeps the result if there is one
func (a *Aggregator) Add(vacancies ...models.Vacancy) {
	for _, v := range vacancies {
		if est, ok := Estimate(v, a.currency); ok {
			a.estimates = append(a.estimates, est)
		}
	}
}

// Processed is the number of vacancies that produced an estimate
func (a *Aggregator) Processed() int {
	return len(a.estimates)
}

// Average is the truncated mean of everything added so far
func (a *Aggregator) Average() *int {
	return Average(a.estimates)
}
