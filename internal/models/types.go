package models

// Vacancy is the provider-neutral salary range of a single job posting.
// A zero bound means the provider did not publish it.
type Vacancy struct {
	From     float64 `json:"from"`
	To       float64 `json:"to"`
	Currency string  `json:"currency"`
}

// Page is one page of search results as seen by the pagination loop.
// Pages is the total page count for boards that report one, 0 otherwise.
type Page struct {
	Found     int       `json:"found"`
	Pages     int       `json:"pages"`
	Vacancies []Vacancy `json:"vacancies"`
	More      bool      `json:"more"`
}

// LanguageStats holds the salary statistics for one language on one provider
type LanguageStats struct {
	Language           string `json:"language"`
	VacanciesFound     int    `json:"vacancies_found"`
	VacanciesProcessed int    `json:"vacancies_processed"`
	AverageSalary      *int   `json:"average_salary"`
}

// Report groups the statistics collected from a single provider
type Report struct {
	Provider string          `json:"provider"`
	Title    string          `json:"title"`
	Stats    []LanguageStats `json:"stats"`
}

// Totals sums found and processed vacancies over all languages
func (r Report) Totals() (found, processed int) {
	for _, s := range r.Stats {
		found += s.VacanciesFound
		processed += s.VacanciesProcessed
	}
	return found, processed
}
