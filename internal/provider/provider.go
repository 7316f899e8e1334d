package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/fr4nk3nst1ner/salarystats/internal/client"
	"github.com/fr4nk3nst1ner/salarystats/internal/config"
	"github.com/fr4nk3nst1ner/salarystats/internal/models"
	"github.com/fr4nk3nst1ner/salarystats/internal/salary"
	"github.com/fr4nk3nst1ner/salarystats/internal/utils"
)

var ErrUnknownSource = errors.New("unknown source")

// Provider is a job board that can be walked page by page.
// Each implementation decides on its own whether another page follows.
type Provider interface {
	Name() string
	Title() string
	// Currency is the code the board uses for rubles
	Currency() string
	FetchPage(ctx context.Context, query string, page int) (*models.Page, error)
}

// New creates the provider registered under source
func New(source string, cfg *config.Config, httpClient *http.Client) (Provider, error) {
	switch utils.NormalizeSource(source) {
	case utils.SourceHeadHunter:
		return NewHeadHunter(cfg, httpClient), nil
	case utils.SourceSuperJob:
		return NewSuperJob(cfg, httpClient), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, source)
	}
}

// Options control how Collect walks a provider
type Options struct {
	SearchText func(language string) string
	MaxPages   int
	// OnLanguage is called after every analyzed language
	OnLanguage func(stats models.LanguageStats)
}

// Collect analyzes every language on one provider, in order
func Collect(ctx context.Context, p Provider, languages []string, opts Options) (models.Report, error) {
	report := models.Report{
		Provider: p.Name(),
		Title:    p.Title(),
		Stats:    make([]models.LanguageStats, 0, len(languages)),
	}

	for _, language := range languages {
		query := language
		if opts.SearchText != nil {
			query = opts.SearchText(language)
		}

		stats, err := Analyze(ctx, p, language, query, opts.MaxPages)
		if err != nil {
			return report, err
		}
		report.Stats = append(report.Stats, stats)

		if opts.OnLanguage != nil {
			opts.OnLanguage(stats)
		}
	}

	return report, nil
}

// Analyze walks all result pages of query and aggregates the salaries.
// The found count comes from the first page. When the first page carries a
// page count, every page it covers is requested even if one of them comes
// back empty; otherwise paging stops as soon as a page reports no more.
// maxPages caps the walk either way.
func Analyze(ctx context.Context, p Provider, language, query string, maxPages int) (models.LanguageStats, error) {
	stats := models.LanguageStats{Language: language}
	agg := salary.NewAggregator(p.Currency())
	pages := 0

	for page := 0; maxPages <= 0 || page < maxPages; page++ {
		result, err := p.FetchPage(ctx, query, page)
		if err != nil {
			return stats, fmt.Errorf("%s: fetch page %d for %q: %w", p.Name(), page, language, err)
		}

		if page == 0 {
			stats.VacanciesFound = result.Found
			pages = result.Pages
		}
		agg.Add(result.Vacancies...)

		more := result.More
		if pages > 0 {
			more = page+1 < pages
		}
		if !more {
			break
		}
		if page+1 == maxPages {
			log.Warn().Str("provider", p.Name()).Str("language", language).Int("max_pages", maxPages).
				Msg("page limit reached before the last page")
		}
	}

	stats.VacanciesProcessed = agg.Processed()
	stats.AverageSalary = agg.Average()

	log.Debug().Str("provider", p.Name()).Str("language", language).
		Int("found", stats.VacanciesFound).Int("processed", stats.VacanciesProcessed).
		Msg("language analyzed")

	return stats, nil
}

// getJSON performs a GET request and decodes a JSON body into out.
// Transport failures are returned as errors. A response that cannot be
// used (bad status, unreadable or malformed body) is logged and reported
// through the boolean so callers can fall back to an empty page.
func getJSON(ctx context.Context, httpClient *http.Client, name, apiURL string, headers http.Header, out any) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}
	for key, values := range headers {
		req.Header[key] = values
	}

	log.Debug().Str("provider", name).Str("url", apiURL).Msg("fetching page")

	resp, err := httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := client.ReadResponseBody(resp)
	if err != nil {
		log.Warn().Err(err).Str("provider", name).Msg("failed to read response body")
		return false, nil
	}

	if resp.StatusCode != http.StatusOK {
		log.Warn().Str("provider", name).Int("status", resp.StatusCode).
			Str("body", client.DescribeBody(resp.Header.Get("Content-Type"), body)).
			Msg("unexpected response status")
		return false, nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		log.Warn().Err(err).Str("provider", name).
			Str("body", client.DescribeBody(resp.Header.Get("Content-Type"), body)).
			Msg("failed to parse JSON response")
		return false, nil
	}

	return true, nil
}
