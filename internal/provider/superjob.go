package provider

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/fr4nk3nst1ner/salarystats/internal/client"
	"github.com/fr4nk3nst1ner/salarystats/internal/config"
	"github.com/fr4nk3nst1ner/salarystats/internal/models"
	"github.com/fr4nk3nst1ner/salarystats/internal/utils"
)

const sjAppIDHeader = "X-Api-App-Id"

// SJSearchResponse represents the response from the SuperJob vacancy search API
type SJSearchResponse struct {
	Total   int         `json:"total"`
	More    bool        `json:"more"`
	Objects []SJVacancy `json:"objects"`
}

// SJVacancy represents a single vacancy from SuperJob.
// Missing salary bounds come back as 0.
type SJVacancy struct {
	ID          int     `json:"id"`
	Profession  string  `json:"profession"`
	PaymentFrom float64 `json:"payment_from"`
	PaymentTo   float64 `json:"payment_to"`
	Currency    string  `json:"currency"`
}

type SuperJob struct {
	cfg        config.SuperJobConfig
	perPage    int
	headers    http.Header
	httpClient *http.Client
}

func NewSuperJob(cfg *config.Config, httpClient *http.Client) *SuperJob {
	headers := client.DefaultHeaders(cfg.UserAgent)
	headers.Set(sjAppIDHeader, cfg.SuperJob.APIKey)

	return &SuperJob{
		cfg:        cfg.SuperJob,
		perPage:    cfg.PerPage,
		headers:    headers,
		httpClient: httpClient,
	}
}

func (p *SuperJob) Name() string     { return utils.SourceSuperJob }
func (p *SuperJob) Title() string    { return p.cfg.Title }
func (p *SuperJob) Currency() string { return p.cfg.Currency }

// FetchPage requests one page of search results. SuperJob does not report a
// page count; every page carries a "more" flag instead.
func (p *SuperJob) FetchPage(ctx context.Context, query string, page int) (*models.Page, error) {
	apiURL, err := p.buildURL(query, page)
	if err != nil {
		return nil, err
	}

	var resp SJSearchResponse
	ok, err := getJSON(ctx, p.httpClient, p.Name(), apiURL, p.headers, &resp)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &models.Page{}, nil
	}

	vacancies := make([]models.Vacancy, len(resp.Objects))
	for i, obj := range resp.Objects {
		vacancies[i] = models.Vacancy{
			From:     obj.PaymentFrom,
			To:       obj.PaymentTo,
			Currency: obj.Currency,
		}
	}

	return &models.Page{
		Found:     resp.Total,
		Vacancies: vacancies,
		More:      resp.More,
	}, nil
}

func (p *SuperJob) buildURL(query string, page int) (string, error) {
	u, err := url.Parse(p.cfg.BaseURL)
	if err != nil {
		return "", err
	}

	q := u.Query()
	q.Set("town", strconv.Itoa(p.cfg.Town))
	q.Set("keyword", query)
	q.Set("count", strconv.Itoa(p.perPage))
	q.Set("page", strconv.Itoa(page)) // SuperJob pages are 0-based
	u.RawQuery = q.Encode()

	return u.String(), nil
}
