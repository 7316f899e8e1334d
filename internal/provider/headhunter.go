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

// HHSearchResponse represents the response from the hh.ru vacancy search API
type HHSearchResponse struct {
	Found int         `json:"found"`
	Pages int         `json:"pages"`
	Page  int         `json:"page"`
	Items []HHVacancy `json:"items"`
}

// HHVacancy represents a single vacancy from hh.ru
type HHVacancy struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Salary *HHSalary `json:"salary"`
}

// HHSalary is nullable as a whole, and so are both of its bounds
type HHSalary struct {
	From     *float64 `json:"from"`
	To       *float64 `json:"to"`
	Currency string   `json:"currency"`
}

type HeadHunter struct {
	cfg        config.HeadHunterConfig
	perPage    int
	headers    http.Header
	httpClient *http.Client
}

func NewHeadHunter(cfg *config.Config, httpClient *http.Client) *HeadHunter {
	return &HeadHunter{
		cfg:        cfg.HeadHunter,
		perPage:    cfg.PerPage,
		headers:    client.DefaultHeaders(cfg.UserAgent),
		httpClient: httpClient,
	}
}

func (p *HeadHunter) Name() string     { return utils.SourceHeadHunter }
func (p *HeadHunter) Title() string    { return p.cfg.Title }
func (p *HeadHunter) Currency() string { return p.cfg.Currency }

// FetchPage requests one page of search results. hh.ru reports the total
// number of pages, so another page follows while page+1 < pages. A page that
// could not be used comes back empty and without a page count.
func (p *HeadHunter) FetchPage(ctx context.Context, query string, page int) (*models.Page, error) {
	apiURL, err := p.buildURL(query, page)
	if err != nil {
		return nil, err
	}

	var resp HHSearchResponse
	ok, err := getJSON(ctx, p.httpClient, p.Name(), apiURL, p.headers, &resp)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &models.Page{}, nil
	}

	return &models.Page{
		Found:     resp.Found,
		Pages:     resp.Pages,
		Vacancies: convertHHVacancies(resp.Items),
		More:      page+1 < resp.Pages,
	}, nil
}

func (p *HeadHunter) buildURL(query string, page int) (string, error) {
	u, err := url.Parse(p.cfg.BaseURL)
	if err != nil {
		return "", err
	}

	q := u.Query()
	q.Set("area", strconv.Itoa(p.cfg.Area))
	q.Set("text", query)
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(p.perPage))
	u.RawQuery = q.Encode()

	return u.String(), nil
}

func convertHHVacancies(items []HHVacancy) []models.Vacancy {
	vacancies := make([]models.Vacancy, 0, len(items))
	for _, item := range items {
		if item.Salary == nil {
			vacancies = append(vacancies, models.Vacancy{})
			continue
		}
		vacancies = append(vacancies, models.Vacancy{
			From:     valueOrZero(item.Salary.From),
			To:       valueOrZero(item.Salary.To),
			Currency: item.Salary.Currency,
		})
	}
	return vacancies
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
