package ui

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/salarystats/internal/models"
	"github.com/fr4nk3nst1ner/salarystats/internal/utils"
)

var tableHeader = []string{"Language", "Vacancies found", "Vacancies processed", "Average salary"}

// RenderTable formats a provider report as a boxed table titled with the
// report title. Languages are lower-cased; a missing average leaves the
// cell empty.
func RenderTable(report models.Report, colorize bool) (string, error) {
	data := pterm.TableData{tableHeader}
	for _, s := range report.Stats {
		avg := utils.FormatSalary(s.AverageSalary)
		if colorize {
			avg = ColorizeSalary(s.AverageSalary)
		}
		data = append(data, []string{
			strings.ToLower(s.Language),
			strconv.Itoa(s.VacanciesFound),
			strconv.Itoa(s.VacanciesProcessed),
			avg,
		})
	}

	table, err := pterm.DefaultTable.
		WithHasHeader().
		WithHeaderRowSeparator("-").
		WithRowSeparator("-").
		WithData(data).
		Srender()
	if err != nil {
		return "", fmt.Errorf("failed to render table: %w", err)
	}

	return pterm.DefaultBox.WithTitle(report.Title).Sprint(table), nil
}

// RenderSummary is a one line total for a report
func RenderSummary(report models.Report) string {
	found, processed := report.Totals()
	return fmt.Sprintf("%s: %s vacancies found, %s with a salary estimate",
		report.Title, humanize.Comma(int64(found)), humanize.Comma(int64(processed)))
}

// RenderJSON encodes the reports for machine consumption
func RenderJSON(reports []models.Report) (string, error) {
	out, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode reports: %w", err)
	}
	return string(out), nil
}
