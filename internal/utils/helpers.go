package utils

import (
	"strings"

	"github.com/dustin/go-humanize"
)

const (
	SourceHeadHunter = "headhunter"
	SourceSuperJob   = "superjob"
)

// sourceAliases maps accepted spellings to the canonical source name
var sourceAliases = map[string]string{
	"headhunter":  SourceHeadHunter,
	"hh":          SourceHeadHunter,
	"hh.ru":       SourceHeadHunter,
	"superjob":    SourceSuperJob,
	"sj":          SourceSuperJob,
	"superjob.ru": SourceSuperJob,
}

// AllSources lists every supported source in output order
func AllSources() []string {
	return []string{SourceHeadHunter, SourceSuperJob}
}

// NormalizeSource returns the canonical name of a source, or "" if unknown
func NormalizeSource(source string) string {
	return sourceAliases[strings.ToLower(strings.TrimSpace(source))]
}

// IsValidSource checks if the source is supported
func IsValidSource(source string) bool {
	return NormalizeSource(source) != ""
}

// FormatSalary formats an average salary with thousands separators.
// A missing average is rendered as an empty string.
func FormatSalary(avg *int) string {
	if avg == nil {
		return ""
	}
	return humanize.Comma(int64(*avg))
}

// ParseLanguages splits a comma separated list, dropping empty entries
func ParseLanguages(list string) []string {
	var languages []string
	for _, lang := range strings.Split(list, ",") {
		if lang = strings.TrimSpace(lang); lang != "" {
			languages = append(languages, lang)
		}
	}
	return languages
}
