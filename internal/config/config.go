package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/fr4nk3nst1ner/salarystats/internal/utils"
)

const (
	// EnvSuperJobToken holds the SuperJob application key
	EnvSuperJobToken = "SJ_TOKEN"
	// EnvSuperJobAppID is the older name of the same key
	EnvSuperJobAppID = "API_APP_ID"
	// EnvConfigPath points at an optional YAML config file
	EnvConfigPath = "SALARYSTATS_CONFIG"

	DefaultEnvFile    = "secret.env"
	DefaultConfigFile = "salarystats.yaml"
)

var (
	ErrMissingAPIKey   = errors.New("superjob api key is not set (SJ_TOKEN)")
	ErrNoLanguages     = errors.New("no languages to analyze")
	ErrMissingCurrency = errors.New("headhunter and superjob currencies must be set")
)

// Config is the full runtime configuration
type Config struct {
	Languages    []string         `yaml:"languages"`
	SearchPrefix string           `yaml:"search_prefix"`
	PerPage      int              `yaml:"per_page"`
	MaxPages     int              `yaml:"max_pages"`
	Timeout      time.Duration    `yaml:"timeout"`
	Proxy        string           `yaml:"proxy"`
	UserAgent    string           `yaml:"user_agent"`
	HeadHunter   HeadHunterConfig `yaml:"headhunter"`
	SuperJob     SuperJobConfig   `yaml:"superjob"`
}

type HeadHunterConfig struct {
	BaseURL  string `yaml:"base_url"`
	Area     int    `yaml:"area"`
	Currency string `yaml:"currency"`
	Title    string `yaml:"title"`
}

type SuperJobConfig struct {
	BaseURL  string `yaml:"base_url"`
	Town     int    `yaml:"town"`
	Currency string `yaml:"currency"`
	Title    string `yaml:"title"`
	APIKey   string `yaml:"api_key"` // Prefer SJ_TOKEN env var
}

// Default returns a configuration that queries Moscow vacancies on both boards
func Default() *Config {
	return &Config{
		Languages: []string{
			"Python", "JavaScript", "Java", "C#", "C++",
			"Go", "TypeScript", "Ruby", "PHP", "Kotlin",
		},
		SearchPrefix: "Программист",
		PerPage:      100,
		MaxPages:     50,
		Timeout:      30 * time.Second,
		UserAgent:    "salarystats/1.0 (+https://github.com/fr4nk3nst1ner/salarystats)",
		HeadHunter: HeadHunterConfig{
			BaseURL:  "https://api.hh.ru/vacancies",
			Area:     1,
			Currency: "RUR",
			Title:    "HeadHunter Moscow",
		},
		SuperJob: SuperJobConfig{
			BaseURL:  "https://api.superjob.ru/2.0/vacancies/",
			Town:     4,
			Currency: "rub",
			Title:    "SuperJob Moscow",
		},
	}
}

// Load reads the YAML file at path on top of the defaults.
// An empty path or a missing file yields the defaults without an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file at '%s': %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	return cfg, nil
}

// LoadEnvFile loads variables from a dotenv file without overriding the
// ones already set in the process environment. A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file '%s': %w", path, err)
	}
	return nil
}

// ApplyEnv overlays secrets from the environment
func (c *Config) ApplyEnv() {
	if token := os.Getenv(EnvSuperJobToken); token != "" {
		c.SuperJob.APIKey = token
	} else if appID := os.Getenv(EnvSuperJobAppID); appID != "" {
		c.SuperJob.APIKey = appID
	}
}

// Validate checks the settings needed to query the given sources
func (c *Config) Validate(sources []string) error {
	if len(c.Languages) == 0 {
		return ErrNoLanguages
	}
	if c.PerPage <= 0 || c.PerPage > 100 {
		return fmt.Errorf("per_page must be between 1 and 100, got %d", c.PerPage)
	}
	if c.MaxPages <= 0 {
		return fmt.Errorf("max_pages must be positive, got %d", c.MaxPages)
	}
	if c.HeadHunter.Currency == "" || c.SuperJob.Currency == "" {
		return ErrMissingCurrency
	}
	for _, src := range sources {
		if utils.NormalizeSource(src) == utils.SourceSuperJob && c.SuperJob.APIKey == "" {
			return ErrMissingAPIKey
		}
	}
	return nil
}

// SearchText builds the query sent to the boards for a language
func (c *Config) SearchText(language string) string {
	if c.SearchPrefix == "" {
		return language
	}
	return c.SearchPrefix + " " + language
}
