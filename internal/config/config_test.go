package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("empty path returns defaults", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("missing file returns defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(tmpDir, "nonexistent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("file overrides selected fields", func(t *testing.T) {
		yamlContent := `
languages: [Go, Rust]
per_page: 50
timeout: 5s
headhunter:
  area: 2
  title: HeadHunter Saint Petersburg
`
		path := filepath.Join(tmpDir, "salarystats.yaml")
		require.NoError(t, os.WriteFile(path, []byte(yamlContent), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, []string{"Go", "Rust"}, cfg.Languages)
		assert.Equal(t, 50, cfg.PerPage)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
		assert.Equal(t, 2, cfg.HeadHunter.Area)
		assert.Equal(t, "HeadHunter Saint Petersburg", cfg.HeadHunter.Title)
		// untouched fields keep their defaults
		assert.Equal(t, "https://api.hh.ru/vacancies", cfg.HeadHunter.BaseURL)
		assert.Equal(t, "RUR", cfg.HeadHunter.Currency)
		assert.Equal(t, 4, cfg.SuperJob.Town)
	})

	t.Run("broken yaml", func(t *testing.T) {
		path := filepath.Join(tmpDir, "broken.yaml")
		require.NoError(t, os.WriteFile(path, []byte("languages: [Go"), 0644))

		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestApplyEnv(t *testing.T) {
	t.Run("SJ_TOKEN wins", func(t *testing.T) {
		t.Setenv(EnvSuperJobToken, "token")
		t.Setenv(EnvSuperJobAppID, "app-id")

		cfg := Default()
		cfg.ApplyEnv()
		assert.Equal(t, "token", cfg.SuperJob.APIKey)
	})

	t.Run("falls back to API_APP_ID", func(t *testing.T) {
		t.Setenv(EnvSuperJobToken, "")
		t.Setenv(EnvSuperJobAppID, "app-id")

		cfg := Default()
		cfg.ApplyEnv()
		assert.Equal(t, "app-id", cfg.SuperJob.APIKey)
	})

	t.Run("keeps file value when env is empty", func(t *testing.T) {
		t.Setenv(EnvSuperJobToken, "")
		t.Setenv(EnvSuperJobAppID, "")

		cfg := Default()
		cfg.SuperJob.APIKey = "from-file"
		cfg.ApplyEnv()
		assert.Equal(t, "from-file", cfg.SuperJob.APIKey)
	})
}

func TestLoadEnvFile(t *testing.T) {
	t.Setenv(EnvSuperJobToken, "")
	t.Setenv(EnvSuperJobAppID, "")
	// godotenv never overrides variables that exist, even empty ones
	require.NoError(t, os.Unsetenv(EnvSuperJobToken))

	path := filepath.Join(t.TempDir(), "secret.env")
	require.NoError(t, os.WriteFile(path, []byte("SJ_TOKEN=v3.r.secret\n"), 0600))

	require.NoError(t, LoadEnvFile(path))

	cfg := Default()
	cfg.ApplyEnv()
	assert.Equal(t, "v3.r.secret", cfg.SuperJob.APIKey)

	assert.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")))
	assert.NoError(t, LoadEnvFile(""))
}

func TestValidate(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate([]string{"headhunter"}))
	assert.ErrorIs(t, cfg.Validate([]string{"headhunter", "superjob"}), ErrMissingAPIKey)

	cfg.SuperJob.APIKey = "key"
	assert.NoError(t, cfg.Validate([]string{"headhunter", "superjob"}))

	cfg.Languages = nil
	assert.ErrorIs(t, cfg.Validate([]string{"headhunter"}), ErrNoLanguages)

	cfg = Default()
	cfg.PerPage = 500
	assert.Error(t, cfg.Validate([]string{"headhunter"}))

	cfg = Default()
	assert.ErrorIs(t, cfg.Validate([]string{"sj"}), ErrMissingAPIKey, "aliases are normalized")
}

func TestValidateRejectsEmptyCurrency(t *testing.T) {
	path := filepath.Join(t.TempDir(), "salarystats.yaml")
	require.NoError(t, os.WriteFile(path, []byte("headhunter:\n  currency: \"\"\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.ErrorIs(t, cfg.Validate([]string{"headhunter"}), ErrMissingCurrency)

	cfg = Default()
	cfg.SuperJob.Currency = ""
	assert.ErrorIs(t, cfg.Validate([]string{"headhunter"}), ErrMissingCurrency)
}

func TestSearchText(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "Программист Go", cfg.SearchText("Go"))

	cfg.SearchPrefix = ""
	assert.Equal(t, "Go", cfg.SearchText("Go"))
}
