package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "API_KEY", "HUMANITIX_BASE_URL", "HUMANITIX_API_KEY", "HUMANITIX_TIMEZONE", "HUMANITIX_TIMEOUT_SECONDS", "HUMANITIX_PAGE", "LOG_DIR", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "https://api.humanitix.com", cfg.Humanitix.BaseURL)
	assert.Equal(t, "Australia/Sydney", cfg.Humanitix.Timezone)
	assert.Equal(t, 10*time.Second, cfg.Humanitix.Timeout)
	assert.Equal(t, 1, cfg.Humanitix.Page)
	assert.Equal(t, "logs", cfg.Log.Dir)
	assert.Empty(t, cfg.Auth.APIKey)
	assert.Empty(t, cfg.Humanitix.APIKey)
	assert.Equal(t, []string{"API_KEY", "HUMANITIX_API_KEY"}, cfg.MissingKeys())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("API_KEY", "inbound")
	t.Setenv("HUMANITIX_BASE_URL", "http://localhost:1234/")
	t.Setenv("HUMANITIX_API_KEY", "outbound")
	t.Setenv("HUMANITIX_TIMEOUT_SECONDS", "3")
	t.Setenv("HUMANITIX_PAGE", "not-a-number")

	cfg := Load()

	assert.Equal(t, ":9000", cfg.Server.Port)
	assert.Equal(t, "inbound", cfg.Auth.APIKey)
	assert.Equal(t, "outbound", cfg.Humanitix.APIKey)
	assert.Equal(t, "http://localhost:1234", cfg.Humanitix.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Humanitix.Timeout)
	assert.Equal(t, 1, cfg.Humanitix.Page, "unparsable values fall back to the default")
	assert.Empty(t, cfg.MissingKeys())
}

func TestLocation(t *testing.T) {
	cfg := &Config{Humanitix: HumanitixConfig{Timezone: "Australia/Sydney"}}
	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Australia/Sydney", loc.String())

	cfg.Humanitix.Timezone = "Mars/Olympus_Mons"
	_, err = cfg.Location()
	assert.Error(t, err)
}
