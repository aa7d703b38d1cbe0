package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8080/api", c.APIBaseURL)
	assert.Equal(t, 5*time.Second, c.RequestTimeout)
	assert.Equal(t, 5, c.PageSize)
	assert.Equal(t, "exports", c.ExportDir)
	assert.Equal(t, "info", c.LogLevel)
	assert.Empty(t, c.TokenFile)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://127.0.0.1:8080/api", cfg.APIBaseURL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("LOTTERICH_API_URL", "https://lotterich.example.com/api")
	t.Setenv("LOTTERICH_REQUEST_TIMEOUT", "10s")
	t.Setenv("LOTTERICH_PAGE_SIZE", "10")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "https://lotterich.example.com/api", c.APIBaseURL)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, 10, c.PageSize)
}

func TestParseEnv_IgnoresMalformedValues(t *testing.T) {
	t.Setenv("LOTTERICH_REQUEST_TIMEOUT", "soon")
	t.Setenv("LOTTERICH_PAGE_SIZE", "-3")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, 5*time.Second, c.RequestTimeout)
	assert.Equal(t, 5, c.PageSize)
}
