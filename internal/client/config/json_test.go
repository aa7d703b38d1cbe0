package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJson(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{
  "api_base_url": "https://lotterich.example.com/api",
  "request_timeout": "7s",
  "page_size": 20,
  "export_dir": "out"
}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	os.Args = []string{"cmd", "-c", path}

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, "https://lotterich.example.com/api", c.APIBaseURL)
	assert.Equal(t, 7*time.Second, c.RequestTimeout)
	assert.Equal(t, 20, c.PageSize)
	assert.Equal(t, "out", c.ExportDir)
	assert.Equal(t, "info", c.LogLevel, "fields absent from JSON keep their defaults")
}

func TestParseJson_NoFileFlag(t *testing.T) {
	os.Args = []string{"cmd"}

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, "http://127.0.0.1:8080/api", c.APIBaseURL)
}

func TestParseJson_MalformedFilePanics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))

	os.Args = []string{"cmd", "-c", path}

	var c Config
	c.LoadDefaults()
	require.Panics(t, func() { parseJson(&c) })
}
