package config

import "time"

// Config holds runtime settings for the LotteRich CLI.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST API, including the /api prefix.
//   - RequestTimeout: per-request timeout applied by the HTTP client.
//   - TokenFile: where the session token is persisted; empty selects the
//     default location under the user config directory.
//   - PageSize: tickets per page in the list view.
//   - ExportDir: directory (relative to the working directory) export files
//     land in.
//   - LogLevel: minimum level for the structured logger (debug/info/warn/error).
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	TokenFile      string
	PageSize       int
	ExportDir      string
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080/api"
	c.RequestTimeout = 5 * time.Second
	c.TokenFile = ""
	c.PageSize = 5
	c.ExportDir = "exports"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
