// Package config loads runtime configuration for the LotteRich CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables, optionally from a .env file (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend REST API
//	-t int      request timeout (seconds)
//	-p int      tickets per page
//	-e string   export directory
//	-l string   log level
//
// # JSON schema
//
// Durations are strings accepted by time.ParseDuration:
//
//	{
//	  "api_base_url": "http://127.0.0.1:8080/api",
//	  "request_timeout": "5s",
//	  "page_size": 5
//	}
//
// # Environment
//
// LOTTERICH_API_URL, LOTTERICH_REQUEST_TIMEOUT, LOTTERICH_TOKEN_FILE,
// LOTTERICH_PAGE_SIZE, LOTTERICH_EXPORT_DIR, LOTTERICH_LOG_LEVEL. A .env
// file in the working directory is honored.
//
// Primary API
//
//   - type Config                     — holds the runtime settings
//   - func LoadConfig() *Config       — builds Config by applying all sources
//   - func (*Config) LoadDefaults()   — sets sensible defaults
package config
