package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with LOTTERICH_* environment variables. A .env
// file in the working directory is loaded first, without overriding
// variables already set in the environment. Malformed values are ignored.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("LOTTERICH_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("LOTTERICH_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("LOTTERICH_TOKEN_FILE"); v != "" {
		cfg.TokenFile = v
	}
	if v := os.Getenv("LOTTERICH_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.PageSize = n
		}
	}
	if v := os.Getenv("LOTTERICH_EXPORT_DIR"); v != "" {
		cfg.ExportDir = v
	}
	if v := os.Getenv("LOTTERICH_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
