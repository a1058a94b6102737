package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the MovieFlix client.
type Config struct {
	BackendURL   string
	CatalogURL   string
	CatalogToken string
	Language     string
	TokenPath    string
	HTTPTimeout  time.Duration
}

// Load builds a Config from environment variables over defaults.
// TokenPath is left empty when unset; the caller resolves the conventional
// location then.
func Load() Config {
	cfg := Config{
		BackendURL:   getEnv("BACKEND_URL", "http://localhost:3000"),
		CatalogURL:   getEnv("TMDB_BASE_URL", ""),
		CatalogToken: getEnv("TMDB_API_TOKEN", ""),
		Language:     getEnv("TMDB_LANGUAGE", "en-US"),
		TokenPath:    getEnv("TOKEN_FILE", ""),
		HTTPTimeout:  15 * time.Second,
	}

	if v := os.Getenv("HTTP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.HTTPTimeout = d
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
