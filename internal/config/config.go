package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Retrieval service
	SecapioBaseURL string
	SecapioAPIKey  string
	HTTPTimeout    time.Duration

	// Report defaults
	FormType        string
	DefaultTickers  string
	DefaultPageSize int

	// Session store for keys entered through the form
	SessionTTL time.Duration
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		SecapioBaseURL: envOr("SECAPIO_BASE_URL", "https://api.sec-api.io"),
		SecapioAPIKey:  os.Getenv("SECAPIO_API_KEY"),
		HTTPTimeout:    envDuration("HTTP_TIMEOUT", 30*time.Second),

		FormType:        envOr("FORM_TYPE", "10-Q"),
		DefaultTickers:  envOr("DEFAULT_TICKERS", "AAPL,GOOG"),
		DefaultPageSize: envInt("DEFAULT_PAGE_SIZE", 50),

		SessionTTL: envDuration("SESSION_TTL", 12*time.Hour),
	}

	if cfg.DefaultPageSize < 0 {
		cfg.DefaultPageSize = 50
	}
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 12 * time.Hour
	}

	return cfg
}

// Validate checks startup configuration. A missing API key is not an error
// here: the page offers an input form and shows an inline message instead.
func (c Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if c.SecapioBaseURL == "" {
		return fmt.Errorf("SECAPIO_BASE_URL must not be empty")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
