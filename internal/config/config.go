package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds client configuration
type Config struct {
	BaseURL        string
	DBPath         string
	LogLevel       string
	LogFormat      string // text or json
	HTTPTimeout    time.Duration
	PollInterval   time.Duration
	SearchDebounce time.Duration
}

// Load reads configuration from the environment, with a local .env file
// taken into account when present
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	cfg := &Config{
		BaseURL:        getEnv("SHAREBOX_API_URL", "http://127.0.0.1:8000/api"),
		DBPath:         getEnv("SHAREBOX_DB", "sharebox-client.db"),
		LogLevel:       getEnv("SHAREBOX_LOG_LEVEL", "info"),
		LogFormat:      getEnv("SHAREBOX_LOG_FORMAT", "text"),
		HTTPTimeout:    getDuration("SHAREBOX_HTTP_TIMEOUT", 30*time.Second),
		PollInterval:   getDuration("SHAREBOX_POLL_INTERVAL", 3500*time.Millisecond),
		SearchDebounce: getDuration("SHAREBOX_SEARCH_DEBOUNCE", 300*time.Millisecond),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks configuration for correctness
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("SHAREBOX_API_URL cannot be empty")
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")

	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("SHAREBOX_HTTP_TIMEOUT must be positive")
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("SHAREBOX_POLL_INTERVAL must be positive")
	}
	if c.SearchDebounce <= 0 {
		return fmt.Errorf("SHAREBOX_SEARCH_DEBOUNCE must be positive")
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		slog.Warn("invalid duration in environment, using default", "key", key, "value", value)
		return fallback
	}
	return d
}
