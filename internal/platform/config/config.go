package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	APIBaseURL  string
	Environment string
	HTTPTimeout time.Duration
	DebugHTTP   bool
	TokenFile   string
	PageSize    int
}

func Load() Config {
	return Config{
		APIBaseURL:  getEnv("HR_API_BASE_URL", "http://localhost:8080/api/v1"),
		Environment: getEnv("HR_ENV", "development"),
		HTTPTimeout: getEnvDuration("HR_HTTP_TIMEOUT", 15*time.Second),
		DebugHTTP:   getEnvBool("HR_DEBUG_HTTP", false),
		TokenFile:   getEnv("HR_TOKEN_FILE", defaultTokenFile()),
		PageSize:    getEnvInt("HR_PAGE_SIZE", 10),
	}
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".hrmobile-token"
	}
	return home + "/.hrmobile-token"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.APIBaseURL) == "" {
		return fmt.Errorf("HR_API_BASE_URL is required")
	}
	if _, err := url.ParseRequestURI(c.APIBaseURL); err != nil {
		return fmt.Errorf("HR_API_BASE_URL must be a valid URL: %w", err)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HR_HTTP_TIMEOUT must be positive")
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("HR_PAGE_SIZE must be positive")
	}
	// Debug body previews can leak payloads; refuse them in production.
	if c.Environment == "production" && c.DebugHTTP {
		return fmt.Errorf("HR_DEBUG_HTTP must be disabled in production")
	}
	return nil
}
