// Package config loads runtime settings from the environment and an optional .env file.
package config

import (
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultAPIURL    = "https://api.github.com/"
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "github-activity-cli"
)

// Config holds the application configuration.
type Config struct {
	// APIURL is the REST API root. It always ends with a slash.
	APIURL    string
	Timeout   time.Duration
	UserAgent string
}

// Load reads the configuration from environment variables.
// A .env file in the working directory is loaded first if present;
// variables already set in the environment win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	timeout := DefaultTimeout
	if raw := getEnv("GITHUB_ACTIVITY_TIMEOUT", ""); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, &ConfigError{Field: "GITHUB_ACTIVITY_TIMEOUT", Message: "must be a duration such as 30s"}
		}
		timeout = d
	}

	cfg := &Config{
		APIURL:    withTrailingSlash(getEnv("GITHUB_API_URL", DefaultAPIURL)),
		Timeout:   timeout,
		UserAgent: getEnv("GITHUB_ACTIVITY_USER_AGENT", DefaultUserAgent),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// getEnv returns the value of an environment variable or a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func withTrailingSlash(s string) string {
	if strings.HasSuffix(s, "/") {
		return s
	}
	return s + "/"
}

// Validate validates the configuration
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return &ConfigError{Field: "GITHUB_API_URL", Message: "must be an absolute URL"}
	}
	if !strings.HasSuffix(u.Path, "/") {
		return &ConfigError{Field: "GITHUB_API_URL", Message: "must end with a slash"}
	}
	if c.Timeout <= 0 {
		return &ConfigError{Field: "GITHUB_ACTIVITY_TIMEOUT", Message: "must be positive"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
