// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// DefaultBaseURL is the API root used when no configuration overrides it.
const DefaultBaseURL = "http://localhost:8000/api/v1"

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or environment overrides.
type Config struct {
	BaseURL        string `json:"base_url,omitempty"`        // API root including version prefix
	TimeoutSeconds int    `json:"timeout_seconds,omitempty"` // HTTP request timeout
	SessionDir     string `json:"session_dir,omitempty"`     // Override for the token store directory
	Verbose        bool   `json:"verbose,omitempty"`         // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv returns a Config populated from environment variables. godotenv has
// already folded any .env file into the environment by the time this runs.
func FromEnv() Config {
	cfg := Config{
		BaseURL:    os.Getenv("RESUME_OPTIMIZER_BASE_URL"),
		SessionDir: os.Getenv("RESUME_OPTIMIZER_SESSION_DIR"),
	}
	if raw := os.Getenv("RESUME_OPTIMIZER_TIMEOUT_SECONDS"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			cfg.TimeoutSeconds = n
		}
	}
	return cfg
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.BaseURL != "" {
		parsed, err := url.Parse(c.BaseURL)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config error: 'base_url' is not a valid URL: %s", c.BaseURL)
		}
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'timeout_seconds' must be non-negative")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// CLI flags win over config file values, which win over built-in defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.BaseURL == "" {
		result.BaseURL = defaults.BaseURL
	}
	if result.BaseURL == "" {
		result.BaseURL = DefaultBaseURL
	}
	if result.SessionDir == "" {
		result.SessionDir = defaults.SessionDir
	}
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Timeout returns the configured HTTP timeout as a duration, or zero when
// unset so the API client applies its own default.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
