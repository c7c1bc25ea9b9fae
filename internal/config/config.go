// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Careers  string `json:"careers,omitempty"`  // Path to career catalog JSON file
	Clusters string `json:"clusters,omitempty"` // Path to overlap clusters JSON file

	// Behavior
	TopN    int  `json:"top_n,omitempty"`   // How many ranked matches to return
	Verbose bool `json:"verbose,omitempty"` // Print detailed score breakdowns

	// Services
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key for roadmap generation

	// Logging
	LogJSON bool `json:"log_json,omitempty"` // JSON log encoding (server deployments)
	Debug   bool `json:"debug,omitempty"`    // Debug-level logging
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

// Validate checks that the configuration has valid values. Required fields
// are handled by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.TopN < 0 {
		return fmt.Errorf("config error: 'top_n' must be non-negative")
	}
	if c.Careers != "" {
		if _, err := os.Stat(c.Careers); err != nil {
			return fmt.Errorf("config error: 'careers' file not found: %s", c.Careers)
		}
	}
	if c.Clusters != "" {
		if _, err := os.Stat(c.Clusters); err != nil {
			return fmt.Errorf("config error: 'clusters' file not found: %s", c.Clusters)
		}
	}
	return nil
}
