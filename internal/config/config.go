// Package config provides configuration loading and validation for the CLI
// and the API server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults, environment
// variables, or must be provided via CLI flags.
type Config struct {
	// Paths
	ProfilesDir string `json:"profiles_dir,omitempty"` // Directory holding company profile JSON files
	SourcesCSV  string `json:"sources_csv,omitempty"`  // CSV of reference ToS/Privacy URLs for ingestion

	// Models
	GenerationModel string `json:"generation_model,omitempty"` // LLM model for section drafting
	EmbeddingModel  string `json:"embedding_model,omitempty"`  // Model for corpus embeddings

	// Behavior
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL for the corpus store
	Port        int    `json:"port,omitempty"`         // API server port
	Verbose     bool   `json:"verbose,omitempty"`      // Print per-section progress
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

// Validate checks that the configuration has valid values.
// Required fields are handled by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	if c.SourcesCSV != "" {
		if _, err := os.Stat(c.SourcesCSV); os.IsNotExist(err) {
			return fmt.Errorf("config error: sources CSV not found: %s", c.SourcesCSV)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for
// CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.ProfilesDir == "" {
		result.ProfilesDir = defaults.ProfilesDir
	}
	if result.SourcesCSV == "" {
		result.SourcesCSV = defaults.SourcesCSV
	}
	if result.GenerationModel == "" {
		result.GenerationModel = defaults.GenerationModel
	}
	if result.EmbeddingModel == "" {
		result.EmbeddingModel = defaults.EmbeddingModel
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge.

	return result
}

// FromEnv fills still-empty fields from environment variables.
func (c *Config) FromEnv() {
	if c.APIKey == "" {
		c.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.ProfilesDir == "" {
		c.ProfilesDir = os.Getenv("PROFILES_DIR")
	}
}
