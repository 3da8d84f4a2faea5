// Package config loads and saves the application configuration. All
// settings are explicit file state; nothing is read from ambient
// environment variables.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration.
type Config struct {
	Strava   StravaConfig   `json:"strava"`
	Analysis AnalysisConfig `json:"analysis"`
}

// StravaConfig holds the Strava API credentials.
type StravaConfig struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

// AnalysisConfig holds analysis defaults.
type AnalysisConfig struct {
	SportType   string `json:"sport_type"`
	WindowWeeks int    `json:"window_weeks"`
	ExportDir   string `json:"export_dir"`
}

// ErrNoConfig is returned when the config file doesn't exist.
var ErrNoConfig = errors.New("config file not found")

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Analysis: AnalysisConfig{
			SportType:   "Run",
			WindowWeeks: 3,
			ExportDir:   ".",
		},
	}
}

// Load reads the configuration from ~/.runpulse/config.json.
func Load() (*Config, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply defaults for missing values
	defaults := DefaultConfig()
	if cfg.Analysis.SportType == "" {
		cfg.Analysis.SportType = defaults.Analysis.SportType
	}
	if cfg.Analysis.WindowWeeks == 0 {
		cfg.Analysis.WindowWeeks = defaults.Analysis.WindowWeeks
	}
	if cfg.Analysis.ExportDir == "" {
		cfg.Analysis.ExportDir = defaults.Analysis.ExportDir
	}

	return &cfg, nil
}

// Save writes the configuration to ~/.runpulse/config.json.
func Save(cfg *Config) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// CreateExample creates an example config file if none exists.
func CreateExample() error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil {
		return nil // config exists, don't overwrite
	}

	example := DefaultConfig()
	example.Strava = StravaConfig{
		ClientID:     "YOUR_CLIENT_ID",
		ClientSecret: "YOUR_CLIENT_SECRET",
	}

	return Save(&example)
}

// Validate checks that the config has the required fields.
func (c *Config) Validate() error {
	if c.Strava.ClientID == "" || c.Strava.ClientID == "YOUR_CLIENT_ID" {
		return errors.New("strava.client_id is required - get it from https://www.strava.com/settings/api")
	}
	if c.Strava.ClientSecret == "" || c.Strava.ClientSecret == "YOUR_CLIENT_SECRET" {
		return errors.New("strava.client_secret is required - get it from https://www.strava.com/settings/api")
	}
	if c.Analysis.WindowWeeks < 1 {
		return fmt.Errorf("analysis.window_weeks must be at least 1, got %d", c.Analysis.WindowWeeks)
	}
	return nil
}

func getConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".runpulse", "config.json"), nil
}

// GetConfigDir returns the path to the config directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".runpulse"), nil
}
