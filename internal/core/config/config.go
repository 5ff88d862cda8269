// Package config handles configuration loading and validation for gitquery.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hay-kot/gitquery/internal/core/styles"
)

// Config holds the application configuration.
type Config struct {
	GitPath  string       `yaml:"git_path"`
	LogLevel string       `yaml:"log_level"`
	Theme    string       `yaml:"theme"`
	Doctor   DoctorConfig `yaml:"doctor"`
}

// DoctorConfig controls how strictly the doctor checks treat identity settings.
type DoctorConfig struct {
	// RequireSigning reports a missing user.signingkey as a failure instead of a warning.
	RequireSigning bool `yaml:"require_signing"`
	// RequireEmail reports a missing user.email as a failure instead of a warning.
	// A nil value means the default (true).
	RequireEmail *bool `yaml:"require_email"`
}

// EmailRequired returns the effective require_email setting.
func (d DoctorConfig) EmailRequired() bool {
	return d.RequireEmail == nil || *d.RequireEmail
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		GitPath:  "git",
		LogLevel: "info",
		Theme:    styles.DefaultTheme,
	}
}

// Load reads configuration from the given path.
// If configPath is empty or doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.GitPath == "" {
		c.GitPath = defaults.GitPath
	}
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
}

// Validate checks that the configuration is structurally valid.
func (c *Config) Validate() error {
	if c.GitPath == "" {
		return fmt.Errorf("git_path cannot be empty")
	}

	if !isValidLevel(c.LogLevel) {
		return fmt.Errorf("log_level %q is not one of debug, info, warn, error", c.LogLevel)
	}

	if _, ok := styles.GetPalette(c.Theme); !ok {
		return fmt.Errorf("theme %q is not one of %s", c.Theme, strings.Join(styles.ThemeNames(), ", "))
	}

	return nil
}

func isValidLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}
