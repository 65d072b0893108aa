package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/danieljhkim/toolplan/internal/fsops"
)

// fsys is the filesystem config files are read from and written to.
var fsys fsops.FS = fsops.NewRealFS()

// Config holds user preferences.
type Config struct {
	// Mode is the mode used when --mode is not given
	Mode string `yaml:"mode" json:"mode"`

	// Lang is the language used when --lang is not given; empty selects the
	// catalog default
	Lang string `yaml:"lang" json:"lang"`

	// Logging configures diagnostic output
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// LoggingConfig configures the structured logger.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error
	Level string `yaml:"level" json:"level"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Mode: "barn",
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := fsys.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// applyEnvOverrides applies TOOLPLAN_MODE, TOOLPLAN_LANG and
// TOOLPLAN_LOG_LEVEL when set.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("TOOLPLAN_MODE"); v != "" {
		c.Mode = v
	}
	if v := os.Getenv("TOOLPLAN_LANG"); v != "" {
		c.Lang = v
	}
	if v := os.Getenv("TOOLPLAN_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Save writes the configuration to a YAML file, creating its directory.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := fsys.AtomicWrite(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
