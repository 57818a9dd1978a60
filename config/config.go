// Package config handles navigation tool configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gorustyt/gonavmesh2d/common/logger"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory.
const FileName = "navmesh2d.yaml"

var ErrInvalid = errors.New("invalid config")

// Config holds all settings.
type Config struct {
	Navigation NavigationConfig `yaml:"navigation"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// NavigationConfig holds world and query settings.
type NavigationConfig struct {
	// CellSize is the grid used to match vertices of different polygons.
	CellSize float32 `yaml:"cell_size"`
	// Optimize selects funnel smoothing over edge midpoints.
	Optimize bool `yaml:"optimize"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Navigation: NavigationConfig{
			CellSize: 1,
			Optimize: true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Load loads configuration with priority: defaults < file. An empty path
// falls back to FileName in the working directory when it exists.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		if _, err := os.Stat(FileName); err == nil {
			path = FileName
		}
	}

	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Navigation.CellSize <= 0 {
		return fmt.Errorf("%w: navigation.cell_size must be positive, got %v", ErrInvalid, c.Navigation.CellSize)
	}
	if !logger.IsValidLevel(c.Logging.Level) {
		return fmt.Errorf("%w: logging.level %q", ErrInvalid, c.Logging.Level)
	}
	return nil
}

// SaveTo writes the config to a specific path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
