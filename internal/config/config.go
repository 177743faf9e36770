// Package config provides configuration loading and defaults for the snooze CLI.
//
// Configuration is loaded from a TOML file in the user's config directory.
// It holds persistent display defaults (render mode, progress bar, color)
// and logging settings. Command-line flags always override file values;
// the merge happens in cmd/snooze, not here.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"snooze/internal/paths"
)

// ///////////////////////////////////////////////
// Configuration Types
// ///////////////////////////////////////////////

// Config represents the top-level application configuration.
type Config struct {
	// Display holds default rendering settings.
	Display DisplayConfig `toml:"display"`
	// Log holds logging settings.
	Log LogConfig `toml:"log"`
}

// DisplayConfig holds default rendering settings for the countdown.
type DisplayConfig struct {
	// Multiline renders one full line per tick instead of overwriting
	// a single line.
	Multiline bool `toml:"multiline"`
	// Quiet suppresses per-tick output; only the header and final
	// summary print.
	Quiet bool `toml:"quiet"`
	// Bar renders the fixed-width progress bar with a percentage.
	Bar bool `toml:"bar"`
	// Color enables ANSI color for the bar fill and summary.
	Color bool `toml:"color"`
	// BarWidth is the progress bar width in cells.
	BarWidth int `toml:"bar_width"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `toml:"level"`
	// MaxSizeMB is the maximum log file size in megabytes before rotation.
	MaxSizeMB int `toml:"max_size_mb"`
}

// ///////////////////////////////////////////////
// Default Configuration
// ///////////////////////////////////////////////

// DefaultBarWidth is the progress bar width used when none is configured.
const DefaultBarWidth = 20

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			Multiline: false,
			Quiet:     false,
			Bar:       false,
			Color:     false,
			BarWidth:  DefaultBarWidth,
		},
		Log: LogConfig{
			Level:     "info",
			MaxSizeMB: 5,
		},
	}
}

// ///////////////////////////////////////////////
// Validation
// ///////////////////////////////////////////////

// maxBarWidth bounds bar_width; anything wider than a terminal row is a typo.
const maxBarWidth = 200

// Validate checks that configured values are usable.
func (c *Config) Validate() error {
	if c.Display.BarWidth < 1 || c.Display.BarWidth > maxBarWidth {
		return fmt.Errorf("display.bar_width must be between 1 and %d, got %d", maxBarWidth, c.Display.BarWidth)
	}
	if c.Log.MaxSizeMB < 1 {
		return fmt.Errorf("log.max_size_mb must be at least 1, got %d", c.Log.MaxSizeMB)
	}
	return nil
}

// ///////////////////////////////////////////////
// Loading
// ///////////////////////////////////////////////

// Load reads and parses the configuration file from configDir/config.toml.
// If the file doesn't exist, returns DefaultConfig. File values are applied
// on top of the defaults, so keys absent from the file keep their default.
func Load(configDir string) (*Config, error) {
	path := filepath.Join(configDir, paths.ConfigFile)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}
