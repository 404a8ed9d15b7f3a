// Package config provides configuration parsing for memglitch.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the memglitch configuration.
type Config struct {
	// Monitor holds sampling settings.
	Monitor MonitorConfig `yaml:"monitor"`

	// Display holds dashboard rendering settings.
	Display DisplayConfig `yaml:"display"`

	// Log holds logging settings.
	Log LogConfig `yaml:"log"`
}

// MonitorConfig holds sampling settings.
type MonitorConfig struct {
	// RefreshInterval is a duration string (e.g. "500ms", "1s") between samples.
	RefreshInterval string `yaml:"refresh_interval"`
	// CacheDir is the directory for persisted history.
	CacheDir string `yaml:"cache_dir"`
}

// DisplayConfig holds dashboard rendering settings.
type DisplayConfig struct {
	// Theme selects the display theme: "hacker", "amber", or "ice".
	Theme string `yaml:"theme"`
	// GlitchEnabled controls the text corruption effect.
	GlitchEnabled bool `yaml:"glitch_enabled"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// File is the path for log output. Logging goes to a file so it never
	// corrupts the dashboard.
	File string `yaml:"file"`
	// Verbose enables debug-level logging.
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()

	return &Config{
		Monitor: MonitorConfig{
			RefreshInterval: "500ms",
			CacheDir:        filepath.Join(home, ".cache", "memglitch"),
		},
		Display: DisplayConfig{
			Theme:         "hacker",
			GlitchEnabled: true,
		},
		Log: LogConfig{
			File:    filepath.Join(home, ".local", "log", "memglitch.log"),
			Verbose: false,
		},
	}
}

// LoadConfig loads configuration from a YAML file, merging with defaults.
// A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// ApplyEnv overlays environment variables onto the configuration. A .env
// file in the working directory is loaded first when present, then
// MEMGLITCH_* variables take precedence over file values.
func (c *Config) ApplyEnv() {
	// Ignore the error: a missing .env file is the normal case.
	_ = godotenv.Load()

	if v := os.Getenv("MEMGLITCH_THEME"); v != "" {
		c.Display.Theme = v
	}
	if v := os.Getenv("MEMGLITCH_CACHE_DIR"); v != "" {
		c.Monitor.CacheDir = v
	}
	if v := os.Getenv("MEMGLITCH_INTERVAL"); v != "" {
		c.Monitor.RefreshInterval = v
	}
	if v := os.Getenv("MEMGLITCH_GLITCH"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Display.GlitchEnabled = b
		}
	}
}

// Validate checks the configuration for required fields and logical consistency.
func (c *Config) Validate() error {
	if c.Monitor.RefreshInterval == "" {
		return fmt.Errorf("monitor.refresh_interval is required")
	}
	d, err := time.ParseDuration(c.Monitor.RefreshInterval)
	if err != nil {
		return fmt.Errorf("monitor.refresh_interval is not a valid duration: %w", err)
	}
	if d < 100*time.Millisecond {
		return fmt.Errorf("monitor.refresh_interval must be at least 100ms, got %s", d)
	}
	if c.Monitor.CacheDir == "" {
		return fmt.Errorf("monitor.cache_dir is required")
	}

	validThemes := map[string]bool{"hacker": true, "amber": true, "ice": true}
	if !validThemes[c.Display.Theme] {
		return fmt.Errorf("display.theme must be 'hacker', 'amber', or 'ice', got %q", c.Display.Theme)
	}

	if c.Log.File == "" {
		return fmt.Errorf("log.file is required")
	}

	return nil
}

// RefreshInterval returns the parsed sampling interval. Call Validate
// first; an unparseable value falls back to 500ms.
func (c *Config) RefreshInterval() time.Duration {
	d, err := time.ParseDuration(c.Monitor.RefreshInterval)
	if err != nil || d <= 0 {
		return 500 * time.Millisecond
	}
	return d
}

// SaveConfig saves configuration to a YAML file.
func SaveConfig(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
