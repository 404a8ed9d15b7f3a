package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Monitor.RefreshInterval != "500ms" {
		t.Errorf("expected RefreshInterval=500ms, got %s", cfg.Monitor.RefreshInterval)
	}
	if cfg.Monitor.CacheDir == "" {
		t.Error("expected CacheDir to be set")
	}
	if cfg.Display.Theme != "hacker" {
		t.Errorf("expected Theme=hacker, got %s", cfg.Display.Theme)
	}
	if !cfg.Display.GlitchEnabled {
		t.Error("expected GlitchEnabled to be true by default")
	}
	if cfg.Log.File == "" {
		t.Error("expected Log.File to be set")
	}
	if cfg.Log.Verbose {
		t.Error("expected Verbose to default off")
	}
}

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid, got error: %v", err)
	}
}

func TestLoadConfigNonExistent(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.yaml")
	if err != nil {
		t.Fatalf("unexpected error for non-existent file: %v", err)
	}
	if cfg.Display.Theme != "hacker" {
		t.Errorf("missing file should return defaults, got theme %s", cfg.Display.Theme)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error for empty path: %v", err)
	}
	if cfg.Monitor.RefreshInterval != "500ms" {
		t.Errorf("empty path should return defaults, got interval %s", cfg.Monitor.RefreshInterval)
	}
}

func TestLoadConfigMergesDefaults(t *testing.T) {
	// A partial file overrides only what it names.
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("display:\n  theme: amber\n")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Display.Theme != "amber" {
		t.Errorf("expected Theme=amber, got %s", cfg.Display.Theme)
	}
	if cfg.Monitor.RefreshInterval != "500ms" {
		t.Errorf("unset fields should keep defaults, got interval %s", cfg.Monitor.RefreshInterval)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("{{not yaml"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"empty interval", func(c *Config) { c.Monitor.RefreshInterval = "" }, true},
		{"bad interval", func(c *Config) { c.Monitor.RefreshInterval = "fast" }, true},
		{"interval too small", func(c *Config) { c.Monitor.RefreshInterval = "50ms" }, true},
		{"interval at floor", func(c *Config) { c.Monitor.RefreshInterval = "100ms" }, false},
		{"empty cache dir", func(c *Config) { c.Monitor.CacheDir = "" }, true},
		{"unknown theme", func(c *Config) { c.Display.Theme = "neon" }, true},
		{"amber theme", func(c *Config) { c.Display.Theme = "amber" }, false},
		{"ice theme", func(c *Config) { c.Display.Theme = "ice" }, false},
		{"empty log file", func(c *Config) { c.Log.File = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("MEMGLITCH_THEME", "ice")
	t.Setenv("MEMGLITCH_CACHE_DIR", "/tmp/mgtest")
	t.Setenv("MEMGLITCH_INTERVAL", "1s")
	t.Setenv("MEMGLITCH_GLITCH", "false")

	cfg := DefaultConfig()
	cfg.ApplyEnv()

	if cfg.Display.Theme != "ice" {
		t.Errorf("MEMGLITCH_THEME not applied, got %s", cfg.Display.Theme)
	}
	if cfg.Monitor.CacheDir != "/tmp/mgtest" {
		t.Errorf("MEMGLITCH_CACHE_DIR not applied, got %s", cfg.Monitor.CacheDir)
	}
	if cfg.Monitor.RefreshInterval != "1s" {
		t.Errorf("MEMGLITCH_INTERVAL not applied, got %s", cfg.Monitor.RefreshInterval)
	}
	if cfg.Display.GlitchEnabled {
		t.Error("MEMGLITCH_GLITCH=false not applied")
	}
}

func TestApplyEnvInvalidBool(t *testing.T) {
	t.Setenv("MEMGLITCH_GLITCH", "maybe")

	cfg := DefaultConfig()
	cfg.ApplyEnv()
	if !cfg.Display.GlitchEnabled {
		t.Error("unparseable MEMGLITCH_GLITCH should leave the default")
	}
}

func TestRefreshInterval(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.RefreshInterval(); got != 500*time.Millisecond {
		t.Errorf("RefreshInterval() = %v, want 500ms", got)
	}

	cfg.Monitor.RefreshInterval = "2s"
	if got := cfg.RefreshInterval(); got != 2*time.Second {
		t.Errorf("RefreshInterval() = %v, want 2s", got)
	}

	cfg.Monitor.RefreshInterval = "garbage"
	if got := cfg.RefreshInterval(); got != 500*time.Millisecond {
		t.Errorf("unparseable interval should fall back to 500ms, got %v", got)
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg := DefaultConfig()
	cfg.Display.Theme = "amber"
	cfg.Monitor.RefreshInterval = "750ms"

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig() error = %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if loaded.Display.Theme != "amber" {
		t.Errorf("round trip lost theme, got %s", loaded.Display.Theme)
	}
	if loaded.Monitor.RefreshInterval != "750ms" {
		t.Errorf("round trip lost interval, got %s", loaded.Monitor.RefreshInterval)
	}
}
