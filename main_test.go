package main

import (
	"os"
	"path/filepath"
	"testing"

	"gitlab.com/tinyland/lab/memglitch/config"
)

func TestSetupLogger(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Log.File = filepath.Join(t.TempDir(), "logs", "memglitch.log")

	logger := setupLogger(cfg)
	if logger == nil {
		t.Fatal("setupLogger returned nil for a writable path")
	}

	logger.Info("test entry")
	data, err := os.ReadFile(cfg.Log.File)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if len(data) == 0 {
		t.Error("log file is empty after writing an entry")
	}
}

func TestSetupLoggerVerbose(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Log.File = filepath.Join(t.TempDir(), "memglitch.log")
	cfg.Log.Verbose = true

	logger := setupLogger(cfg)
	if logger == nil {
		t.Fatal("setupLogger returned nil")
	}

	logger.Debug("debug entry")
	data, err := os.ReadFile(cfg.Log.File)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if len(data) == 0 {
		t.Error("verbose logger should emit debug entries")
	}
}

func TestSetupLoggerUnwritablePath(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Log.File = filepath.Join(t.TempDir(), "blocked")

	// Occupy the parent path with a file so MkdirAll fails.
	if err := os.WriteFile(cfg.Log.File, nil, 0644); err != nil {
		t.Fatal(err)
	}
	cfg.Log.File = filepath.Join(cfg.Log.File, "memglitch.log")

	if logger := setupLogger(cfg); logger != nil {
		t.Error("setupLogger should return nil when the log path is unusable")
	}
}
