// Package cache provides a small JSON file store used to persist the
// rolling usage history between runs.
package cache

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Store is a flat-directory JSON cache. Each key maps to one file:
//
//	~/.cache/memglitch/
//	  memory.json
type Store struct {
	dir    string
	logger *slog.Logger
}

// NewStore creates a cache store at the given directory, creating it with
// 0700 permissions if it does not exist. A nil logger is replaced with a
// no-op logger.
func NewStore(dir string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("cache: create directory %s: %w", dir, err)
	}
	return &Store{dir: dir, logger: logger}, nil
}

// keyPath returns the filesystem path for a cache key.
func (s *Store) keyPath(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get reads a cached value. A missing file is a miss (nil, nil). A file
// that does not contain valid JSON is removed and treated as a miss rather
// than surfaced as an error: a corrupt history file should never prevent
// the monitor from starting.
func (s *Store) Get(key string) (json.RawMessage, error) {
	path := s.keyPath(key)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache: read %s: %w", key, err)
	}

	if !json.Valid(data) {
		s.logger.Warn("cache: removing corrupted entry", slog.String("key", key))
		_ = os.Remove(path)
		return nil, nil
	}

	return json.RawMessage(data), nil
}

// Set writes a value to the cache atomically (write to a temp file in the
// same directory, then rename). A reader never observes a half-written file.
func (s *Store) Set(key string, data interface{}) error {
	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("cache: marshal %s: %w", key, err)
	}

	path := s.keyPath(key)

	tmp, err := os.CreateTemp(s.dir, ".tmp-"+key+"-*.json")
	if err != nil {
		return fmt.Errorf("cache: create temp for %s: %w", key, err)
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = os.Remove(tmpName)
		}
	}()

	if err := os.Chmod(tmpName, 0600); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("cache: chmod temp for %s: %w", key, err)
	}

	if _, err := tmp.Write(encoded); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("cache: write temp for %s: %w", key, err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cache: close temp for %s: %w", key, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("cache: rename temp for %s: %w", key, err)
	}

	success = true
	return nil
}

// Age returns how old a cache entry is based on file modification time,
// or 0 if the entry does not exist.
func (s *Store) Age(key string) time.Duration {
	info, err := os.Stat(s.keyPath(key))
	if err != nil {
		return 0
	}
	return time.Since(info.ModTime())
}

// GetTyped reads and unmarshals a cached value into T. A missing key
// returns nil. An entry that fails to unmarshal is removed and treated
// as a miss.
func GetTyped[T any](s *Store, key string) (*T, error) {
	raw, err := s.Get(key)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var result T
	if err := json.Unmarshal(raw, &result); err != nil {
		s.logger.Warn("cache: removing entry with unmarshal error",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		_ = os.Remove(s.keyPath(key))
		return nil, nil
	}

	return &result, nil
}

// SetTyped marshals and caches a value of type T.
func SetTyped[T any](s *Store, key string, data *T) error {
	return s.Set(key, data)
}
