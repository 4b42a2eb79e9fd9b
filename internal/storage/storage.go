// Package storage persists resolution state as JSON records in the per-user
// config directory (~/.config/resolution). Each record lives in its own file
// and is overwritten whole on save; loads merge missing fields with defaults
// so older state files keep working after upgrades.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	stateFile = "state.json"
	goalsFile = "goals.json"
	shopFile  = "shop_items.json"
)

// DefaultDir returns the per-user config directory for resolution.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, "resolution"), nil
}

// Reader is the read-only capability handed to the daily gate. A false ok
// means "no usable record": missing, unreadable and malformed files are all
// equivalent to never having run.
type Reader interface {
	Load() (DailyState, bool)
}

// FileStore owns the JSON records in a single config directory.
type FileStore struct {
	dir string

	// Now is the clock used for "today" comparisons. Overridden in tests.
	Now func() time.Time
}

// NewFileStore returns a store rooted at dir. The directory is created
// lazily on first save.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir, Now: time.Now}
}

// Dir returns the directory the store operates on.
func (s *FileStore) Dir() string { return s.dir }

// EnsureDir creates the config directory if it does not exist.
func (s *FileStore) EnsureDir() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create config dir %s: %w", s.dir, err)
	}
	return nil
}

// today formats the current local calendar date as YYYY-MM-DD.
func (s *FileStore) today() string {
	return s.Now().Format("2006-01-02")
}

// readJSON deserializes path into v. Returns false when the file is missing,
// unreadable or not valid JSON for v.
func readJSON(path string, v any) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return json.Unmarshal(data, v) == nil
}

// writeJSON serializes v to path, creating the parent directory first.
func (s *FileStore) writeJSON(path string, v any) error {
	if err := s.EnsureDir(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
