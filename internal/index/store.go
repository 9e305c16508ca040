package index

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Store persists the grouped index as a single JSON document.
//
// Loading is forgiving: a missing, unreadable, or malformed file is treated
// as an empty index so a corrupt store degrades to a full rescan rather than
// an error. Saving is best-effort; callers report a failed save as a warning
// and keep using the in-memory index for the rest of the invocation.
type Store struct {
	path string
}

// NewStore creates a Store backed by the JSON file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the location of the backing file.
func (s *Store) Path() string {
	return s.path
}

// EnsureExists creates an empty index file if none is present.
func (s *Store) EnsureExists() error {
	_, err := os.Stat(s.path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat index file: %w", err)
	}
	return s.Save(New())
}

// Load reads the persisted index. It never fails: any problem reading or
// decoding the file yields an empty index and a debug-level log entry.
func (s *Store) Load() GroupedIndex {
	data, err := os.ReadFile(s.path)
	if err != nil {
		log.Debug("index file not readable, starting empty", "path", s.path, "err", err)
		return New()
	}

	var idx GroupedIndex
	if err := json.Unmarshal(data, &idx); err != nil {
		log.Debug("index file malformed, starting empty", "path", s.path, "err", err)
		return New()
	}
	if idx == nil {
		return New()
	}
	return idx
}

// Save serializes the full index and atomically replaces the backing file.
func (s *Store) Save(idx GroupedIndex) error {
	data, err := json.Marshal(idx)
	if err != nil {
		return fmt.Errorf("encode index: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create index directory: %w", err)
	}

	// Write to a temp file in the same directory so the rename is atomic.
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp index file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write index: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close index file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace index file: %w", err)
	}
	return nil
}
