// Package pausestore persists the pause deadline between invocations.
// The process is not resident, so this single small file is the only
// state that survives from one poll or click to the next.
package pausestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Record is the persisted pause deadline. A record whose deadline has
// passed is interpreted by the caller as absent; the store itself does
// no expiry.
type Record struct {
	Until time.Time `json:"paused_until"`
}

// Store reads and writes the record file.
type Store struct {
	path string
}

// New returns a store backed by path.
func New(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the record location under the OS temp dir.
func DefaultPath() string {
	return filepath.Join(os.TempDir(), "waybar-tailscale-pause.json")
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the record. A missing file is (nil, nil). A corrupt file
// or one with a zero deadline is also (nil, nil), after a best-effort
// removal — a reader must never fail because a previous writer was
// interrupted.
func (s *Store) Load() (*Record, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read pause record: %w", err)
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil || rec.Until.IsZero() {
		_ = os.Remove(s.path)
		return nil, nil
	}
	return &rec, nil
}

// Save writes a record with the given deadline, atomically. Write to a
// temp file then rename so a concurrent poll never observes a
// half-written deadline.
func (s *Store) Save(until time.Time) error {
	data, err := json.Marshal(Record{Until: until})
	if err != nil {
		return fmt.Errorf("marshal pause record: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("write pause record: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("commit pause record: %w", err)
	}
	return nil
}

// Clear removes the record. Absence is not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clear pause record: %w", err)
	}
	return nil
}
