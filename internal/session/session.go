// Package session persists the signed-in user between runs: just the
// user id and a logged-in flag, in a small YAML state file. It is read
// at startup to decide whether commands that need an account may run,
// and cleared on logout.
package session

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// State is the persisted login state.
type State struct {
	UserID   string `yaml:"user_id"`
	LoggedIn bool   `yaml:"is_logged_in"`
}

// Store reads and writes the state file.
type Store struct {
	path string
}

// DefaultPath returns the default state file location.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "readingctl", "session.yml")
}

// NewStore creates a Store at path. An empty path uses the default.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath()
	}
	return &Store{path: path}
}

// Load reads the current state. A missing file is a logged-out state,
// not an error.
func (s *Store) Load() (State, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return State{}, nil
		}
		return State{}, fmt.Errorf("reading session state: %w", err)
	}
	var st State
	if err := yaml.Unmarshal(data, &st); err != nil {
		return State{}, fmt.Errorf("parsing session state: %w", err)
	}
	return st, nil
}

// Save writes the state atomically (write temp, then rename) so a
// crash mid-write never leaves a truncated file.
func (s *Store) Save(st State) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(st)
	if err != nil {
		return err
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("writing session state: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}

// Clear drops the user id and marks the session logged out.
func (s *Store) Clear() error {
	return s.Save(State{})
}
