// Package cache keeps a local copy of the tracker catalog so search
// and add keep working when the service is unreachable. The cache is a
// single YAML file; writes go through a temp file and rename so a
// crash never leaves a truncated catalog.
package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/blackwell-systems/readingctl/internal/model"
)

// Manager handles the local catalog cache.
type Manager struct {
	baseDir string
}

// DefaultDir returns the default cache directory.
func DefaultDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache", "readingctl")
}

// New creates a Manager rooted at baseDir. An empty baseDir uses the
// default.
func New(baseDir string) *Manager {
	if baseDir == "" {
		baseDir = DefaultDir()
	}
	return &Manager{baseDir: baseDir}
}

// catalogFile is the on-disk shape: the books plus when they were
// fetched, so callers can decide how stale is too stale.
type catalogFile struct {
	FetchedAt time.Time    `yaml:"fetched_at"`
	Books     []model.Book `yaml:"books"`
}

func (m *Manager) catalogPath() string {
	return filepath.Join(m.baseDir, "catalog.yml")
}

// StoreCatalog replaces the cached catalog.
func (m *Manager) StoreCatalog(books []model.Book) error {
	if err := os.MkdirAll(m.baseDir, 0750); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	data, err := yaml.Marshal(catalogFile{FetchedAt: time.Now().UTC(), Books: books})
	if err != nil {
		return err
	}

	destPath := m.catalogPath()
	tmpPath := destPath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("writing catalog cache: %w", err)
	}
	if err := os.Rename(tmpPath, destPath); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}

// LoadCatalog reads the cached catalog. A missing cache returns
// (nil, zero time, nil); the caller treats that as a miss.
func (m *Manager) LoadCatalog() ([]model.Book, time.Time, error) {
	data, err := os.ReadFile(m.catalogPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, time.Time{}, nil
		}
		return nil, time.Time{}, fmt.Errorf("reading catalog cache: %w", err)
	}
	var cf catalogFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, time.Time{}, fmt.Errorf("parsing catalog cache: %w", err)
	}
	return cf.Books, cf.FetchedAt, nil
}

// Clear removes the cached catalog.
func (m *Manager) Clear() error {
	err := os.Remove(m.catalogPath())
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
