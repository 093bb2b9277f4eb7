// Package cachefile persists the rotation cache as a JSON file.
package cachefile

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"rotawear/internal/application"
	"rotawear/internal/domain"
)

// Store reads and writes the rotation cache at a fixed path.
type Store struct {
	fs   afero.Fs
	path string
}

// New creates a store backed by the OS filesystem.
func New(path string) *Store {
	return &Store{fs: afero.NewOsFs(), path: path}
}

// NewWithFs creates a store backed by the given filesystem.
func NewWithFs(fs afero.Fs, path string) *Store {
	return &Store{fs: fs, path: path}
}

// Path returns the cache file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted cache. A missing cache file yields a fresh
// empty cache; content that does not parse yields ErrCacheDecode.
func (s *Store) Load() (*domain.RotationCache, error) {
	exists, err := afero.Exists(s.fs, s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat cache: %w", err)
	}
	if !exists {
		return domain.NewRotationCache(), nil
	}

	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache: %w", err)
	}

	var cache domain.RotationCache
	if err := json.Unmarshal(data, &cache); err != nil {
		return nil, fmt.Errorf("%w: %v", application.ErrCacheDecode, err)
	}
	if cache.Categories == nil {
		cache.Categories = make(map[string]*domain.CategoryRotation)
	}

	return &cache, nil
}

// Save writes the cache, creating the containing directory if needed.
func (s *Store) Save(cache *domain.RotationCache) error {
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode cache: %w", err)
	}

	if err := afero.WriteFile(s.fs, s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write cache: %w", err)
	}

	return nil
}

// Delete removes the cache file. A missing file is not an error.
func (s *Store) Delete() error {
	exists, err := afero.Exists(s.fs, s.path)
	if err != nil {
		return fmt.Errorf("failed to stat cache: %w", err)
	}
	if !exists {
		return nil
	}

	if err := s.fs.Remove(s.path); err != nil {
		return fmt.Errorf("failed to remove cache: %w", err)
	}

	return nil
}
