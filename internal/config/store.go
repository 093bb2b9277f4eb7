package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"rotawear/internal/domain"
)

// Store persists the user settings as a YAML file.
type Store struct {
	fs   afero.Fs
	path string

	// closetOverride, when set, replaces the persisted closet root on
	// load without being written back. Used for the --closet flag.
	closetOverride string
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithFs backs the store with the given filesystem.
func WithFs(fs afero.Fs) StoreOption {
	return func(s *Store) { s.fs = fs }
}

// WithClosetOverride makes Load report the given closet root instead of
// the persisted one.
func WithClosetOverride(closet string) StoreOption {
	return func(s *Store) { s.closetOverride = closet }
}

// NewStore creates a settings store at the given path.
func NewStore(path string, opts ...StoreOption) *Store {
	s := &Store{fs: afero.NewOsFs(), path: path}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the settings file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the settings. Missing settings yield defaults: the closet
// root from the environment (or DefaultClosetPath) and no exclusions.
func (s *Store) Load() (*domain.Settings, error) {
	settings := domain.NewSettings(ExpandHome(ClosetPath()))

	exists, err := afero.Exists(s.fs, s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat settings: %w", err)
	}
	if exists {
		data, err := afero.ReadFile(s.fs, s.path)
		if err != nil {
			return nil, fmt.Errorf("failed to read settings: %w", err)
		}
		if err := yaml.Unmarshal(data, settings); err != nil {
			return nil, fmt.Errorf("failed to parse settings: %w", err)
		}
		settings.Closet = ExpandHome(settings.Closet)
	}

	if s.closetOverride != "" {
		settings.Closet = ExpandHome(s.closetOverride)
	}

	return settings, nil
}

// Save writes the settings, creating the containing directory if needed.
func (s *Store) Save(settings *domain.Settings) error {
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if err := afero.WriteFile(s.fs, s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	return nil
}

// Delete removes the settings file. A missing file is not an error.
func (s *Store) Delete() error {
	exists, err := afero.Exists(s.fs, s.path)
	if err != nil {
		return fmt.Errorf("failed to stat settings: %w", err)
	}
	if !exists {
		return nil
	}

	if err := s.fs.Remove(s.path); err != nil {
		return fmt.Errorf("failed to remove settings: %w", err)
	}

	return nil
}
