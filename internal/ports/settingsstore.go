package ports

import "rotawear/internal/domain"

// SettingsStore persists the user settings (closet root, exclusions).
type SettingsStore interface {
	// Load reads the settings. Missing settings yield defaults.
	Load() (*domain.Settings, error)

	// Save writes the settings, creating the containing directory if needed.
	Save(settings *domain.Settings) error

	// Delete removes the settings file. A missing file is not an error.
	Delete() error
}
