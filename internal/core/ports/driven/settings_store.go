package driven

import "github.com/rrwood/hive-schedule-mgr/internal/core/domain"

// SettingsStore persists application settings.
type SettingsStore interface {
	// Load reads the settings file, writing a documented default file
	// first when none exists.
	Load() (*domain.Settings, error)

	// Save persists settings.
	Save(settings *domain.Settings) error

	// Path returns the settings file location.
	Path() string
}
