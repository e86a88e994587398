// Package file persists application settings as a TOML file.
package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/rrwood/hive-schedule-mgr/internal/core/domain"
	"github.com/rrwood/hive-schedule-mgr/internal/core/ports/driven"
)

// Ensure SettingsStore implements the interface.
var _ driven.SettingsStore = (*SettingsStore)(nil)

// settingsFile is the file name inside the config directory.
const settingsFile = "config.toml"

// SettingsStore is a TOML-backed settings store. The first Load writes a
// commented default file, so every knob is discoverable by opening it.
type SettingsStore struct {
	mu       sync.Mutex
	filePath string
}

// NewSettingsStore creates a settings store under configDir.
// If configDir is empty, defaults to ~/.hive-schedule.
func NewSettingsStore(configDir string) (*SettingsStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".hive-schedule")
	}

	// Ensure directory exists
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	return &SettingsStore{filePath: filepath.Join(configDir, settingsFile)}, nil
}

// Load reads the settings file, writing the defaults first when none
// exists. Loaded settings are validated before being returned.
func (s *SettingsStore) Load() (*domain.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if os.IsNotExist(err) {
		settings := domain.DefaultSettings()
		if err := s.save(&settings); err != nil {
			return nil, fmt.Errorf("write default settings: %w", err)
		}
		return &settings, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	// Start from defaults so fields an older file doesn't mention keep
	// working values.
	settings := domain.DefaultSettings()
	if err := toml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", domain.ErrConfig, s.filePath, err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", s.filePath, err)
	}
	return &settings, nil
}

// Save persists settings to disk.
func (s *SettingsStore) Save(settings *domain.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(settings)
}

// save writes the TOML file (caller must hold lock). The comment tags on
// the settings structs become # lines in the written file.
func (s *SettingsStore) save(settings *domain.Settings) error {
	data, err := toml.Marshal(settings)
	if err != nil {
		return err
	}

	// Write with restricted permissions; the file can carry tokens.
	return os.WriteFile(s.filePath, data, 0600)
}

// Path returns the settings file path.
func (s *SettingsStore) Path() string {
	return s.filePath
}
