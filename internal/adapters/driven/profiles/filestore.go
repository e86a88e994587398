// Package profiles loads named day schedules from a user-editable YAML
// file.
package profiles

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"

	"github.com/rrwood/hive-schedule-mgr/internal/core/domain"
	"github.com/rrwood/hive-schedule-mgr/internal/core/ports/driven"
	"github.com/rrwood/hive-schedule-mgr/internal/logger"
)

// Ensure FileStore implements the ProfileStore interface.
var _ driven.ProfileStore = (*FileStore)(nil)

// FileStore reads profiles from a YAML file. The file is re-read on
// every Load, so edits take effect on the next push without a restart.
// A missing file is created with the documented defaults; an unreadable
// or unparseable one falls back to the built-in set so heating control
// keeps working while the user fixes their edit.
type FileStore struct {
	path string
	log  *logger.Logger
}

// NewFileStore creates a profile store backed by the YAML file at path.
func NewFileStore(path string, log *logger.Logger) *FileStore {
	return &FileStore{path: path, log: log}
}

// Load returns the current profile set.
func (s *FileStore) Load(_ context.Context) (domain.ProfileSet, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		if err := s.writeDefaults(); err != nil {
			s.log.Errorf("Failed to create default profiles file: %v", err)
			return domain.BuiltinProfiles(), nil
		}
		s.log.Infof("Created default profiles file at %s", s.path)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		s.log.Errorf("Failed to read profiles from %s: %v", s.path, err)
		return domain.BuiltinProfiles(), nil
	}

	var set domain.ProfileSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		s.log.Errorf("Failed to parse profiles from %s: %v", s.path, err)
		return domain.BuiltinProfiles(), nil
	}
	if set == nil {
		// An emptied file is a deliberate choice, not an error.
		set = domain.ProfileSet{}
	}
	s.log.Debugf("Loaded %d profiles from %s", len(set), s.path)
	return set, nil
}

// Path returns the profiles file path.
func (s *FileStore) Path() string {
	return s.path
}

// writeDefaults creates the profiles file with the documented default
// set.
func (s *FileStore) writeDefaults() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(defaultProfilesContent), 0600)
}

// Watch re-validates the profiles file whenever it changes on disk and
// logs the outcome, so a bad edit surfaces immediately instead of on the
// next push. Blocks until the context ends. Used by serve mode.
func (s *FileStore) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory rather than the file. Editors replace files on
	// save, which silently drops a direct file watch.
	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(s.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			s.recheck(ctx)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.log.Warnf("Profiles watcher error: %v", err)
		}
	}
}

// recheck reloads the file and validates every profile in it.
func (s *FileStore) recheck(ctx context.Context) {
	set, err := s.Load(ctx)
	if err != nil {
		s.log.Errorf("Profiles reload failed: %v", err)
		return
	}

	bad := 0
	for _, name := range set.Names() {
		if err := set[name].Validate(); err != nil {
			s.log.Warnf("Profile %q is invalid: %v", name, err)
			bad++
		}
	}
	if bad == 0 {
		s.log.Infof("Profiles file reloaded, %d profiles OK", len(set))
	}
}
