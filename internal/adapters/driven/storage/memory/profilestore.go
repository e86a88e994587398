package memory

import (
	"context"
	"sync"

	"github.com/rrwood/hive-schedule-mgr/internal/core/domain"
	"github.com/rrwood/hive-schedule-mgr/internal/core/ports/driven"
)

// Ensure ProfileStore implements the interface.
var _ driven.ProfileStore = (*ProfileStore)(nil)

// ProfileStore is an in-memory implementation of driven.ProfileStore for
// testing. It serves a fixed profile set instead of reading a file.
type ProfileStore struct {
	mu       sync.RWMutex
	profiles domain.ProfileSet
}

// NewProfileStore creates an in-memory profile store seeded with the
// builtin profiles.
func NewProfileStore() *ProfileStore {
	return &ProfileStore{profiles: domain.BuiltinProfiles()}
}

// Load returns the current profile set.
func (s *ProfileStore) Load(_ context.Context) (domain.ProfileSet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make(domain.ProfileSet, len(s.profiles))
	for name, schedule := range s.profiles {
		result[name] = schedule
	}
	return result, nil
}

// Path returns the backing file location, for operator messages.
func (s *ProfileStore) Path() string {
	return ":memory:"
}

// SetProfiles replaces the served profile set.
func (s *ProfileStore) SetProfiles(profiles domain.ProfileSet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles = profiles
}
