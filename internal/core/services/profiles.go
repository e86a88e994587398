package services

import (
	"context"

	"github.com/rrwood/hive-schedule-mgr/internal/core/domain"
	"github.com/rrwood/hive-schedule-mgr/internal/core/ports/driven"
	"github.com/rrwood/hive-schedule-mgr/internal/core/ports/driving"
)

// Ensure ProfileService implements the interface.
var _ driving.ProfileCatalog = (*ProfileService)(nil)

// ProfileService exposes the named profile table to the outside.
type ProfileService struct {
	store driven.ProfileStore
}

// NewProfileService creates a new profile service.
func NewProfileService(store driven.ProfileStore) *ProfileService {
	return &ProfileService{store: store}
}

// List returns the current profile set.
func (s *ProfileService) List(ctx context.Context) (domain.ProfileSet, error) {
	return s.store.Load(ctx)
}

// Path returns the backing file location.
func (s *ProfileService) Path() string {
	return s.store.Path()
}
