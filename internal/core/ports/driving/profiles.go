package driving

import (
	"context"

	"github.com/rrwood/hive-schedule-mgr/internal/core/domain"
)

// ProfileCatalog exposes the named profile table.
type ProfileCatalog interface {
	// List returns the current profile set (file-backed, builtin fallback).
	List(ctx context.Context) (domain.ProfileSet, error)

	// Path returns the backing file location.
	Path() string
}
