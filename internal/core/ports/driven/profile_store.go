package driven

import (
	"context"

	"github.com/rrwood/hive-schedule-mgr/internal/core/domain"
)

// ProfileStore loads the named schedule profiles.
type ProfileStore interface {
	// Load returns the current profile set. Implementations re-read the
	// backing file when it has changed, create it with documented defaults
	// when absent, and fall back to domain.BuiltinProfiles when it is
	// unreadable. Load never fails because the file is broken.
	Load(ctx context.Context) (domain.ProfileSet, error)

	// Path returns the backing file location, for operator messages.
	Path() string
}
