package driven

import (
	"context"

	"github.com/rrwood/hive-schedule-mgr/internal/core/domain"
)

// TokenStore persists the account's token set so it survives restarts.
// The token manager is the only writer; it saves after every refresh and
// clears when the refresh token is rejected.
type TokenStore interface {
	// Load returns the stored token set, or nil when none is stored.
	Load(ctx context.Context) (*domain.TokenSet, error)

	// Save stores the token set, replacing any previous one.
	Save(ctx context.Context, tokens domain.TokenSet) error

	// Clear removes the stored token set.
	Clear(ctx context.Context) error
}
