package driven

import (
	"context"

	"github.com/rrwood/hive-schedule-mgr/internal/core/domain"
)

// TokenSource provides a valid vendor token for API calls, refreshing
// transparently when the cached one comes within the safety margin of
// expiry. Implementations serialise refreshes internally, so overlapping
// callers wait for one exchange instead of racing their own.
//
// This works alongside the background Refresher:
//   - Refresher: proactive refresh on a fixed cadence (serve mode)
//   - TokenSource: reactive refresh when a caller needs a token now
//
// Both paths share the same internal mutual exclusion.
type TokenSource interface {
	// Token returns an id token usable right now.
	// Fails with domain.ErrAuthRequired when no usable token exists and no
	// refresh is possible, and domain.ErrReauthRequired when the refresh
	// token was rejected (the stored set is cleared first).
	Token(ctx context.Context) (string, error)

	// ForceRefresh performs a refresh exchange regardless of remaining
	// validity and reports the resulting state. Used by the reactive
	// 401-retry path and the refresh-token command.
	ForceRefresh(ctx context.Context) (*domain.TokenStatus, error)

	// Status reports on the stored token set without refreshing.
	Status(ctx context.Context) (*domain.TokenStatus, error)

	// StoreInitial persists the first token set produced by a login flow
	// and primes the cache with it.
	StoreInitial(ctx context.Context, tokens domain.TokenSet) error

	// Clear drops the cached and persisted token set.
	Clear(ctx context.Context) error
}
