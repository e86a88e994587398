package driven

import (
	"context"

	"github.com/rrwood/hive-schedule-mgr/internal/core/domain"
)

// Authenticator performs the identity-provider exchanges for one
// authentication strategy. Variants (cognito, refresh-only, static) are
// selected once at setup time by the auth factory; callers never branch on
// the method themselves.
type Authenticator interface {
	// Method returns the strategy this variant implements.
	Method() domain.AuthMethod

	// Login performs the one-time initial authentication from setup
	// credentials. When the provider demands a second factor the result
	// carries a challenge instead of tokens and the flow continues via
	// CompleteMFA. Variants that cannot log in return ErrNotImplemented.
	Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResult, error)

	// CompleteMFA answers an SMS challenge issued by Login.
	CompleteMFA(ctx context.Context, challenge domain.MFAChallenge, code string) (*domain.LoginResult, error)

	// Refresh exchanges the refresh token for fresh id/access tokens.
	// The returned set may carry an empty RefreshToken; callers keep the
	// old one in that case. A rejected refresh token surfaces
	// domain.ErrReauthRequired; transient failures surface
	// domain.ErrTokenRefreshFailed.
	Refresh(ctx context.Context, refreshToken string) (*domain.TokenSet, error)
}
