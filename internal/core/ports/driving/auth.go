package driving

import (
	"context"

	"github.com/rrwood/hive-schedule-mgr/internal/core/domain"
)

// AuthService drives the token lifecycle from the outside.
type AuthService interface {
	// Login performs the one-time initial authentication for the
	// configured method. The result may carry an MFA challenge instead of
	// tokens; the flow then continues via CompleteMFA.
	Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResult, error)

	// CompleteMFA answers the SMS challenge returned by Login.
	CompleteMFA(ctx context.Context, challenge domain.MFAChallenge, code string) (*domain.LoginResult, error)

	// RefreshToken forces an immediate token refresh, reporting the
	// resulting state.
	RefreshToken(ctx context.Context) (*domain.TokenStatus, error)

	// Status reports the stored token state without refreshing.
	Status(ctx context.Context) (*domain.TokenStatus, error)

	// Logout clears the stored token set.
	Logout(ctx context.Context) error
}
