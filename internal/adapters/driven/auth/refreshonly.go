package auth

import (
	"context"
	"fmt"

	"github.com/rrwood/hive-schedule-mgr/internal/core/domain"
	"github.com/rrwood/hive-schedule-mgr/internal/core/ports/driven"
)

// Ensure RefreshOnlyAuthenticator implements the Authenticator interface.
var _ driven.Authenticator = (*RefreshOnlyAuthenticator)(nil)

// RefreshOnlyAuthenticator is seeded with a refresh token captured out of
// band, for example from another Hive client or a login on a different
// machine. It renews through the normal Cognito refresh flow but has no
// password to log in with.
type RefreshOnlyAuthenticator struct {
	cognito *CognitoAuthenticator
}

// NewRefreshOnlyAuthenticator creates the refresh-only variant on top of
// a Cognito client for the refresh exchanges.
func NewRefreshOnlyAuthenticator(cognito *CognitoAuthenticator) *RefreshOnlyAuthenticator {
	return &RefreshOnlyAuthenticator{cognito: cognito}
}

// Method returns AuthMethodRefreshOnly.
func (a *RefreshOnlyAuthenticator) Method() domain.AuthMethod {
	return domain.AuthMethodRefreshOnly
}

// Login seeds the account from the supplied refresh token by running one
// refresh exchange, which both validates the token and yields the first
// id token.
func (a *RefreshOnlyAuthenticator) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResult, error) {
	if req.RefreshToken == "" {
		return nil, fmt.Errorf("%w: refresh-only setup needs a refresh token", domain.ErrInvalidInput)
	}
	tokens, err := a.cognito.Refresh(ctx, req.RefreshToken)
	if err != nil {
		return nil, err
	}
	if tokens.RefreshToken == "" {
		tokens.RefreshToken = req.RefreshToken
	}
	return &domain.LoginResult{Tokens: tokens}, nil
}

// CompleteMFA is not part of the refresh-only flow.
func (a *RefreshOnlyAuthenticator) CompleteMFA(_ context.Context, _ domain.MFAChallenge, _ string) (*domain.LoginResult, error) {
	return nil, fmt.Errorf("%w: refresh-only setups have no MFA flow", domain.ErrNotImplemented)
}

// Refresh delegates to the shared Cognito refresh flow.
func (a *RefreshOnlyAuthenticator) Refresh(ctx context.Context, refreshToken string) (*domain.TokenSet, error) {
	return a.cognito.Refresh(ctx, refreshToken)
}
