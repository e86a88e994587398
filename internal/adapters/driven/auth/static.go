package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/rrwood/hive-schedule-mgr/internal/core/domain"
	"github.com/rrwood/hive-schedule-mgr/internal/core/ports/driven"
)

// Ensure StaticAuthenticator implements the Authenticator interface.
var _ driven.Authenticator = (*StaticAuthenticator)(nil)

// StaticAuthenticator wraps an externally managed id token. Nothing can
// be refreshed; when the token stops working the operator supplies a new
// one through another login.
type StaticAuthenticator struct{}

// NewStaticAuthenticator creates the static-token variant.
func NewStaticAuthenticator() *StaticAuthenticator {
	return &StaticAuthenticator{}
}

// Method returns AuthMethodStatic.
func (a *StaticAuthenticator) Method() domain.AuthMethod {
	return domain.AuthMethodStatic
}

// Login records the supplied token as-is. Expiry comes from the token's
// own exp claim when it parses as a JWT, otherwise the standard lease.
func (a *StaticAuthenticator) Login(_ context.Context, req domain.LoginRequest) (*domain.LoginResult, error) {
	if req.StaticToken == "" {
		return nil, fmt.Errorf("%w: static setup needs a token", domain.ErrInvalidInput)
	}
	tokens := &domain.TokenSet{
		IDToken:   req.StaticToken,
		ExpiresAt: time.Now().Add(domain.TokenLease),
		AccountID: accountIDFromToken(req.StaticToken),
	}
	if exp := expiryFromToken(req.StaticToken); !exp.IsZero() {
		tokens.ExpiresAt = exp
	}
	return &domain.LoginResult{Tokens: tokens}, nil
}

// CompleteMFA is not part of the static flow.
func (a *StaticAuthenticator) CompleteMFA(_ context.Context, _ domain.MFAChallenge, _ string) (*domain.LoginResult, error) {
	return nil, fmt.Errorf("%w: static tokens have no MFA flow", domain.ErrNotImplemented)
}

// Refresh is not possible for a static token. The token manager never
// reaches this in practice because static sets carry no refresh token.
func (a *StaticAuthenticator) Refresh(_ context.Context, _ string) (*domain.TokenSet, error) {
	return nil, fmt.Errorf("%w: static tokens cannot be refreshed, supply a new one", domain.ErrNotImplemented)
}
