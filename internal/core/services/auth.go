package services

import (
	"context"
	"fmt"

	"github.com/rrwood/hive-schedule-mgr/internal/core/domain"
	"github.com/rrwood/hive-schedule-mgr/internal/core/ports/driven"
	"github.com/rrwood/hive-schedule-mgr/internal/core/ports/driving"
	"github.com/rrwood/hive-schedule-mgr/internal/logger"
)

// Ensure AuthService implements the interface.
var _ driving.AuthService = (*AuthService)(nil)

// AuthService drives the token lifecycle: one-time login, forced refresh,
// status reporting and logout.
type AuthService struct {
	authenticator driven.Authenticator
	tokens        driven.TokenSource
	log           *logger.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(authenticator driven.Authenticator, tokens driven.TokenSource, log *logger.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		tokens:        tokens,
		log:           log,
	}
}

// Login performs the one-time initial authentication for the configured
// method and persists the resulting token set. When the provider demands a
// second factor the result carries the challenge instead and nothing is
// stored yet.
func (s *AuthService) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResult, error) {
	result, err := s.authenticator.Login(ctx, req)
	if err != nil {
		return nil, err
	}
	if result.Challenge != nil {
		s.log.Infof("MFA code sent to %s", result.Challenge.Destination)
		return result, nil
	}
	if err := s.storeTokens(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

// CompleteMFA answers the SMS challenge returned by Login and persists the
// resulting token set.
func (s *AuthService) CompleteMFA(ctx context.Context, challenge domain.MFAChallenge, code string) (*domain.LoginResult, error) {
	result, err := s.authenticator.CompleteMFA(ctx, challenge, code)
	if err != nil {
		return nil, err
	}
	if err := s.storeTokens(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

// RefreshToken forces an immediate refresh exchange regardless of the
// remaining validity.
func (s *AuthService) RefreshToken(ctx context.Context) (*domain.TokenStatus, error) {
	return s.tokens.ForceRefresh(ctx)
}

// Status reports the stored token state without refreshing.
func (s *AuthService) Status(ctx context.Context) (*domain.TokenStatus, error) {
	return s.tokens.Status(ctx)
}

// Logout clears the stored token set.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.tokens.Clear(ctx)
}

func (s *AuthService) storeTokens(ctx context.Context, result *domain.LoginResult) error {
	if result.Tokens == nil {
		return fmt.Errorf("%w: login produced no tokens", domain.ErrAuthRequired)
	}
	if err := s.tokens.StoreInitial(ctx, *result.Tokens); err != nil {
		return fmt.Errorf("store tokens: %w", err)
	}
	s.log.Infof("Authenticated as %s", result.Tokens.AccountID)
	return nil
}
