package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rrwood/hive-schedule-mgr/internal/core/domain"
	"github.com/rrwood/hive-schedule-mgr/internal/core/ports/driven"
	"github.com/rrwood/hive-schedule-mgr/internal/logger"
)

// Ensure Manager implements the TokenSource interface.
var _ driven.TokenSource = (*Manager)(nil)

// Manager is the per-account token manager. It hands out the stored id
// token while it has comfortable validity left and runs the refresh
// exchange once the token comes within the safety margin of expiry.
// Refreshes are serialised on an internal mutex, so overlapping callers
// (schedule pushes, the background refresher, explicit refresh commands)
// wait for a single exchange instead of racing their own.
type Manager struct {
	authenticator driven.Authenticator
	tokenStore    driven.TokenStore
	log           *logger.Logger

	mu          sync.RWMutex
	cachedToken string
	cacheExpiry time.Time

	refreshMargin time.Duration
}

// NewManager creates a token manager on top of an authenticator variant
// and a token store.
func NewManager(authenticator driven.Authenticator, tokenStore driven.TokenStore, log *logger.Logger) *Manager {
	return &Manager{
		authenticator: authenticator,
		tokenStore:    tokenStore,
		log:           log,
		refreshMargin: domain.RefreshMargin,
	}
}

// Token returns an id token with at least the refresh margin of validity
// left, refreshing first when the stored one is expired or close to it.
func (m *Manager) Token(ctx context.Context) (string, error) {
	// Fast path: check cache with read lock.
	m.mu.RLock()
	if m.cachedToken != "" && time.Now().Before(m.cacheExpiry) {
		token := m.cachedToken
		m.mu.RUnlock()
		return token, nil
	}
	m.mu.RUnlock()

	// Slow path: acquire write lock for potential refresh.
	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check cache after acquiring write lock (another goroutine
	// may have refreshed).
	if m.cachedToken != "" && time.Now().Before(m.cacheExpiry) {
		return m.cachedToken, nil
	}

	tokens, err := m.load(ctx)
	if err != nil {
		return "", err
	}
	if tokens.IsZero() {
		return "", fmt.Errorf("%w: no stored tokens, run login first", domain.ErrAuthRequired)
	}

	if tokens.Usable(m.refreshMargin) {
		m.cacheLocked(tokens)
		return tokens.IDToken, nil
	}

	if !tokens.HasRefreshToken() {
		return "", fmt.Errorf("%w: stored token expired and no refresh token is available", domain.ErrAuthRequired)
	}

	refreshed, err := m.refreshLocked(ctx, tokens)
	if err != nil {
		return "", err
	}
	return refreshed.IDToken, nil
}

// ForceRefresh runs the refresh exchange now, regardless of how much
// validity the stored token has left, and reports the resulting state.
func (m *Manager) ForceRefresh(ctx context.Context) (*domain.TokenStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	tokens, err := m.load(ctx)
	if err != nil {
		return nil, err
	}
	if tokens.IsZero() {
		return nil, fmt.Errorf("%w: no stored tokens, run login first", domain.ErrAuthRequired)
	}
	if !tokens.HasRefreshToken() {
		return nil, fmt.Errorf("%w: no refresh token is available", domain.ErrAuthRequired)
	}

	refreshed, err := m.refreshLocked(ctx, tokens)
	if err != nil {
		return nil, err
	}
	return statusOf(refreshed), nil
}

// Status reports on the stored token set without refreshing anything.
func (m *Manager) Status(ctx context.Context) (*domain.TokenStatus, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	tokens, err := m.load(ctx)
	if err != nil {
		return nil, err
	}
	if tokens.IsZero() {
		return &domain.TokenStatus{}, nil
	}
	return statusOf(tokens), nil
}

// StoreInitial persists the first token set produced by a login flow and
// primes the cache with it.
func (m *Manager) StoreInitial(ctx context.Context, tokens domain.TokenSet) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.tokenStore.Save(ctx, tokens); err != nil {
		return fmt.Errorf("save tokens: %w", err)
	}
	m.cacheLocked(&tokens)
	return nil
}

// Clear drops the cached and persisted token set.
func (m *Manager) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.tokenStore.Clear(ctx); err != nil {
		return fmt.Errorf("clear tokens: %w", err)
	}
	m.cachedToken = ""
	m.cacheExpiry = time.Time{}
	return nil
}

// load fetches the stored set, backfilling the expiry from the id token's
// exp claim for sets persisted before expiry tracking.
func (m *Manager) load(ctx context.Context) (*domain.TokenSet, error) {
	tokens, err := m.tokenStore.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tokens: %w", err)
	}
	if tokens != nil && tokens.ExpiresAt.IsZero() && tokens.IDToken != "" {
		tokens.ExpiresAt = expiryFromToken(tokens.IDToken)
	}
	return tokens, nil
}

// refreshLocked exchanges the refresh token for a fresh set, persists it
// and primes the cache. Callers must hold the write lock.
func (m *Manager) refreshLocked(ctx context.Context, current *domain.TokenSet) (*domain.TokenSet, error) {
	refreshed, err := m.authenticator.Refresh(ctx, current.RefreshToken)
	if err != nil {
		if errors.Is(err, domain.ErrReauthRequired) {
			// The refresh token itself was rejected. Drop the whole set so
			// nothing keeps retrying a dead token.
			if clearErr := m.tokenStore.Clear(ctx); clearErr != nil {
				m.log.Warnf("Failed to clear rejected token set: %v", clearErr)
			}
			m.cachedToken = ""
			m.cacheExpiry = time.Time{}
			return nil, fmt.Errorf("refresh token rejected: %w", err)
		}
		return nil, fmt.Errorf("refresh tokens: %w", err)
	}

	// Refresh responses carry no new refresh token; keep the current one.
	if refreshed.RefreshToken == "" {
		refreshed.RefreshToken = current.RefreshToken
	}
	if refreshed.AccountID == "" {
		refreshed.AccountID = current.AccountID
	}

	if err := m.tokenStore.Save(ctx, *refreshed); err != nil {
		return nil, fmt.Errorf("save refreshed tokens: %w", err)
	}

	m.cacheLocked(refreshed)
	m.log.Debugf("Token refreshed, valid until %s", refreshed.ExpiresAt.Format(time.RFC3339))
	return refreshed, nil
}

// cacheLocked primes the cache from a token set. Callers must hold the
// write lock.
func (m *Manager) cacheLocked(tokens *domain.TokenSet) {
	m.cachedToken = tokens.IDToken
	m.cacheExpiry = tokens.ExpiresAt.Add(-m.refreshMargin)
}

// statusOf builds a status report from a stored set.
func statusOf(tokens *domain.TokenSet) *domain.TokenStatus {
	return &domain.TokenStatus{
		Authenticated:   true,
		AccountID:       tokens.AccountID,
		ExpiresAt:       tokens.ExpiresAt,
		Remaining:       time.Until(tokens.ExpiresAt),
		HasRefreshToken: tokens.HasRefreshToken(),
	}
}
