package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rrwood/hive-schedule-mgr/internal/core/domain"
	"github.com/rrwood/hive-schedule-mgr/internal/core/ports/driven"
	"github.com/rrwood/hive-schedule-mgr/internal/core/ports/driving"
	"github.com/rrwood/hive-schedule-mgr/internal/logger"
)

// Ensure TokenRefresher implements the interface.
var _ driving.Refresher = (*TokenRefresher)(nil)

// TokenRefresher keeps the stored token set fresh on a fixed cadence in
// serve mode. Each tick asks the token source for a usable token, which
// refreshes only when the cached one is inside the safety margin; the
// source serialises that against on-demand callers, so the loop never
// races a command-triggered refresh.
type TokenRefresher struct {
	tokens   driven.TokenSource
	interval time.Duration
	log      *logger.Logger

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	wg      sync.WaitGroup
}

// NewTokenRefresher creates a refresher with the given cadence.
func NewTokenRefresher(tokens driven.TokenSource, interval time.Duration, log *logger.Logger) *TokenRefresher {
	return &TokenRefresher{
		tokens:   tokens,
		interval: interval,
		log:      log,
	}
}

// Start begins the refresh loop. It blocks until the context is cancelled
// or Stop is called.
func (r *TokenRefresher) Start(ctx context.Context) error {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return nil // Already running
	}
	r.running = true
	r.stopCh = make(chan struct{})
	r.mu.Unlock()

	r.wg.Add(1)
	defer r.wg.Done()

	// Check once up front so a long interval does not delay noticing an
	// already stale token.
	r.refresh(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-r.stopCh:
			return nil
		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}

// Stop gracefully shuts down the loop and waits for an in-flight refresh.
func (r *TokenRefresher) Stop() error {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return nil
	}
	r.running = false
	close(r.stopCh)
	r.mu.Unlock()

	r.wg.Wait()
	return nil
}

func (r *TokenRefresher) refresh(ctx context.Context) {
	_, err := r.tokens.Token(ctx)
	switch {
	case err == nil:
		r.log.Debugf("Background token check passed")
	case errors.Is(err, domain.ErrReauthRequired):
		r.log.Errorf("Refresh token rejected, run login to re-authenticate")
	case errors.Is(err, domain.ErrAuthRequired):
		r.log.Warnf("No usable tokens for background refresh: %v", err)
	default:
		r.log.Warnf("Background token refresh failed: %v", err)
	}
}
