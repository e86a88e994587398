package memory

import (
	"context"
	"sync"

	"github.com/rrwood/hive-schedule-mgr/internal/core/domain"
	"github.com/rrwood/hive-schedule-mgr/internal/core/ports/driven"
)

// Ensure TokenStore implements the interface.
var _ driven.TokenStore = (*TokenStore)(nil)

// TokenStore is an in-memory implementation of driven.TokenStore for testing.
type TokenStore struct {
	mu     sync.RWMutex
	tokens *domain.TokenSet
}

// NewTokenStore creates a new in-memory token store.
func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// Load returns the stored token set, or nil when none is stored.
func (s *TokenStore) Load(_ context.Context) (*domain.TokenSet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.tokens == nil {
		return nil, nil
	}
	tokens := *s.tokens
	return &tokens, nil
}

// Save stores the token set, replacing any previous one.
func (s *TokenStore) Save(_ context.Context, tokens domain.TokenSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = &tokens
	return nil
}

// Clear removes the stored token set.
func (s *TokenStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = nil
	return nil
}
