package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rrwood/hive-schedule-mgr/internal/core/domain"
	"github.com/rrwood/hive-schedule-mgr/internal/core/ports/driven"
)

// tokenStore implements driven.TokenStore. The account's token set lives
// in a single fixed row, stored as JSON.
type tokenStore struct {
	store *Store
}

var _ driven.TokenStore = (*tokenStore)(nil)

// Load retrieves the stored token set, or nil when none is stored.
func (s *tokenStore) Load(ctx context.Context) (*domain.TokenSet, error) {
	row := s.store.db.QueryRowContext(ctx, `SELECT payload FROM tokens WHERE id = 1`)

	var payload string
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning tokens: %w", err)
	}

	var tokens domain.TokenSet
	if err := json.Unmarshal([]byte(payload), &tokens); err != nil {
		return nil, fmt.Errorf("unmarshaling tokens: %w", err)
	}
	return &tokens, nil
}

// Save stores the token set, replacing any previous one.
func (s *tokenStore) Save(ctx context.Context, tokens domain.TokenSet) error {
	payload, err := json.Marshal(tokens)
	if err != nil {
		return fmt.Errorf("marshalling tokens: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO tokens (id, payload, updated_at)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			payload = excluded.payload,
			updated_at = excluded.updated_at
	`, string(payload), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("saving tokens: %w", err)
	}
	return nil
}

// Clear removes the stored token set.
func (s *tokenStore) Clear(ctx context.Context) error {
	if _, err := s.store.db.ExecContext(ctx, `DELETE FROM tokens WHERE id = 1`); err != nil {
		return fmt.Errorf("clearing tokens: %w", err)
	}
	return nil
}
