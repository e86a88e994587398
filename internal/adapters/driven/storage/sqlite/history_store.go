package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rrwood/hive-schedule-mgr/internal/core/domain"
	"github.com/rrwood/hive-schedule-mgr/internal/core/ports/driven"
)

// historyStore implements driven.HistoryStore.
type historyStore struct {
	store *Store
}

var _ driven.HistoryStore = (*historyStore)(nil)

// RecordSubmission appends one audit record.
func (s *historyStore) RecordSubmission(ctx context.Context, rec domain.SubmissionRecord) error {
	entriesJSON, err := json.Marshal(rec.Entries)
	if err != nil {
		return fmt.Errorf("marshalling entries: %w", err)
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO submissions (id, node_id, day, source, entries, success, error, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.NodeID, rec.Day.String(), rec.Source, string(entriesJSON),
		rec.Success, nullString(rec.Error), rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("saving submission: %w", err)
	}
	return nil
}

// RecentSubmissions returns the newest records, most recent first.
// A non-positive limit returns everything.
func (s *historyStore) RecentSubmissions(ctx context.Context, limit int) ([]domain.SubmissionRecord, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, node_id, day, source, entries, success, error, created_at
		FROM submissions
		ORDER BY created_at DESC, id
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying submissions: %w", err)
	}
	defer rows.Close()

	var records []domain.SubmissionRecord
	for rows.Next() {
		rec, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

// PruneSubmissions deletes all but the newest keep records.
func (s *historyStore) PruneSubmissions(ctx context.Context, keep int) error {
	if keep < 0 {
		keep = 0
	}

	_, err := s.store.db.ExecContext(ctx, `
		DELETE FROM submissions
		WHERE id NOT IN (
			SELECT id FROM submissions
			ORDER BY created_at DESC, id
			LIMIT ?
		)
	`, keep)
	if err != nil {
		return fmt.Errorf("pruning submissions: %w", err)
	}
	return nil
}

func scanSubmission(rows *sql.Rows) (*domain.SubmissionRecord, error) {
	var rec domain.SubmissionRecord
	var day, entriesJSON string
	var errMsg sql.NullString
	var createdAt sql.NullTime
	if err := rows.Scan(&rec.ID, &rec.NodeID, &day, &rec.Source, &entriesJSON,
		&rec.Success, &errMsg, &createdAt); err != nil {
		return nil, fmt.Errorf("scanning submission: %w", err)
	}

	rec.Day = domain.Weekday(day)
	if err := json.Unmarshal([]byte(entriesJSON), &rec.Entries); err != nil {
		return nil, fmt.Errorf("unmarshaling entries: %w", err)
	}
	rec.Error = errMsg.String
	if createdAt.Valid {
		rec.CreatedAt = createdAt.Time
	}
	return &rec, nil
}

// nullString converts empty strings to SQL NULL.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
