package memory

import (
	"context"
	"sync"

	"github.com/rrwood/hive-schedule-mgr/internal/core/domain"
	"github.com/rrwood/hive-schedule-mgr/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory implementation of driven.HistoryStore for
// testing. Records are held in insertion order, oldest first.
type HistoryStore struct {
	mu      sync.RWMutex
	records []domain.SubmissionRecord
}

// NewHistoryStore creates a new in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{}
}

// RecordSubmission appends one record.
func (s *HistoryStore) RecordSubmission(_ context.Context, rec domain.SubmissionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
	return nil
}

// RecentSubmissions returns the newest records, most recent first.
func (s *HistoryStore) RecentSubmissions(_ context.Context, limit int) ([]domain.SubmissionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := len(s.records)
	if limit > 0 && limit < count {
		count = limit
	}
	result := make([]domain.SubmissionRecord, 0, count)
	for i := len(s.records) - 1; i >= 0 && len(result) < count; i-- {
		result = append(result, s.records[i])
	}
	return result, nil
}

// PruneSubmissions deletes all but the newest keep records.
func (s *HistoryStore) PruneSubmissions(_ context.Context, keep int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if keep < 0 {
		keep = 0
	}
	if len(s.records) > keep {
		s.records = append([]domain.SubmissionRecord(nil), s.records[len(s.records)-keep:]...)
	}
	return nil
}
