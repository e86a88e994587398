package services

import (
	"context"

	"github.com/rrwood/hive-schedule-mgr/internal/core/domain"
	"github.com/rrwood/hive-schedule-mgr/internal/core/ports/driven"
	"github.com/rrwood/hive-schedule-mgr/internal/core/ports/driving"
)

// defaultHistoryLimit caps Recent when the caller does not give a limit.
const defaultHistoryLimit = 20

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService exposes the submission audit trail.
type HistoryService struct {
	store driven.HistoryStore
}

// NewHistoryService creates a new history service.
func NewHistoryService(store driven.HistoryStore) *HistoryService {
	return &HistoryService{store: store}
}

// Recent returns the newest records, most recent first.
func (s *HistoryService) Recent(ctx context.Context, limit int) ([]domain.SubmissionRecord, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return s.store.RecentSubmissions(ctx, limit)
}
