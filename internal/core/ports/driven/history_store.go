package driven

import (
	"context"

	"github.com/rrwood/hive-schedule-mgr/internal/core/domain"
)

// HistoryStore persists submission audit records.
type HistoryStore interface {
	// RecordSubmission appends one record.
	RecordSubmission(ctx context.Context, rec domain.SubmissionRecord) error

	// RecentSubmissions returns the newest records, most recent first.
	RecentSubmissions(ctx context.Context, limit int) ([]domain.SubmissionRecord, error)

	// PruneSubmissions deletes all but the newest keep records.
	PruneSubmissions(ctx context.Context, keep int) error
}
