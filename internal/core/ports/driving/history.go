package driving

import (
	"context"

	"github.com/rrwood/hive-schedule-mgr/internal/core/domain"
)

// HistoryService exposes recent submission records.
type HistoryService interface {
	// Recent returns the newest records, most recent first.
	Recent(ctx context.Context, limit int) ([]domain.SubmissionRecord, error)
}
