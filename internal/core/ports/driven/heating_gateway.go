package driven

import (
	"context"

	"github.com/rrwood/hive-schedule-mgr/internal/core/domain"
)

// HeatingGateway submits schedule documents to the vendor's REST API.
//
// Error mapping is part of the contract so the submit flow can react
// without inspecting HTTP details:
//   - 401/403 wrap domain.ErrAuthRequired (caller refreshes and retries once)
//   - 404 wraps domain.ErrUnknownNode
//   - timeouts and transport errors wrap domain.ErrSubmissionFailed
type HeatingGateway interface {
	// PushDaySchedule sends a single-day partial update for the node using
	// the given token. The returned document is the vendor's view of the
	// node's schedule after the update, when the response carries one
	// (nil otherwise).
	PushDaySchedule(ctx context.Context, token, nodeID string, day domain.Weekday, schedule domain.DaySchedule) (*domain.WireSchedule, error)
}
