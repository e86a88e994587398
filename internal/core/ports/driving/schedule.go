package driving

import (
	"context"

	"github.com/rrwood/hive-schedule-mgr/internal/core/domain"
)

// ScheduleService handles inbound schedule commands.
type ScheduleService interface {
	// SetDaySchedule resolves the schedule source (named profile or
	// explicit list), validates it, and pushes it to the node. Exactly one
	// of Profile/Schedule must be supplied; both favours Schedule with a
	// warning, neither fails before any network call.
	SetDaySchedule(ctx context.Context, req domain.SetDayRequest) (*domain.SetDayResult, error)
}
