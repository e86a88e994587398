package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rrwood/hive-schedule-mgr/internal/core/domain"
	"github.com/rrwood/hive-schedule-mgr/internal/core/ports/driven"
	"github.com/rrwood/hive-schedule-mgr/internal/core/ports/driving"
	"github.com/rrwood/hive-schedule-mgr/internal/logger"
)

// historyKeep bounds the submission audit trail; older records are pruned
// after each write.
const historyKeep = 100

// Ensure ScheduleService implements the interface.
var _ driving.ScheduleService = (*ScheduleService)(nil)

// ScheduleService resolves, validates and pushes day schedules.
type ScheduleService struct {
	tokens   driven.TokenSource
	gateway  driven.HeatingGateway
	profiles driven.ProfileStore
	history  driven.HistoryStore
	log      *logger.Logger
}

// NewScheduleService creates a new schedule service.
func NewScheduleService(
	tokens driven.TokenSource,
	gateway driven.HeatingGateway,
	profiles driven.ProfileStore,
	history driven.HistoryStore,
	log *logger.Logger,
) *ScheduleService {
	return &ScheduleService{
		tokens:   tokens,
		gateway:  gateway,
		profiles: profiles,
		history:  history,
		log:      log,
	}
}

// SetDaySchedule handles one set-day command end to end: resolve the
// schedule source, validate, push, and record the outcome. Input problems
// fail before any network call.
func (s *ScheduleService) SetDaySchedule(ctx context.Context, req domain.SetDayRequest) (*domain.SetDayResult, error) {
	if strings.TrimSpace(req.NodeID) == "" {
		return nil, fmt.Errorf("%w: node id is empty", domain.ErrInvalidInput)
	}
	day, err := domain.ParseWeekday(req.Day)
	if err != nil {
		return nil, err
	}

	schedule, source, warning, err := s.resolveSchedule(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := schedule.Validate(); err != nil {
		return nil, err
	}

	token, err := s.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	s.log.Infof("Setting %s schedule on node %s (%s)", day, req.NodeID, source)
	confirmed, err := s.gateway.PushDaySchedule(ctx, token, req.NodeID, day, schedule)
	if err != nil && errors.Is(err, domain.ErrAuthRequired) {
		confirmed, err = s.retryAfterRefresh(ctx, req.NodeID, day, schedule)
	}

	s.record(ctx, req.NodeID, day, source, schedule, err)
	if err != nil {
		return nil, err
	}

	result := &domain.SetDayResult{
		NodeID:  req.NodeID,
		Day:     day,
		Source:  source,
		Entries: schedule,
		Warning: warning,
	}
	if updated, ok := confirmed.DaySchedule(day); ok {
		result.Confirmed = updated.Readable()
		s.log.Infof("Vendor confirmed %s: %s", strings.ToUpper(day.String()), result.Confirmed)
	}
	return result, nil
}

// resolveSchedule picks the set-point list to push. An explicit schedule
// beats a named profile; supplying neither is an error.
func (s *ScheduleService) resolveSchedule(ctx context.Context, req domain.SetDayRequest) (domain.DaySchedule, string, string, error) {
	switch {
	case len(req.Schedule) > 0 && req.Profile != "":
		warning := fmt.Sprintf("both profile and schedule supplied, using the explicit schedule (profile %q ignored)", req.Profile)
		s.log.Warnf("%s", warning)
		return req.Schedule, domain.SubmissionSourceCustom, warning, nil
	case len(req.Schedule) > 0:
		return req.Schedule, domain.SubmissionSourceCustom, "", nil
	case req.Profile != "":
		profiles, err := s.profiles.Load(ctx)
		if err != nil {
			return nil, "", "", fmt.Errorf("load profiles: %w", err)
		}
		schedule, err := profiles.Get(req.Profile)
		if err != nil {
			return nil, "", "", err
		}
		return schedule, req.Profile, "", nil
	default:
		return nil, "", "", fmt.Errorf("%w: either a profile or a schedule must be supplied", domain.ErrInvalidInput)
	}
}

// retryAfterRefresh runs the single allowed recovery for a vendor auth
// rejection: one forced refresh, then one more push. Whatever that second
// attempt returns is final.
func (s *ScheduleService) retryAfterRefresh(ctx context.Context, nodeID string, day domain.Weekday, schedule domain.DaySchedule) (*domain.WireSchedule, error) {
	s.log.Infof("Vendor rejected the token, refreshing and retrying once")
	if _, err := s.tokens.ForceRefresh(ctx); err != nil {
		return nil, err
	}
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}
	return s.gateway.PushDaySchedule(ctx, token, nodeID, day, schedule)
}

// record appends one audit row for a completed push attempt. Audit failures
// are logged, never surfaced; the push outcome stands on its own.
func (s *ScheduleService) record(ctx context.Context, nodeID string, day domain.Weekday, source string, schedule domain.DaySchedule, pushErr error) {
	if s.history == nil {
		return
	}
	rec := domain.SubmissionRecord{
		ID:        uuid.NewString(),
		NodeID:    nodeID,
		Day:       day,
		Source:    source,
		Entries:   schedule,
		Success:   pushErr == nil,
		CreatedAt: time.Now().UTC(),
	}
	if pushErr != nil {
		rec.Error = pushErr.Error()
	}
	if err := s.history.RecordSubmission(ctx, rec); err != nil {
		s.log.Warnf("Failed to record submission: %v", err)
		return
	}
	if err := s.history.PruneSubmissions(ctx, historyKeep); err != nil {
		s.log.Warnf("Failed to prune submission history: %v", err)
	}
}
