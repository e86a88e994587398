package services

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rrwood/hive-schedule-mgr/internal/adapters/driven/storage/memory"
	"github.com/rrwood/hive-schedule-mgr/internal/core/domain"
	"github.com/rrwood/hive-schedule-mgr/internal/core/ports/driven"
	"github.com/rrwood/hive-schedule-mgr/internal/logger"
)

// --- Mock implementations for schedule testing ---

// schedMockTokenSource implements driven.TokenSource for testing. A forced
// refresh swaps the served token for the refreshed one.
type schedMockTokenSource struct {
	mu         sync.Mutex
	token      string
	refreshed  string
	tokenErr   error
	forceErr   error
	tokenCalls int
	forceCalls int
}

func (m *schedMockTokenSource) Token(_ context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokenCalls++
	if m.tokenErr != nil {
		return "", m.tokenErr
	}
	return m.token, nil
}

func (m *schedMockTokenSource) ForceRefresh(_ context.Context) (*domain.TokenStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.forceCalls++
	if m.forceErr != nil {
		return nil, m.forceErr
	}
	if m.refreshed != "" {
		m.token = m.refreshed
	}
	return &domain.TokenStatus{Authenticated: true}, nil
}

func (m *schedMockTokenSource) Status(_ context.Context) (*domain.TokenStatus, error) {
	return &domain.TokenStatus{}, nil
}

func (m *schedMockTokenSource) StoreInitial(_ context.Context, tokens domain.TokenSet) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = tokens.IDToken
	return nil
}

func (m *schedMockTokenSource) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}

// schedPushCall captures the arguments of one gateway push.
type schedPushCall struct {
	token   string
	nodeID  string
	day     domain.Weekday
	entries domain.DaySchedule
}

// schedMockGateway implements driven.HeatingGateway for testing. Errors in
// errs are consumed one per call; calls beyond the slice succeed.
type schedMockGateway struct {
	mu      sync.Mutex
	calls   []schedPushCall
	errs    []error
	confirm *domain.WireSchedule
}

func (m *schedMockGateway) PushDaySchedule(_ context.Context, token, nodeID string, day domain.Weekday, schedule domain.DaySchedule) (*domain.WireSchedule, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, schedPushCall{token: token, nodeID: nodeID, day: day, entries: schedule})
	idx := len(m.calls) - 1
	if idx < len(m.errs) && m.errs[idx] != nil {
		return nil, m.errs[idx]
	}
	return m.confirm, nil
}

func (m *schedMockGateway) pushes(t *testing.T) []schedPushCall {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]schedPushCall(nil), m.calls...)
}

// Ensure mocks implement interfaces
var _ driven.TokenSource = (*schedMockTokenSource)(nil)
var _ driven.HeatingGateway = (*schedMockGateway)(nil)

type schedFixture struct {
	service *ScheduleService
	tokens  *schedMockTokenSource
	gateway *schedMockGateway
	history *memory.HistoryStore
}

func newSchedFixture() *schedFixture {
	tokens := &schedMockTokenSource{token: "id-token"}
	gateway := &schedMockGateway{}
	history := memory.NewHistoryStore()
	service := NewScheduleService(tokens, gateway, memory.NewProfileStore(), history, logger.Nop())
	return &schedFixture{service: service, tokens: tokens, gateway: gateway, history: history}
}

func customSchedule() domain.DaySchedule {
	return domain.DaySchedule{
		{Time: "06:30", Temp: 19.0},
		{Time: "22:00", Temp: 15.5},
	}
}

// ==================== ScheduleService Tests ====================

func TestScheduleService_PushesProfileSchedule(t *testing.T) {
	f := newSchedFixture()

	result, err := f.service.SetDaySchedule(context.Background(), domain.SetDayRequest{
		NodeID:  "node-1",
		Day:     "monday",
		Profile: "workday",
	})
	require.NoError(t, err)

	pushes := f.gateway.pushes(t)
	require.Len(t, pushes, 1)
	assert.Equal(t, "id-token", pushes[0].token)
	assert.Equal(t, "node-1", pushes[0].nodeID)
	assert.Equal(t, domain.Monday, pushes[0].day)
	assert.Equal(t, domain.BuiltinProfiles()["workday"], pushes[0].entries)

	assert.Equal(t, "workday", result.Source)
	assert.Equal(t, domain.Monday, result.Day)
	assert.Empty(t, result.Warning)

	records, err := f.history.RecentSubmissions(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, records[0].Success)
	assert.Equal(t, "workday", records[0].Source)
}

func TestScheduleService_DayNameNormalised(t *testing.T) {
	f := newSchedFixture()

	result, err := f.service.SetDaySchedule(context.Background(), domain.SetDayRequest{
		NodeID:  "node-1",
		Day:     "  Friday ",
		Profile: "weekend",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.Friday, result.Day)
}

func TestScheduleService_ExplicitScheduleOverridesProfile(t *testing.T) {
	f := newSchedFixture()

	result, err := f.service.SetDaySchedule(context.Background(), domain.SetDayRequest{
		NodeID:   "node-1",
		Day:      "tuesday",
		Profile:  "workday",
		Schedule: customSchedule(),
	})
	require.NoError(t, err)

	pushes := f.gateway.pushes(t)
	require.Len(t, pushes, 1)
	assert.Equal(t, customSchedule(), pushes[0].entries)

	assert.Equal(t, domain.SubmissionSourceCustom, result.Source)
	assert.Contains(t, result.Warning, "workday")
}

func TestScheduleService_NeitherSourceFailsBeforePush(t *testing.T) {
	f := newSchedFixture()

	_, err := f.service.SetDaySchedule(context.Background(), domain.SetDayRequest{
		NodeID: "node-1",
		Day:    "monday",
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Empty(t, f.gateway.pushes(t))
	assert.Zero(t, f.tokens.tokenCalls)
}

func TestScheduleService_UnknownProfileListsAvailable(t *testing.T) {
	f := newSchedFixture()

	_, err := f.service.SetDaySchedule(context.Background(), domain.SetDayRequest{
		NodeID:  "node-1",
		Day:     "monday",
		Profile: "nightshift",
	})
	require.ErrorIs(t, err, domain.ErrUnknownProfile)
	assert.Contains(t, err.Error(), "nightshift")
	assert.Contains(t, err.Error(), "workday")

	assert.Empty(t, f.gateway.pushes(t))
}

func TestScheduleService_InvalidScheduleNeverSubmitted(t *testing.T) {
	f := newSchedFixture()

	_, err := f.service.SetDaySchedule(context.Background(), domain.SetDayRequest{
		NodeID:   "node-1",
		Day:      "monday",
		Schedule: domain.DaySchedule{{Time: "06:30", Temp: 40.0}},
	})
	require.ErrorIs(t, err, domain.ErrInvalidSchedule)

	assert.Empty(t, f.gateway.pushes(t))
	records, err := f.history.RecentSubmissions(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestScheduleService_UnknownDayRejected(t *testing.T) {
	f := newSchedFixture()

	_, err := f.service.SetDaySchedule(context.Background(), domain.SetDayRequest{
		NodeID:  "node-1",
		Day:     "funday",
		Profile: "workday",
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, f.gateway.pushes(t))
}

func TestScheduleService_EmptyNodeRejected(t *testing.T) {
	f := newSchedFixture()

	_, err := f.service.SetDaySchedule(context.Background(), domain.SetDayRequest{
		NodeID:  "   ",
		Day:     "monday",
		Profile: "workday",
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, f.gateway.pushes(t))
}

func TestScheduleService_RetriesOnceAfterAuthRejection(t *testing.T) {
	f := newSchedFixture()
	f.tokens.refreshed = "fresh-token"
	f.gateway.errs = []error{fmt.Errorf("%w: vendor rejected token (status 401)", domain.ErrAuthRequired)}

	result, err := f.service.SetDaySchedule(context.Background(), domain.SetDayRequest{
		NodeID:  "node-1",
		Day:     "monday",
		Profile: "workday",
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	pushes := f.gateway.pushes(t)
	require.Len(t, pushes, 2)
	assert.Equal(t, "id-token", pushes[0].token)
	assert.Equal(t, "fresh-token", pushes[1].token)
	assert.Equal(t, 1, f.tokens.forceCalls)

	records, err := f.history.RecentSubmissions(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, records[0].Success)
}

func TestScheduleService_SecondRejectionIsFinal(t *testing.T) {
	f := newSchedFixture()
	rejection := fmt.Errorf("%w: vendor rejected token (status 401)", domain.ErrAuthRequired)
	f.gateway.errs = []error{rejection, rejection}

	_, err := f.service.SetDaySchedule(context.Background(), domain.SetDayRequest{
		NodeID:  "node-1",
		Day:     "monday",
		Profile: "workday",
	})
	require.ErrorIs(t, err, domain.ErrAuthRequired)

	assert.Len(t, f.gateway.pushes(t), 2)
	assert.Equal(t, 1, f.tokens.forceCalls)

	records, err := f.history.RecentSubmissions(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.False(t, records[0].Success)
	assert.Contains(t, records[0].Error, "rejected")
}

func TestScheduleService_RefreshFailureAbortsRetry(t *testing.T) {
	f := newSchedFixture()
	f.gateway.errs = []error{fmt.Errorf("%w: vendor rejected token (status 401)", domain.ErrAuthRequired)}
	f.tokens.forceErr = fmt.Errorf("refresh token rejected: %w", domain.ErrReauthRequired)

	_, err := f.service.SetDaySchedule(context.Background(), domain.SetDayRequest{
		NodeID:  "node-1",
		Day:     "monday",
		Profile: "workday",
	})
	require.ErrorIs(t, err, domain.ErrReauthRequired)

	assert.Len(t, f.gateway.pushes(t), 1)
	assert.Equal(t, 1, f.tokens.forceCalls)
}

func TestScheduleService_UnknownNodeSurfaced(t *testing.T) {
	f := newSchedFixture()
	f.gateway.errs = []error{fmt.Errorf("%w: %q (status 404)", domain.ErrUnknownNode, "node-x")}

	_, err := f.service.SetDaySchedule(context.Background(), domain.SetDayRequest{
		NodeID:  "node-x",
		Day:     "monday",
		Profile: "workday",
	})
	require.ErrorIs(t, err, domain.ErrUnknownNode)

	assert.Len(t, f.gateway.pushes(t), 1)
	assert.Equal(t, 0, f.tokens.forceCalls)

	records, err := f.history.RecentSubmissions(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.False(t, records[0].Success)
}

func TestScheduleService_ConfirmationEchoed(t *testing.T) {
	f := newSchedFixture()
	confirm, err := domain.BuildWireDay(domain.Monday, customSchedule())
	require.NoError(t, err)
	f.gateway.confirm = confirm

	result, err := f.service.SetDaySchedule(context.Background(), domain.SetDayRequest{
		NodeID:   "node-1",
		Day:      "monday",
		Schedule: customSchedule(),
	})
	require.NoError(t, err)
	assert.Contains(t, result.Confirmed, "06:30 → 19°C")
}

func TestScheduleService_NoConfirmationLeavesResultBare(t *testing.T) {
	f := newSchedFixture()

	result, err := f.service.SetDaySchedule(context.Background(), domain.SetDayRequest{
		NodeID:   "node-1",
		Day:      "monday",
		Schedule: customSchedule(),
	})
	require.NoError(t, err)
	assert.Empty(t, result.Confirmed)
	assert.Equal(t, customSchedule(), result.Entries)
}
