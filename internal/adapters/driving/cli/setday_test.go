package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rrwood/hive-schedule-mgr/internal/core/domain"
)

// resetSetDayFlags clears the package-level flag values between runs.
func resetSetDayFlags() {
	setDayNode = ""
	setDayDay = ""
	setDayProfile = ""
	setDayAt = nil
}

func TestSetDayCmd_Use(t *testing.T) {
	assert.Equal(t, "set-day", setDayCmd.Use)
}

func TestSetDayCmd_Short(t *testing.T) {
	assert.Equal(t, "Push a single day's heating schedule to a node", setDayCmd.Short)
}

func TestSetDayCmd_Long(t *testing.T) {
	assert.Contains(t, setDayCmd.Long, "--profile")
	assert.Contains(t, setDayCmd.Long, "HH:MM=TEMP")
}

func TestSetDayCmd_RequiresNodeAndDay(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"set-day"})
	defer func() {
		rootCmd.SetArgs(nil)
		resetSetDayFlags()
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "required flag(s)")
}

func TestSetDayCmd_PushesProfile(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	schedule := &mockScheduleService{}
	scheduleService = schedule

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"set-day", "--node", "node-1", "--day", "monday", "--profile", "workday"})
	defer func() {
		rootCmd.SetArgs(nil)
		resetSetDayFlags()
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, 1, schedule.calls)
	assert.Equal(t, "node-1", schedule.lastReq.NodeID)
	assert.Equal(t, "monday", schedule.lastReq.Day)
	assert.Equal(t, "workday", schedule.lastReq.Profile)
	assert.Empty(t, schedule.lastReq.Schedule)
	assert.Contains(t, buf.String(), "Updated MONDAY on node node-1 (source: workday)")
}

func TestSetDayCmd_PushesExplicitSetPoints(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	schedule := &mockScheduleService{}
	scheduleService = schedule

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"set-day", "--node", "node-1", "--day", "saturday",
		"--at", "07:30=18.5", "--at", "22:00=16"})
	defer func() {
		rootCmd.SetArgs(nil)
		resetSetDayFlags()
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	require.Len(t, schedule.lastReq.Schedule, 2)
	assert.Equal(t, domain.ScheduleEntry{Time: "07:30", Temp: 18.5}, schedule.lastReq.Schedule[0])
	assert.Equal(t, domain.ScheduleEntry{Time: "22:00", Temp: 16.0}, schedule.lastReq.Schedule[1])
	assert.Contains(t, buf.String(), "source: custom")
	assert.Contains(t, buf.String(), "07:30 → 18.5°C")
}

func TestSetDayCmd_WarnsWhenProfileAndSetPointsGiven(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"set-day", "--node", "node-1", "--day", "monday",
		"--profile", "workday", "--at", "06:30=19"})
	defer func() {
		rootCmd.SetArgs(nil)
		resetSetDayFlags()
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Warning:")
}

func TestSetDayCmd_RejectsMalformedSetPoint(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	schedule := &mockScheduleService{}
	scheduleService = schedule

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"set-day", "--node", "node-1", "--day", "monday", "--at", "0630-19"})
	defer func() {
		rootCmd.SetArgs(nil)
		resetSetDayFlags()
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not HH:MM=TEMP")
	assert.Equal(t, 0, schedule.calls)
}

func TestSetDayCmd_RejectsNonNumericTemperature(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	schedule := &mockScheduleService{}
	scheduleService = schedule

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"set-day", "--node", "node-1", "--day", "monday", "--at", "06:30=warm"})
	defer func() {
		rootCmd.SetArgs(nil)
		resetSetDayFlags()
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not a number")
	assert.Equal(t, 0, schedule.calls)
}

func TestSetDayCmd_ServiceNotConfigured(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	scheduleService = nil

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"set-day", "--node", "node-1", "--day", "monday", "--profile", "workday"})
	defer func() {
		rootCmd.SetArgs(nil)
		resetSetDayFlags()
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "schedule service not configured")
}

func TestSetDayCmd_ServiceError(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	scheduleService = &mockScheduleService{err: domain.ErrUnknownNode}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"set-day", "--node", "node-x", "--day", "monday", "--profile", "workday"})
	defer func() {
		rootCmd.SetArgs(nil)
		resetSetDayFlags()
	}()

	err := rootCmd.Execute()

	assert.ErrorIs(t, err, domain.ErrUnknownNode)
}

func TestParseSetPoints_Empty(t *testing.T) {
	schedule, err := parseSetPoints(nil)

	assert.NoError(t, err)
	assert.Nil(t, schedule)
}
