package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		input   string
		want    Weekday
		wantErr bool
	}{
		{"monday", Monday, false},
		{"Monday", Monday, false},
		{"  SUNDAY  ", Sunday, false},
		{"wednesday", Wednesday, false},
		{"mon", "", true},
		{"", "", true},
		{"someday", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			day, err := ParseWeekday(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, day)
		})
	}
}

func TestWeekdays_CalendarOrder(t *testing.T) {
	days := Weekdays()
	require.Len(t, days, 7)
	assert.Equal(t, Monday, days[0])
	assert.Equal(t, Sunday, days[6])
	for _, day := range days {
		assert.True(t, day.IsValid())
	}
}

func TestTimeToMinutes(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"05:20", 320, false},
		{"00:00", 0, false},
		{"23:59", 1439, false},
		{"12:00", 720, false},
		{"9:05", 545, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"-1:00", 0, true},
		{"12", 0, true},
		{"12:00:00", 0, true},
		{"ab:cd", 0, true},
		{"12:5x", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := TimeToMinutes(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSchedule)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMinutesToTime(t *testing.T) {
	assert.Equal(t, "05:20", MinutesToTime(320))
	assert.Equal(t, "00:00", MinutesToTime(0))
	assert.Equal(t, "23:59", MinutesToTime(1439))
}

func TestTimeCodec_RoundTrip(t *testing.T) {
	// Every valid clock time survives the round trip.
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m++ {
			clock := fmt.Sprintf("%02d:%02d", h, m)
			minutes, err := TimeToMinutes(clock)
			require.NoError(t, err)
			assert.Equal(t, h*60+m, minutes)
			assert.Equal(t, clock, MinutesToTime(minutes))
		}
	}
}

func TestScheduleEntry_Validate(t *testing.T) {
	tests := []struct {
		name    string
		entry   ScheduleEntry
		wantErr bool
	}{
		{"valid", ScheduleEntry{Time: "06:30", Temp: 18.5}, false},
		{"min temp", ScheduleEntry{Time: "06:30", Temp: 5.0}, false},
		{"max temp", ScheduleEntry{Time: "06:30", Temp: 32.0}, false},
		{"too cold", ScheduleEntry{Time: "06:30", Temp: 4.9}, true},
		{"too hot", ScheduleEntry{Time: "06:30", Temp: 32.1}, true},
		{"bad time", ScheduleEntry{Time: "25:00", Temp: 18.0}, true},
		{"missing time", ScheduleEntry{Temp: 18.0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entry.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSchedule)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestDaySchedule_Validate(t *testing.T) {
	valid := DaySchedule{
		{Time: "05:20", Temp: 18.5},
		{Time: "07:00", Temp: 18.0},
		{Time: "21:45", Temp: 16.0},
	}
	assert.NoError(t, valid.Validate())
}

func TestDaySchedule_Validate_Empty(t *testing.T) {
	err := DaySchedule{}.Validate()
	assert.ErrorIs(t, err, ErrInvalidSchedule)
	assert.Contains(t, err.Error(), "empty")
}

func TestDaySchedule_Validate_ReportsEntryPosition(t *testing.T) {
	schedule := DaySchedule{
		{Time: "05:20", Temp: 18.5},
		{Time: "07:00", Temp: 99.0},
	}
	err := schedule.Validate()
	assert.ErrorIs(t, err, ErrInvalidSchedule)
	assert.Contains(t, err.Error(), "entry 2")
}

func TestDaySchedule_Validate_OrderNotEnforced(t *testing.T) {
	// Entries out of chronological order are accepted as-is.
	schedule := DaySchedule{
		{Time: "21:45", Temp: 16.0},
		{Time: "05:20", Temp: 18.5},
	}
	assert.NoError(t, schedule.Validate())
}
