package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Weekday identifies a day of the week using the vendor's wire spelling
// (lowercase English day names).
type Weekday string

// Days of the week.
const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// Weekdays returns all days in calendar order (Monday first, as the vendor
// lists them).
func Weekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// ParseWeekday normalises a day name (case-insensitive, surrounding
// whitespace ignored) and validates it.
func ParseWeekday(s string) (Weekday, error) {
	day := Weekday(strings.ToLower(strings.TrimSpace(s)))
	if !day.IsValid() {
		return "", fmt.Errorf("%w: unknown day %q", ErrInvalidInput, s)
	}
	return day, nil
}

// IsValid returns true if the day is recognised.
func (d Weekday) IsValid() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	default:
		return false
	}
}

// String returns the wire spelling.
func (d Weekday) String() string {
	return string(d)
}

// Target temperature bounds accepted by Hive heating products, in °C.
const (
	MinTargetTemp = 5.0
	MaxTargetTemp = 32.0
)

// ScheduleEntry is a single set-point: from Time onwards, heat to Temp.
type ScheduleEntry struct {
	// Time is the switch time as "HH:MM" on a 24-hour clock.
	Time string `json:"time" yaml:"time"`
	// Temp is the target temperature in °C.
	Temp float64 `json:"temp" yaml:"temp"`
}

// Validate checks the entry against the vendor's accepted ranges.
func (e ScheduleEntry) Validate() error {
	if _, err := TimeToMinutes(e.Time); err != nil {
		return err
	}
	if e.Temp < MinTargetTemp || e.Temp > MaxTargetTemp {
		return fmt.Errorf("%w: temperature %.1f°C out of range (%.0f-%.0f°C)",
			ErrInvalidSchedule, e.Temp, MinTargetTemp, MaxTargetTemp)
	}
	return nil
}

// DaySchedule is the ordered set-point list for a single day.
// Entries are submitted in the order given; chronological order is not
// required by the vendor and not enforced here.
type DaySchedule []ScheduleEntry

// Validate checks every entry of the day.
// It is pure: profile-sourced and custom schedules go through the identical
// checks, and nothing is mutated.
func (s DaySchedule) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: schedule is empty", ErrInvalidSchedule)
	}
	for i, entry := range s {
		if err := entry.Validate(); err != nil {
			return fmt.Errorf("entry %d: %w", i+1, err)
		}
	}
	return nil
}

// TimeToMinutes converts an "HH:MM" clock time to minutes from midnight,
// the unit the vendor's wire format uses.
func TimeToMinutes(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: time %q is not HH:MM", ErrInvalidSchedule, s)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: time %q is not HH:MM", ErrInvalidSchedule, s)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: time %q is not HH:MM", ErrInvalidSchedule, s)
	}
	if hours < 0 || hours > 23 {
		return 0, fmt.Errorf("%w: hour %d out of range (0-23)", ErrInvalidSchedule, hours)
	}
	if minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: minute %d out of range (0-59)", ErrInvalidSchedule, minutes)
	}
	return hours*60 + minutes, nil
}

// MinutesToTime converts minutes from midnight back to a zero-padded
// "HH:MM" string. It is the inverse of TimeToMinutes for all valid inputs.
func MinutesToTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
