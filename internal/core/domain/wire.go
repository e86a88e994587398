package domain

import (
	"fmt"
	"strings"
)

// WireTarget is the nested set-point value of a wire entry.
type WireTarget struct {
	// Target is the temperature in °C.
	Target float64 `json:"target"`
}

// WireEntry is one set-point in the vendor's on-wire representation:
// heat to Value.Target from Start minutes after midnight.
type WireEntry struct {
	Value WireTarget `json:"value"`
	Start int        `json:"start"`
}

// WireSchedule is the vendor's JSON schedule document, keyed by lowercase
// day name. A document carrying a single day acts as a partial update:
// days not present are left untouched server-side.
type WireSchedule struct {
	Schedule map[string][]WireEntry `json:"schedule"`
}

// BuildWireDay converts a validated day schedule into a single-day wire
// document for the given day.
func BuildWireDay(day Weekday, schedule DaySchedule) (*WireSchedule, error) {
	if !day.IsValid() {
		return nil, fmt.Errorf("%w: unknown day %q", ErrInvalidInput, day)
	}
	entries := make([]WireEntry, 0, len(schedule))
	for _, e := range schedule {
		start, err := TimeToMinutes(e.Time)
		if err != nil {
			return nil, err
		}
		entries = append(entries, WireEntry{
			Value: WireTarget{Target: e.Temp},
			Start: start,
		})
	}
	return &WireSchedule{
		Schedule: map[string][]WireEntry{day.String(): entries},
	}, nil
}

// Days returns the days present in the document, in calendar order.
func (w *WireSchedule) Days() []Weekday {
	if w == nil {
		return nil
	}
	var days []Weekday
	for _, day := range Weekdays() {
		if _, ok := w.Schedule[day.String()]; ok {
			days = append(days, day)
		}
	}
	return days
}

// DaySchedule converts one day of the document back into clock-time form.
// The second return is false when the day is absent.
func (w *WireSchedule) DaySchedule(day Weekday) (DaySchedule, bool) {
	if w == nil {
		return nil, false
	}
	entries, ok := w.Schedule[day.String()]
	if !ok {
		return nil, false
	}
	schedule := make(DaySchedule, 0, len(entries))
	for _, e := range entries {
		schedule = append(schedule, ScheduleEntry{
			Time: MinutesToTime(e.Start),
			Temp: e.Value.Target,
		})
	}
	return schedule, true
}

// Readable renders the document as human-readable lines, one per day
// present, in calendar order:
//
//	MONDAY: 05:20 → 18.5°C, 07:00 → 18°C
//
// Used for confirmation logging and the decode command.
func (w *WireSchedule) Readable() []string {
	var lines []string
	for _, day := range w.Days() {
		schedule, _ := w.DaySchedule(day)
		lines = append(lines, fmt.Sprintf("%s: %s", strings.ToUpper(day.String()), schedule.Readable()))
	}
	return lines
}

// Readable renders the day's set-points as "HH:MM → T°C" pairs.
func (s DaySchedule) Readable() string {
	parts := make([]string, 0, len(s))
	for _, e := range s {
		parts = append(parts, fmt.Sprintf("%s → %v°C", e.Time, e.Temp))
	}
	return strings.Join(parts, ", ")
}
