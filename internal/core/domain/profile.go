package domain

import (
	"fmt"
	"sort"
	"strings"
)

// ProfileSet maps profile names to their day schedules.
// A set is immutable once loaded; callers reload from the backing store to
// pick up edits rather than mutating a loaded set.
type ProfileSet map[string]DaySchedule

// Names returns the profile names in sorted order.
func (p ProfileSet) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get looks up a profile by name. The error message lists the available
// names so callers can surface them without a second lookup.
func (p ProfileSet) Get(name string) (DaySchedule, error) {
	schedule, ok := p[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)",
			ErrUnknownProfile, name, strings.Join(p.Names(), ", "))
	}
	return schedule, nil
}

// BuiltinProfiles returns the compiled-in fallback profile table, served
// when the profile file is missing or unreadable. The values mirror the
// documented defaults written to a fresh profile file.
func BuiltinProfiles() ProfileSet {
	return ProfileSet{
		"workday": {
			{Time: "05:20", Temp: 18.5},
			{Time: "07:00", Temp: 18.0},
			{Time: "16:30", Temp: 19.5},
			{Time: "21:45", Temp: 16.0},
		},
		"weekend": {
			{Time: "07:30", Temp: 18.5},
			{Time: "09:00", Temp: 18.0},
			{Time: "16:30", Temp: 19.5},
			{Time: "22:00", Temp: 16.0},
		},
		"nonworkday": {
			{Time: "06:30", Temp: 18.5},
			{Time: "08:00", Temp: 18.0},
			{Time: "16:30", Temp: 19.5},
			{Time: "22:00", Temp: 16.0},
		},
		"holiday": {
			{Time: "00:00", Temp: 15.0},
		},
		"all_day_comfort": {
			{Time: "00:00", Temp: 19.0},
		},
		"custom1": {
			{Time: "05:30", Temp: 17.0},
			{Time: "08:00", Temp: 16.5},
			{Time: "12:00", Temp: 18.0},
			{Time: "17:00", Temp: 19.0},
			{Time: "22:30", Temp: 16.0},
		},
		"custom2": {
			{Time: "06:00", Temp: 18.0},
			{Time: "09:00", Temp: 17.5},
			{Time: "13:00", Temp: 18.5},
			{Time: "18:00", Temp: 19.5},
			{Time: "23:00", Temp: 16.5},
		},
	}
}
