package domain

import "time"

// SubmissionSourceCustom marks records whose schedule was passed inline
// rather than resolved from a named profile.
const SubmissionSourceCustom = "custom"

// SubmissionRecord is one audit row for a schedule push attempt.
// The server stays authoritative for schedules; records exist for operator
// visibility, not for replay.
type SubmissionRecord struct {
	// ID is the unique identifier (UUID).
	ID string `json:"id"`
	// NodeID is the heating node the schedule was pushed to.
	NodeID string `json:"node_id"`
	// Day is the day the schedule applies to.
	Day Weekday `json:"day"`
	// Source is the profile name, or SubmissionSourceCustom.
	Source string `json:"source"`
	// Entries is the schedule as submitted.
	Entries DaySchedule `json:"entries"`
	// Success is true when the vendor accepted the schedule.
	Success bool `json:"success"`
	// Error holds the failure reason when Success is false.
	Error string `json:"error,omitempty"`
	// CreatedAt is when the attempt finished.
	CreatedAt time.Time `json:"created_at"`
}
