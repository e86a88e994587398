package domain

// SetDayRequest is one inbound set-day-schedule command.
// Exactly one of Profile and Schedule should be supplied; when both are
// present the explicit Schedule wins and the caller is warned.
type SetDayRequest struct {
	// NodeID is the heating node to update.
	NodeID string `json:"node_id"`
	// Day is the raw day name; the service normalises it.
	Day string `json:"day"`
	// Profile names a stored profile to push.
	Profile string `json:"profile,omitempty"`
	// Schedule is an explicit set-point list, overriding Profile.
	Schedule DaySchedule `json:"schedule,omitempty"`
}

// SetDayResult reports a completed submission.
type SetDayResult struct {
	// NodeID is the node that was updated.
	NodeID string `json:"node_id"`
	// Day is the normalised day.
	Day Weekday `json:"day"`
	// Source is the profile name used, or SubmissionSourceCustom.
	Source string `json:"source"`
	// Entries is the schedule as submitted.
	Entries DaySchedule `json:"entries"`
	// Warning is set when both profile and schedule were supplied and the
	// profile was ignored.
	Warning string `json:"warning,omitempty"`
	// Confirmed is the vendor's readable view of the updated day, when the
	// response carried one.
	Confirmed string `json:"confirmed,omitempty"`
}
