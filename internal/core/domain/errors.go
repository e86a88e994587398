package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrConfig indicates the stored configuration is unusable.
	ErrConfig = errors.New("invalid configuration")

	// Schedule Errors.

	// ErrInvalidSchedule indicates a schedule failed validation.
	// The wrapped message carries the reason; nothing is submitted.
	ErrInvalidSchedule = errors.New("invalid schedule")

	// ErrUnknownProfile indicates a named profile is not in the loaded set.
	// The wrapped message lists the available profile names.
	ErrUnknownProfile = errors.New("unknown profile")

	// ErrUnknownNode indicates the vendor does not recognise the node ID.
	ErrUnknownNode = errors.New("unknown node")

	// Authentication Errors.

	// ErrAuthRequired indicates no valid authentication is available.
	ErrAuthRequired = errors.New("authentication required")

	// ErrReauthRequired indicates the refresh token was rejected and the
	// stored token set has been cleared. Only a fresh login recovers this;
	// it is never retried automatically.
	ErrReauthRequired = errors.New("re-authentication required")

	// ErrMFARequired indicates the identity provider issued a second-factor
	// challenge. The login flow pauses until the SMS code is supplied.
	ErrMFARequired = errors.New("MFA code required")

	// ErrTokenRefreshFailed indicates a refresh attempt failed for a reason
	// other than a rejected refresh token (network, provider outage).
	ErrTokenRefreshFailed = errors.New("token refresh failed")

	// Submission Errors.

	// ErrSubmissionFailed indicates a schedule POST failed after the single
	// allowed retry. Transport failures and non-auth HTTP errors land here.
	ErrSubmissionFailed = errors.New("schedule submission failed")
)
