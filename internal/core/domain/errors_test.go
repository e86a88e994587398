package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrNotImplemented", ErrNotImplemented},
		{"ErrConfig", ErrConfig},
		{"ErrInvalidSchedule", ErrInvalidSchedule},
		{"ErrUnknownProfile", ErrUnknownProfile},
		{"ErrUnknownNode", ErrUnknownNode},
		{"ErrAuthRequired", ErrAuthRequired},
		{"ErrReauthRequired", ErrReauthRequired},
		{"ErrMFARequired", ErrMFARequired},
		{"ErrTokenRefreshFailed", ErrTokenRefreshFailed},
		{"ErrSubmissionFailed", ErrSubmissionFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrors_WrappedMatching(t *testing.T) {
	wrapped := fmt.Errorf("%w: temperature 40.0°C out of range", ErrInvalidSchedule)
	assert.True(t, errors.Is(wrapped, ErrInvalidSchedule))
	assert.False(t, errors.Is(wrapped, ErrSubmissionFailed))

	doubleWrapped := fmt.Errorf("%w: %w", ErrSubmissionFailed, ErrAuthRequired)
	assert.True(t, errors.Is(doubleWrapped, ErrSubmissionFailed))
	assert.True(t, errors.Is(doubleWrapped, ErrAuthRequired))
}

func TestErrors_AuthTaxonomyDistinct(t *testing.T) {
	// Reauth-required is terminal; callers must be able to tell it apart
	// from an ordinary missing-auth failure.
	assert.False(t, errors.Is(ErrReauthRequired, ErrAuthRequired))
	assert.False(t, errors.Is(ErrAuthRequired, ErrReauthRequired))
	assert.False(t, errors.Is(ErrTokenRefreshFailed, ErrReauthRequired))
}
