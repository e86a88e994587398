package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenSet_Usable(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name  string
		token *TokenSet
		want  bool
	}{
		{
			name:  "well before expiry",
			token: &TokenSet{IDToken: "id", ExpiresAt: now.Add(30 * time.Minute)},
			want:  true,
		},
		{
			name:  "inside refresh margin",
			token: &TokenSet{IDToken: "id", ExpiresAt: now.Add(4 * time.Minute)},
			want:  false,
		},
		{
			name:  "already expired",
			token: &TokenSet{IDToken: "id", ExpiresAt: now.Add(-time.Minute)},
			want:  false,
		},
		{
			name:  "no id token",
			token: &TokenSet{RefreshToken: "refresh", ExpiresAt: now.Add(time.Hour)},
			want:  false,
		},
		{
			name:  "zero expiry",
			token: &TokenSet{IDToken: "id"},
			want:  false,
		},
		{
			name:  "nil set",
			token: nil,
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.token.Usable(RefreshMargin))
			assert.Equal(t, !tt.want, tt.token.NeedsRefresh(RefreshMargin))
		})
	}
}

func TestTokenSet_HasRefreshToken(t *testing.T) {
	assert.True(t, (&TokenSet{RefreshToken: "r"}).HasRefreshToken())
	assert.False(t, (&TokenSet{}).HasRefreshToken())
	assert.False(t, (*TokenSet)(nil).HasRefreshToken())
}

func TestTokenSet_IsZero(t *testing.T) {
	assert.True(t, (*TokenSet)(nil).IsZero())
	assert.True(t, (&TokenSet{ExpiresAt: time.Now()}).IsZero())
	assert.False(t, (&TokenSet{IDToken: "id"}).IsZero())
	assert.False(t, (&TokenSet{RefreshToken: "r"}).IsZero())
}

func TestTokenLifecycleConstants(t *testing.T) {
	assert.Equal(t, 55*time.Minute, TokenLease)
	assert.Equal(t, 5*time.Minute, RefreshMargin)
}
