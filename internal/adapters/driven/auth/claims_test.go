package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testJWT builds a signed token for claim parsing tests. The signature is
// never verified, so any key works.
func testJWT(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return signed
}

func TestAccountIDFromToken(t *testing.T) {
	tests := []struct {
		name   string
		claims jwt.MapClaims
		want   string
	}{
		{
			name:   "prefers email",
			claims: jwt.MapClaims{"email": "user@example.com", "cognito:username": "abc123", "sub": "sub-id"},
			want:   "user@example.com",
		},
		{
			name:   "falls back to cognito username",
			claims: jwt.MapClaims{"cognito:username": "abc123", "sub": "sub-id"},
			want:   "abc123",
		},
		{
			name:   "falls back to sub",
			claims: jwt.MapClaims{"sub": "sub-id"},
			want:   "sub-id",
		},
		{
			name:   "no identifying claims",
			claims: jwt.MapClaims{"aud": "client-id"},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, accountIDFromToken(testJWT(t, tt.claims)))
		})
	}
}

func TestAccountIDFromGarbage(t *testing.T) {
	assert.Empty(t, accountIDFromToken("not-a-jwt"))
	assert.Empty(t, accountIDFromToken(""))
}

func TestExpiryFromToken(t *testing.T) {
	exp := time.Now().Add(45 * time.Minute).Truncate(time.Second)
	token := testJWT(t, jwt.MapClaims{"exp": exp.Unix()})
	assert.Equal(t, exp.Unix(), expiryFromToken(token).Unix())
}

func TestExpiryFromTokenWithoutClaim(t *testing.T) {
	token := testJWT(t, jwt.MapClaims{"email": "user@example.com"})
	assert.True(t, expiryFromToken(token).IsZero())
	assert.True(t, expiryFromToken("not-a-jwt").IsZero())
}
