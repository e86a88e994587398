package domain

import "time"

// Token lifecycle constants.
//
// Hive's Cognito-issued tokens last roughly 60 minutes. A fresh set is
// assumed valid for the lease duration, and is refreshed once it comes
// within the safety margin of expiry.
const (
	// TokenLease is the validity window assumed for freshly issued tokens.
	TokenLease = 55 * time.Minute

	// RefreshMargin is how close to expiry a token may get before it is
	// refreshed instead of reused.
	RefreshMargin = 5 * time.Minute
)

// TokenSet holds the id/access/refresh token triple for a Hive account.
// It is owned by the account context, persisted so it survives restarts,
// mutated only by the refresh exchange, and cleared entirely when the
// refresh token is rejected.
type TokenSet struct {
	// IDToken is the Cognito id token; it is what the Hive API expects in
	// the Authorization header.
	IDToken string `json:"id_token,omitempty"`
	// AccessToken is the Cognito access token, kept alongside the id token.
	AccessToken string `json:"access_token,omitempty"`
	// RefreshToken is the long-lived token used to obtain new id/access
	// tokens. It survives refresh exchanges unchanged.
	RefreshToken string `json:"refresh_token,omitempty"`
	// ExpiresAt is when the id token stops being usable.
	ExpiresAt time.Time `json:"expires_at,omitempty"`

	// AccountID is the account identifier (email or Cognito username)
	// recorded at login time. Informational only.
	AccountID string `json:"account_id,omitempty"`
}

// HasRefreshToken returns true if a refresh token is available.
func (t *TokenSet) HasRefreshToken() bool {
	return t != nil && t.RefreshToken != ""
}

// Usable returns true if the id token can be sent right now, leaving at
// least margin before expiry.
func (t *TokenSet) Usable(margin time.Duration) bool {
	if t == nil || t.IDToken == "" {
		return false
	}
	if t.ExpiresAt.IsZero() {
		return false
	}
	return time.Now().Add(margin).Before(t.ExpiresAt)
}

// NeedsRefresh returns true if the set should go through a refresh exchange
// before its id token is used.
func (t *TokenSet) NeedsRefresh(margin time.Duration) bool {
	return !t.Usable(margin)
}

// IsZero returns true for an empty set (no tokens at all).
func (t *TokenSet) IsZero() bool {
	if t == nil {
		return true
	}
	return t.IDToken == "" && t.AccessToken == "" && t.RefreshToken == ""
}

// TokenStatus is a point-in-time report on the stored token set, produced
// without triggering a refresh.
type TokenStatus struct {
	// Authenticated is true when any token material is stored.
	Authenticated bool `json:"authenticated"`
	// AccountID is the identifier recorded at login, if any.
	AccountID string `json:"account_id,omitempty"`
	// ExpiresAt is the stored expiry instant (zero if unauthenticated).
	ExpiresAt time.Time `json:"expires_at,omitempty"`
	// Remaining is the validity left on the id token; negative once expired.
	Remaining time.Duration `json:"remaining,omitempty"`
	// HasRefreshToken reports whether a refresh is possible at all.
	HasRefreshToken bool `json:"has_refresh_token"`
}
