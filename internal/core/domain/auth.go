package domain

// LoginRequest carries the one-time setup credentials for initial
// authentication. Which fields matter depends on the configured
// AuthMethod: cognito wants Username/Password, refresh-only wants
// RefreshToken, static wants StaticToken.
type LoginRequest struct {
	// Username is the Hive account email.
	Username string `json:"username,omitempty"`
	// Password is the account password. Never persisted.
	Password string `json:"password,omitempty"`
	// RefreshToken seeds a refresh-only setup from a token obtained
	// out of band.
	RefreshToken string `json:"refresh_token,omitempty"`
	// StaticToken seeds a static setup with an externally managed id token.
	StaticToken string `json:"static_token,omitempty"`
}

// MFAChallenge is an SMS second-factor challenge issued during login.
// The login pauses until the code is supplied via CompleteMFA.
type MFAChallenge struct {
	// Session is the provider's opaque challenge handle.
	Session string `json:"session"`
	// Username identifies the account mid-challenge.
	Username string `json:"username"`
	// Destination is the masked SMS delivery target, e.g. "+4479******21".
	Destination string `json:"destination,omitempty"`
}

// LoginResult is the outcome of a login step. Exactly one of Tokens and
// Challenge is set: Tokens when authentication completed, Challenge when
// the provider wants an MFA code first.
type LoginResult struct {
	Tokens    *TokenSet     `json:"tokens,omitempty"`
	Challenge *MFAChallenge `json:"challenge,omitempty"`
}
