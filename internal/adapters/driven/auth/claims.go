package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// accountIDFromToken pulls the account identifier out of an id token's
// claims without verifying the signature. Verification happens on the
// vendor's side; locally the claims are only informational.
func accountIDFromToken(idToken string) string {
	claims := parseClaims(idToken)
	if claims == nil {
		return ""
	}
	for _, key := range []string{"email", "cognito:username", "username", "sub"} {
		if v, ok := claims[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// expiryFromToken pulls the exp claim out of a token. Used as a fallback
// for stored sets that predate expiry tracking. Returns the zero time
// when the token does not parse or carries no expiry.
func expiryFromToken(idToken string) time.Time {
	claims := parseClaims(idToken)
	if claims == nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

func parseClaims(idToken string) jwt.MapClaims {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(idToken, claims); err != nil {
		return nil
	}
	return claims
}
