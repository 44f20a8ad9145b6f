package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry extracts the exp claim from an access token without
// verifying the signature. The client holds no key material and does not
// need any: expiry is only a hint for discarding stale records and for
// status output, the server remains the authority.
//
// ok is false when the token is not a JWT or carries no exp claim.
func TokenExpiry(accessToken string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
