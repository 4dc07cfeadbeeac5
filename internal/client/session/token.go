package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// timeNow is a test seam for the expiry comparison.
var timeNow = time.Now

// ValidateToken checks the structure and expiry of a bearer token without
// verifying its signature: signature verification belongs to the server.
//
// A token is valid when it has the three-segment JWT shape, its claims
// segment decodes, and its exp claim (when present) is not in the past.
// Any decode failure counts as invalid.
func ValidateToken(token string) bool {
	if token == "" {
		return false
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return false
	}
	if exp == nil {
		// No expiry claim: nothing to compare against.
		return true
	}

	return exp.Unix() >= timeNow().Unix()
}
