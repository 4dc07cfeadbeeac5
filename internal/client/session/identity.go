package session

import (
	"github.com/golang-jwt/jwt/v5"
)

// IdentityFromToken decodes the claims segment of a bearer token into a
// loosely-typed identity map. Registered JWT claims that carry no profile
// meaning are dropped; everything else passes through under its original
// key so downstream fallback chains can resolve it.
//
// Returns an empty map when the token cannot be decoded.
func IdentityFromToken(token string) map[string]any {
	identity := map[string]any{}
	if token == "" {
		return identity
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return identity
	}

	for key, value := range claims {
		switch key {
		case "exp", "iat", "nbf", "iss", "aud", "jti":
			continue
		}
		identity[key] = value
	}
	if _, ok := identity["userId"]; !ok {
		if sub, ok := claims["sub"]; ok {
			identity["userId"] = sub
		}
	}
	delete(identity, "sub")
	return identity
}
