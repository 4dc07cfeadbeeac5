package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestValidateToken_MalformedTokens(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"no segments", "not-a-jwt"},
		{"two segments", "aaaa.bbbb"},
		{"garbage middle segment", "aaaa.!!!!.cccc"},
		{"middle segment not json", "aaaa.bm90LWpzb24.cccc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.False(t, ValidateToken(tt.token))
		})
	}
}

func TestValidateToken_ExpiredIsInvalid(t *testing.T) {
	tok := signedToken(t, jwt.MapClaims{"exp": time.Now().Add(-time.Hour).Unix()})
	require.False(t, ValidateToken(tok))
}

func TestValidateToken_FutureExpiryIsValid(t *testing.T) {
	tok := signedToken(t, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()})
	require.True(t, ValidateToken(tok))
}

func TestValidateToken_NoExpiryIsValid(t *testing.T) {
	tok := signedToken(t, jwt.MapClaims{"sub": "user-1"})
	require.True(t, ValidateToken(tok))
}

func TestValidateToken_ExpiryBoundary(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	orig := timeNow
	timeNow = func() time.Time { return now }
	t.Cleanup(func() { timeNow = orig })

	// Strictly-less-than comparison: exp == now is still valid.
	require.True(t, ValidateToken(signedToken(t, jwt.MapClaims{"exp": now.Unix()})))
	require.False(t, ValidateToken(signedToken(t, jwt.MapClaims{"exp": now.Unix() - 1})))
	require.True(t, ValidateToken(signedToken(t, jwt.MapClaims{"exp": now.Unix() + 1})))
}

func TestValidateToken_NonNumericExpiryIsInvalid(t *testing.T) {
	tok := signedToken(t, jwt.MapClaims{"exp": "tomorrow"})
	require.False(t, ValidateToken(tok))
}
