// Package credstore persists the client's credentials in a process-wide
// key-value store that survives restarts and is cleared on logout.
//
// Absence of the access token under KeyAuthToken means "not authenticated";
// that is the only gate the session guard enforces.
package credstore

import "context"

// Keys under which credentials are stored.
const (
	KeyAuthToken    = "authToken"
	KeyRefreshToken = "refreshToken"
)

// Store is a persistent key-value store for credentials.
//
// Contract:
//   - Get returns (nil, nil) when the key is absent.
//   - Set overwrites any previous value (last write wins).
//   - SetPair stores an access/refresh token pair atomically; an empty
//     refresh token leaves any previously stored one in place.
//   - Clear removes every stored key.
//
// All methods must honor context cancellation/timeouts.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetPair(ctx context.Context, access, refresh []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
