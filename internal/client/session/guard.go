// Package session owns the client-side credential lifecycle: the
// authentication gate, session-expiry handling, token refresh, and logout.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"profilectl/internal/client/api"
	"profilectl/internal/client/credstore"
	"profilectl/internal/client/timers"
)

// State models the guard lifecycle. A guard starts Initializing and becomes
// Authenticated or Unauthenticated on the first gate check; Unauthenticated
// is terminal for this instance (a fresh login builds a new one).
type State int

const (
	StateInitializing State = iota
	StateAuthenticated
	StateUnauthenticated
)

func (s State) String() string {
	switch s {
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return "initializing"
	}
}

// ExpiredWarning is surfaced when the server stops honoring the session.
const ExpiredWarning = "Your session has expired. You will be redirected to login."

// DefaultLogoutDelay is how long the expiry warning stays on screen before
// the forced logout runs.
const DefaultLogoutDelay = 3 * time.Second

// Options configures guard callbacks and timing.
type Options struct {
	// OnLogout runs after logout cleanup finishes. When nil, Navigate is
	// used as the fallback route to the login screen.
	OnLogout func()
	// Navigate is the fallback navigation hook. It must stay reachable even
	// when cleanup fails.
	Navigate func()
	// OnWarning surfaces a user-visible session warning.
	OnWarning func(msg string)
	// Cleanup runs best-effort external teardown (caches, auxiliary state)
	// during logout. Failures are logged and ignored.
	Cleanup func(ctx context.Context) error
	// LogoutDelay overrides DefaultLogoutDelay.
	LogoutDelay time.Duration
	Logger      zerolog.Logger
	Timers      *timers.Set
}

// Guard decides, from locally stored credentials, whether the current actor
// is authenticated, and drives the expiry and logout paths.
type Guard struct {
	mu    sync.Mutex
	store credstore.Store
	auth  api.AuthAPI

	onLogout    func()
	navigate    func()
	onWarning   func(string)
	cleanup     func(ctx context.Context) error
	logoutDelay time.Duration
	logger      zerolog.Logger
	timers      *timers.Set

	state         State
	expiryPending bool
}

func New(store credstore.Store, auth api.AuthAPI, opts Options) *Guard {
	if opts.LogoutDelay <= 0 {
		opts.LogoutDelay = DefaultLogoutDelay
	}
	if opts.Timers == nil {
		opts.Timers = timers.NewSet()
	}
	return &Guard{
		store:       store,
		auth:        auth,
		onLogout:    opts.OnLogout,
		navigate:    opts.Navigate,
		onWarning:   opts.OnWarning,
		cleanup:     opts.Cleanup,
		logoutDelay: opts.LogoutDelay,
		logger:      opts.Logger,
		timers:      opts.Timers,
		state:       StateInitializing,
	}
}

func (g *Guard) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// IsAuthenticated reports whether a bearer token is present in the store.
// Presence is the only gate checked here; expiry is the server's call (see
// ValidateToken for the structural check used elsewhere).
func (g *Guard) IsAuthenticated(ctx context.Context) bool {
	token, err := g.store.Get(ctx, credstore.KeyAuthToken)
	if err != nil {
		g.logger.Error().Err(err).Msg("failed to read bearer token")
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if err != nil || len(token) == 0 {
		g.state = StateUnauthenticated
		return false
	}
	g.state = StateAuthenticated
	return true
}

// AccessToken returns the stored bearer token, or "" when absent.
func (g *Guard) AccessToken(ctx context.Context) string {
	token, err := g.store.Get(ctx, credstore.KeyAuthToken)
	if err != nil || token == nil {
		return ""
	}
	return string(token)
}

// HandleSessionExpired flips the guard to Unauthenticated, surfaces a
// warning, records the audit event, and schedules the forced logout after
// the configured delay. Repeat calls while a logout is already pending are
// no-ops.
func (g *Guard) HandleSessionExpired(ctx context.Context) {
	g.mu.Lock()
	if g.expiryPending {
		g.mu.Unlock()
		return
	}
	g.expiryPending = true
	g.state = StateUnauthenticated
	g.mu.Unlock()

	if g.onWarning != nil {
		g.onWarning(ExpiredWarning)
	}
	g.audit("SESSION_INVALID")

	g.timers.AfterFunc(g.logoutDelay, func() {
		g.ForcedLogout(context.Background())
	})
}

// ForcedLogout clears stored credentials, runs best-effort cleanup, and
// hands control back to the embedding application. No failure on this path
// may prevent the final callback: the login route must stay reachable.
func (g *Guard) ForcedLogout(ctx context.Context) {
	if err := g.auth.Logout(ctx); err != nil {
		g.logger.Debug().Err(err).Msg("server logout failed during forced logout")
	}

	g.clearCredentials(ctx)
	g.runCleanup(ctx)

	// A later login may expire again; re-arm the expiry path.
	g.mu.Lock()
	g.expiryPending = false
	g.mu.Unlock()

	if g.onLogout != nil {
		g.onLogout()
		return
	}
	if g.navigate != nil {
		g.navigate()
	}
}

// Logout is the user-initiated variant: it additionally notifies the server
// (best-effort) and records the audit event before handing control back.
func (g *Guard) Logout(ctx context.Context) {
	if err := g.auth.Logout(ctx); err != nil {
		g.logger.Warn().Err(err).Msg("logout API call failed")
	}

	g.clearCredentials(ctx)
	g.runCleanup(ctx)
	g.audit("USER_INITIATED")

	g.mu.Lock()
	g.state = StateUnauthenticated
	g.mu.Unlock()

	if g.onLogout != nil {
		g.onLogout()
	}
}

// RefreshAccessToken exchanges the stored refresh token for a new bearer
// token and persists the pair. Returns false on any failure; it never
// propagates an error to the caller.
func (g *Guard) RefreshAccessToken(ctx context.Context) bool {
	refresh, err := g.store.Get(ctx, credstore.KeyRefreshToken)
	if err != nil || len(refresh) == 0 {
		return false
	}

	pair, err := g.auth.RefreshToken(ctx, string(refresh))
	if err != nil {
		g.logger.Warn().Err(err).Msg("token refresh failed")
		return false
	}
	if pair == nil || pair.AccessToken == "" {
		return false
	}

	if err := g.store.SetPair(ctx, []byte(pair.AccessToken), []byte(pair.RefreshToken)); err != nil {
		g.logger.Error().Err(err).Msg("failed to persist refreshed token pair")
		return false
	}

	g.mu.Lock()
	g.state = StateAuthenticated
	g.mu.Unlock()
	return true
}

// StartSessionWatcher probes the server periodically while the session is
// authenticated. An authorization failure triggers the expiry path and
// stops the watcher; transport errors never log the user out.
func (g *Guard) StartSessionWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if g.State() != StateAuthenticated {
				continue
			}

			probeCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := g.auth.ValidateSession(probeCtx)
			cancel()

			if errors.Is(err, api.ErrUnauthorized) {
				g.HandleSessionExpired(ctx)
				return
			}
			if err != nil {
				g.logger.Debug().Err(err).Msg("session probe failed; keeping session")
			}

		case <-ctx.Done():
			return
		}
	}
}

func (g *Guard) clearCredentials(ctx context.Context) {
	for _, key := range []string{credstore.KeyAuthToken, credstore.KeyRefreshToken} {
		if err := g.store.Delete(ctx, key); err != nil {
			g.logger.Error().Err(err).Str("key", key).Msg("failed to clear credential")
		}
	}
}

func (g *Guard) runCleanup(ctx context.Context) {
	if g.cleanup == nil {
		return
	}
	if err := g.cleanup(ctx); err != nil {
		g.logger.Warn().Err(err).Msg("logout cleanup failed")
	}
}

func (g *Guard) audit(reason string) {
	g.logger.Info().
		Str("event_id", uuid.NewString()).
		Str("event", "LOGOUT").
		Str("reason", reason).
		Msg("session audit")
}
