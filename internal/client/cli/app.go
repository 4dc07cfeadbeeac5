package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"profilectl/internal/client/api"
	"profilectl/internal/client/config"
	"profilectl/internal/client/credstore"
	"profilectl/internal/client/profile"
	"profilectl/internal/client/session"
	"profilectl/internal/client/timers"
	"profilectl/internal/logging"

	_ "modernc.org/sqlite"
)

// App ties together the credential store, the API client, the session guard
// and the profile view behind the interactive command surface.
type App struct {
	config *config.Config
	store  credstore.Store
	auth   api.AuthAPI
	guard  *session.Guard
	view   *profile.View
	timers *timers.Set
	reader *bufio.Reader
	logger zerolog.Logger

	db *sql.DB
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	logger := logging.Init(logging.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	db, err := credstore.OpenSQLite(ctx, cfg.CredentialDBPath)
	if err != nil {
		logger.Error().Err(err).Msg("error initializing credential database")
		return nil, err
	}

	store := credstore.NewSQLiteStore(db)

	tokenSource := func(ctx context.Context) string {
		token, err := store.Get(ctx, credstore.KeyAuthToken)
		if err != nil || token == nil {
			return ""
		}
		return string(token)
	}

	apiClient := api.New(cfg.ServerBaseURL, cfg.RequestTimeout, tokenSource, logger)

	ts := timers.NewSet()

	guard := session.New(store, apiClient.Auth, session.Options{
		Navigate:  func() { fmt.Println("Please login to continue.") },
		OnWarning: func(msg string) { fmt.Println(msg) },
		Logger:    logger,
		Timers:    ts,
	})

	app := &App{
		config: cfg,
		store:  store,
		auth:   apiClient.Auth,
		guard:  guard,
		timers: ts,
		reader: bufio.NewReader(os.Stdin),
		logger: logger,
		db:     db,
	}

	app.view = profile.NewView(profile.Config{
		Guard:  guard,
		Auth:   apiClient.Auth,
		User:   apiClient.User,
		Timers: ts,
		Logger: logger,
	})

	return app, nil
}

// Run restores the session, starts the background session watcher and enters
// the REPL. It blocks until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.restoreSession(ctx)

	go a.guard.StartSessionWatcher(ctx, a.config.SessionCheckInterval)

	a.Root(ctx)
}

// Close releases the timer set and the credential database.
func (a *App) Close() {
	if a.view != nil {
		a.view.Close()
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn().Err(err).Msg("closing credential database")
		}
	}
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.guard.IsAuthenticated(ctx)
}

// restoreSession seeds the profile view from a previously stored access
// token, if one survives locally.
func (a *App) restoreSession(ctx context.Context) {
	if !a.guard.IsAuthenticated(ctx) {
		return
	}
	a.view.SetIdentity(session.IdentityFromToken(a.guard.AccessToken(ctx)))
	fmt.Println("Session restored from stored credentials.")
}
