package cli

import (
	"context"
	"fmt"
	"os"

	"profilectl/internal/client/session"
	"profilectl/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts the user for credentials, authenticates against the backend
// and persists the returned token pair in the local credential store.
//
// On success the profile view is reseeded from the new access token claims.
// The password byte slice is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter email or username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	pair, err := a.auth.Login(ctx, userName, string(password))
	if err != nil {
		a.logger.Warn().Err(err).Msg("login failed")
		fmt.Println("Login failed. Please check your credentials.")
		return err
	}

	if err := a.store.SetPair(ctx, []byte(pair.AccessToken), []byte(pair.RefreshToken)); err != nil {
		return err
	}

	a.view.SetIdentity(session.IdentityFromToken(pair.AccessToken))
	fmt.Println("Login successful.")
	return nil
}

// Logout ends the session via the guard: the server is notified best-effort,
// local credentials are cleared and the audit event is recorded.
func (a *App) Logout(ctx context.Context) error {
	a.guard.Logout(ctx)
	fmt.Println("Logged out.")
	return nil
}

// Refresh exchanges the stored refresh token for a fresh bearer token.
func (a *App) Refresh(ctx context.Context) error {
	if !a.guard.RefreshAccessToken(ctx) {
		fmt.Println("Token refresh failed.")
		return nil
	}
	a.view.SetIdentity(session.IdentityFromToken(a.guard.AccessToken(ctx)))
	fmt.Println("Token refreshed.")
	return nil
}

// Status prints the session state and the structural validity of the stored
// bearer token.
func (a *App) Status(ctx context.Context) error {
	if !a.guard.IsAuthenticated(ctx) {
		fmt.Println("Status: unauthenticated")
		return nil
	}
	valid := session.ValidateToken(a.guard.AccessToken(ctx))
	fmt.Printf("Status: %s (token valid: %t)\n", a.guard.State(), valid)
	return nil
}
