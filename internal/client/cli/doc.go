// Package cli provides the interactive profilectl command-line client.
//
// It wires configuration, the local credential store, the backend API client,
// the session guard and an interactive REPL for viewing and editing the
// account profile. Typical flow: restore the session from stored credentials
// (or prompt for a login), start a background session watcher, and execute
// user commands.
//
// Key features:
//   - Login / Logout with locally persisted tokens
//   - Show the resolved profile snapshot
//   - Edit alias name, email and mobile number with per-field validation
//   - Change the account password
//   - Manual token refresh and session status
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, Root, and the session package for details.
package cli
