// Package api is the client for the remote auth/profile service.
//
// The service exposes two scopes that can both carry profile updates: an
// auth-scoped endpoint and a user-scoped endpoint. Callers that need the
// try-one-then-the-other behaviour depend on both AuthAPI and UserAPI.
package api

import "context"

// TokenPair is the credential pair issued at login or refresh. RefreshToken
// may be empty when the server does not rotate it.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// PasswordChange is the change-password request payload. AccessToken is
// carried in the body in addition to the bearer header; the upstream service
// requires it there.
type PasswordChange struct {
	OldPassword     string `json:"old_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
	AccessToken     string `json:"access_token"`
}

// ProfilePatch is a partial profile update. Zero-valued fields are omitted
// from the request.
type ProfilePatch struct {
	AliasName string `json:"aliasName,omitempty"`
	Email     string `json:"email,omitempty"`
	Mobile    string `json:"mobile,omitempty"`
}

// ProfileData is the server-confirmed state returned by an update. A field
// may come back empty when the server chose not to echo it; callers fall
// back to the value they submitted.
type ProfileData struct {
	AliasName string `json:"aliasName"`
	Email     string `json:"email"`
	Mobile    string `json:"mobile"`
}

// AuthAPI is the auth-scoped collaborator surface.
//
// Logout is best-effort: callers ignore its error. ValidateSession returns
// nil while the server still honors the current bearer token.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (*TokenPair, error)
	ChangePassword(ctx context.Context, req *PasswordChange) error
	UpdateProfile(ctx context.Context, patch *ProfilePatch) (*ProfileData, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
	Logout(ctx context.Context) error
	ValidateSession(ctx context.Context) error
}

// UserAPI is the user-scoped collaborator surface. Its UpdateProfile is
// interchangeable with the auth-scoped one.
type UserAPI interface {
	UpdateProfile(ctx context.Context, patch *ProfilePatch) (*ProfileData, error)
}
