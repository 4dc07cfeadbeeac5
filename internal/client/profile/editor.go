package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"profilectl/internal/client/api"
)

// AuthFailedNotice replaces the server message when a call comes back with
// an authorization failure; the expiry path runs alongside it.
const AuthFailedNotice = "Authentication failed. Please login again."

// updateFn is one candidate profile-update endpoint.
type updateFn func(ctx context.Context, patch *api.ProfilePatch) (*api.ProfileData, error)

// updateTargets returns the ordered endpoints to try for a field. Alias
// updates go auth-scoped first; email and mobile go user-scoped first. The
// asymmetry matches the deployed behaviour and is kept deliberately.
func (v *View) updateTargets(field Field) []updateFn {
	if field == FieldAlias {
		return []updateFn{v.auth.UpdateProfile, v.user.UpdateProfile}
	}
	return []updateFn{v.user.UpdateProfile, v.auth.UpdateProfile}
}

// attemptInOrder tries each candidate endpoint in order and stops at the
// first success. When every candidate rejects the call, the last error is
// surfaced.
func attemptInOrder(ctx context.Context, targets []updateFn, patch *api.ProfilePatch) (*api.ProfileData, error) {
	var lastErr error
	for _, target := range targets {
		data, err := target(ctx, patch)
		if err == nil {
			return data, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// Submit validates the field's working copy and, when it passes, sends the
// update to the external API. Validation failures set a field-scoped error
// without any network call. On success the confirmed value is committed,
// the form closes, and a self-clearing success message is shown. The
// loading flag is cleared on every path.
func (v *View) Submit(ctx context.Context, field Field) {
	v.clearMessages()

	if !v.checkAuth(ctx) {
		return
	}
	if v.isLoading() || v.isClosed() {
		return
	}

	switch field {
	case FieldPassword:
		v.submitPassword(ctx)
	case FieldAlias:
		v.submitAlias(ctx)
	case FieldEmail:
		v.submitEmail(ctx)
	case FieldMobile:
		v.submitMobile(ctx)
	}
}

func (v *View) submitPassword(ctx context.Context) {
	buf := v.Buffer()

	if msg := validatePasswordChange(buf.CurrentPassword, buf.NewPassword, buf.ConfirmPassword); msg != "" {
		v.setFieldError(FieldPassword, msg)
		return
	}

	v.setLoading(true)
	defer v.setLoading(false)

	req := &api.PasswordChange{
		OldPassword:     buf.CurrentPassword,
		NewPassword:     buf.NewPassword,
		ConfirmPassword: buf.ConfirmPassword,
		AccessToken:     v.guard.AccessToken(ctx),
	}

	if err := v.auth.ChangePassword(ctx, req); err != nil {
		msg := v.mapAPIError(ctx, err, "change password")
		lower := strings.ToLower(msg)
		if strings.Contains(lower, "current password") || strings.Contains(lower, "incorrect password") {
			msg = "Current password is incorrect"
		}
		v.setFieldError(FieldPassword, msg)
		return
	}

	v.mu.Lock()
	v.buf.CurrentPassword = ""
	v.buf.NewPassword = ""
	v.buf.ConfirmPassword = ""
	v.editing[FieldPassword] = false
	v.mu.Unlock()

	v.setSuccess("Password updated successfully!")
	v.logger.Debug().Msg("password change successful")
}

func (v *View) submitAlias(ctx context.Context) {
	alias := strings.TrimSpace(v.Buffer().AliasName)

	if msg := validateAlias(alias); msg != "" {
		v.setFieldError(FieldAlias, msg)
		return
	}

	v.setLoading(true)
	defer v.setLoading(false)

	data, err := attemptInOrder(ctx, v.updateTargets(FieldAlias), &api.ProfilePatch{AliasName: alias})
	if err != nil {
		msg := v.mapAPIError(ctx, err, "update alias")
		lower := strings.ToLower(msg)
		switch {
		case strings.Contains(lower, "already exists") || strings.Contains(lower, "duplicate"):
			msg = "This alias name is already taken. Please choose another."
		case strings.Contains(lower, "invalid characters"):
			msg = "Alias name contains invalid characters"
		}
		v.setFieldError(FieldAlias, msg)
		return
	}

	updated := alias
	if data != nil && data.AliasName != "" {
		updated = data.AliasName
	}
	v.commit(FieldAlias, "aliasName", updated)
	v.setSuccess("Alias name updated successfully!")
}

func (v *View) submitEmail(ctx context.Context) {
	email := strings.TrimSpace(v.Buffer().Email)

	if msg := validateEmail(email); msg != "" {
		v.setFieldError(FieldEmail, msg)
		return
	}

	v.setLoading(true)
	defer v.setLoading(false)

	data, err := attemptInOrder(ctx, v.updateTargets(FieldEmail), &api.ProfilePatch{Email: email})
	if err != nil {
		msg := v.mapAPIError(ctx, err, "update email")
		lower := strings.ToLower(msg)
		switch {
		case strings.Contains(lower, "already exists") ||
			strings.Contains(lower, "duplicate") ||
			strings.Contains(lower, "already registered"):
			msg = "This email is already registered. Please use a different email."
		case strings.Contains(lower, "invalid email"):
			msg = "Please enter a valid email address"
		}
		v.setFieldError(FieldEmail, msg)
		return
	}

	updated := email
	if data != nil && data.Email != "" {
		updated = data.Email
	}
	v.commit(FieldEmail, "email", updated)
	v.setSuccess("Email updated successfully! Verification email sent.")
}

func (v *View) submitMobile(ctx context.Context) {
	mobile := strings.TrimSpace(v.Buffer().Mobile)

	if msg := validateMobile(mobile); msg != "" {
		v.setFieldError(FieldMobile, msg)
		return
	}

	v.setLoading(true)
	defer v.setLoading(false)

	data, err := attemptInOrder(ctx, v.updateTargets(FieldMobile), &api.ProfilePatch{Mobile: mobile})
	if err != nil {
		msg := v.mapAPIError(ctx, err, "update mobile")
		lower := strings.ToLower(msg)
		switch {
		case strings.Contains(lower, "already exists") ||
			strings.Contains(lower, "duplicate") ||
			strings.Contains(lower, "already registered"):
			msg = "This mobile number is already registered. Please use a different number."
		case strings.Contains(lower, "invalid mobile"):
			msg = "Please enter a valid mobile number"
		}
		v.setFieldError(FieldMobile, msg)
		return
	}

	updated := mobile
	if data != nil && data.Mobile != "" {
		updated = data.Mobile
	}
	v.commit(FieldMobile, "mobile", updated)
	v.setSuccess("Mobile number updated successfully!")
}

// commit folds a confirmed value into the record and the identity object,
// closes the edit form, and propagates the updated identity upward.
func (v *View) commit(field Field, identityKey, value string) {
	v.mu.Lock()

	switch field {
	case FieldAlias:
		v.record.AliasName = value
		v.buf.AliasName = value
	case FieldEmail:
		v.record.Email = value
		v.buf.Email = value
	case FieldMobile:
		v.record.Mobile = value
		v.buf.Mobile = value
	}
	v.editing[field] = false
	v.identity[identityKey] = value

	updated := make(map[string]any, len(v.identity))
	for k, val := range v.identity {
		updated[k] = val
	}
	cb := v.onProfileUpdate
	v.mu.Unlock()

	if cb != nil {
		cb(updated)
	}
}

// mapAPIError converts an API failure into a user-facing message. Expiry
// detection is centralized here so every field operation shares the same
// handling: an authorization failure starts the session-expiry path.
func (v *View) mapAPIError(ctx context.Context, err error, operation string) string {
	if errors.Is(err, api.ErrUnauthorized) {
		v.guard.HandleSessionExpired(ctx)
		return AuthFailedNotice
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}

	v.logger.Warn().Err(err).Str("operation", operation).Msg("profile update failed")
	return fmt.Sprintf("Failed to %s. Please try again.", operation)
}
