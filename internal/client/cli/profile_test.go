package cli

import (
	"context"
	"testing"

	"profilectl/internal/client/api"
	"profilectl/internal/client/credstore"
	"profilectl/internal/client/profile"
)

func loginForTest(t *testing.T, a *App) {
	t.Helper()
	ctx := context.Background()
	if err := a.store.Set(ctx, credstore.KeyAuthToken, []byte(testToken(`{"aliasName":"old"}`))); err != nil {
		t.Fatalf("Set err: %v", err)
	}
	a.view.SetIdentity(map[string]any{"aliasName": "old"})
}

func TestEditField_CommitsServerValue(t *testing.T) {
	user := &fakeUserCLI{data: &api.ProfileData{AliasName: "server-alias"}}
	a := newTestApp(t, &fakeAuthCLI{}, user)
	loginForTest(t, a)

	restore := stubInputs(t, "new-alias", nil)
	defer restore()

	if err := a.EditField(context.Background(), profile.FieldAlias); err != nil {
		t.Fatalf("EditField err: %v", err)
	}

	if got := a.view.Record().AliasName; got != "server-alias" {
		t.Fatalf("record not committed, alias=%q", got)
	}
	if a.view.IsEditing(profile.FieldAlias) {
		t.Fatalf("edit form still open after successful submit")
	}
}

func TestEditField_ValidationErrorKeepsFormOpen(t *testing.T) {
	a := newTestApp(t, &fakeAuthCLI{}, &fakeUserCLI{})
	loginForTest(t, a)

	restore := stubInputs(t, "x", nil)
	defer restore()

	if err := a.EditField(context.Background(), profile.FieldAlias); err != nil {
		t.Fatalf("EditField err: %v", err)
	}

	if msg := a.view.FieldError(profile.FieldAlias); msg == "" {
		t.Fatalf("want a validation error for a one-character alias")
	}
	if !a.view.IsEditing(profile.FieldAlias) {
		t.Fatalf("edit form must stay open on validation failure")
	}
}

func TestEditField_RefusedWhenLoggedOut(t *testing.T) {
	a := newTestApp(t, &fakeAuthCLI{}, &fakeUserCLI{})

	restore := stubInputs(t, "whatever", nil)
	defer restore()

	if err := a.EditField(context.Background(), profile.FieldAlias); err != nil {
		t.Fatalf("EditField err: %v", err)
	}
	if a.view.IsEditing(profile.FieldAlias) {
		t.Fatalf("edit must be refused without a stored token")
	}
	if msg := a.view.GeneralError(); msg != profile.UnauthenticatedNotice {
		t.Fatalf("unexpected general error: %q", msg)
	}
}

func TestEditField_UnknownFieldIsReported(t *testing.T) {
	a := newTestApp(t, &fakeAuthCLI{}, &fakeUserCLI{})
	loginForTest(t, a)

	if err := a.EditField(context.Background(), profile.Field("nickname")); err != nil {
		t.Fatalf("EditField err: %v", err)
	}
}

func TestEditFieldMapping(t *testing.T) {
	cases := map[string]profile.Field{
		"alias":  profile.FieldAlias,
		"Email":  profile.FieldEmail,
		"phone":  profile.FieldMobile,
		"mobile": profile.FieldMobile,
	}
	for arg, want := range cases {
		if got := editField(arg); got != want {
			t.Fatalf("editField(%q) = %q, want %q", arg, got, want)
		}
	}
}
