package cli

import (
	"context"
	"fmt"
	"os"

	"profilectl/internal/client/profile"
	"profilectl/internal/common"
)

// ShowProfile prints the resolved profile snapshot. Blank fields render a
// placeholder instead of an empty string.
func (a *App) ShowProfile(ctx context.Context) error {
	if !a.isLoggedIn(ctx) {
		fmt.Println(profile.UnauthenticatedNotice)
		return nil
	}

	rec := a.view.Record()

	fmt.Printf("Profile (%s)\n", rec.Initial())
	fmt.Printf("  Company:   %s\n", profile.DisplayValue(rec.CompanyName, "company name"))
	fmt.Printf("  Name:      %s\n", profile.DisplayValue(rec.UserName, "name"))
	fmt.Printf("  Alias:     %s\n", profile.DisplayValue(rec.AliasName, "alias name"))
	fmt.Printf("  Email:     %s\n", profile.DisplayValue(rec.Email, "email"))
	fmt.Printf("  Mobile:    %s\n", profile.DisplayValue(rec.Mobile, "mobile"))
	fmt.Printf("  Building:  %s\n", profile.DisplayValue(rec.BlockBuilding, "building"))
	fmt.Printf("  Floor:     %s\n", profile.DisplayValue(rec.Floor, "floor"))
	fmt.Printf("  Address:   %s\n", profile.DisplayValue(rec.Address, "address"))
	fmt.Printf("  Location:  %s\n", profile.DisplayValue(rec.Location, "location"))
	fmt.Printf("  PIN code:  %s\n", profile.DisplayValue(rec.PinCode, "PIN code"))
	return nil
}

var editPrompts = map[profile.Field]string{
	profile.FieldAlias:  "Enter new alias name",
	profile.FieldEmail:  "Enter new email",
	profile.FieldMobile: "Enter new mobile number",
}

// EditField runs one edit cycle for alias, email or mobile: open the form,
// read the new value, submit, and report the outcome.
func (a *App) EditField(ctx context.Context, field profile.Field) error {
	prompt, ok := editPrompts[field]
	if !ok {
		fmt.Println("Unknown field:", string(field))
		return nil
	}

	if !a.view.BeginEdit(ctx, field) {
		a.reportMessages(field)
		return nil
	}

	value, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		a.view.CancelEdit(field)
		return err
	}

	switch field {
	case profile.FieldAlias:
		a.view.SetAliasInput(value)
	case profile.FieldEmail:
		a.view.SetEmailInput(value)
	case profile.FieldMobile:
		a.view.SetMobileInput(value)
	}

	a.view.Submit(ctx, field)
	a.reportMessages(field)
	return nil
}

// ChangePassword prompts for the current password and the new pair, then
// submits the change. All password bytes are wiped before returning.
func (a *App) ChangePassword(ctx context.Context) error {
	if !a.view.BeginEdit(ctx, profile.FieldPassword) {
		a.reportMessages(profile.FieldPassword)
		return nil
	}

	current, err := getPassword("Current password", os.Stdout)
	if err != nil {
		a.view.CancelEdit(profile.FieldPassword)
		return err
	}
	defer common.WipeByteArray(current)

	newPassword, err := getPassword("New password", os.Stdout)
	if err != nil {
		a.view.CancelEdit(profile.FieldPassword)
		return err
	}
	defer common.WipeByteArray(newPassword)

	confirm, err := getPassword("Confirm new password", os.Stdout)
	if err != nil {
		a.view.CancelEdit(profile.FieldPassword)
		return err
	}
	defer common.WipeByteArray(confirm)

	a.view.SetPasswordInput(string(current), string(newPassword), string(confirm))
	a.view.Submit(ctx, profile.FieldPassword)
	a.reportMessages(profile.FieldPassword)
	return nil
}

// reportMessages prints whichever outcome the last action produced, most
// specific first.
func (a *App) reportMessages(field profile.Field) {
	if msg := a.view.FieldError(field); msg != "" {
		fmt.Println(msg)
		return
	}
	if msg := a.view.GeneralError(); msg != "" {
		fmt.Println(msg)
		return
	}
	if msg := a.view.Warning(); msg != "" {
		fmt.Println(msg)
	}
	if msg := a.view.Success(); msg != "" {
		fmt.Println(msg)
	}
}
