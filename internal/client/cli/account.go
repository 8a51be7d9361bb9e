package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/studytrack/internal/client/models"
	"github.com/dmitrijs2005/studytrack/internal/client/validation"
	"github.com/dmitrijs2005/studytrack/internal/common"
)

// accountView shows the profile as the backend sees it.
func (a *App) accountView(ctx context.Context, _ map[string]string) error {
	user, err := a.auth.CurrentUser(ctx)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			return a.nav.Go(ctx, "login")
		}
		fmt.Fprintln(a.out, "Failed to fetch user data. Please try again later.")
		return nil
	}

	fmt.Fprintf(a.out, "Username: %s\n", user.Username)
	fmt.Fprintf(a.out, "Email:    %s\n", user.Email)
	fmt.Fprintf(a.out, "Theme:    %s\n", a.themes.Theme(ctx))
	return nil
}

// editAccountView updates the profile. Edits go to a working copy and are
// validated before the network call; after a successful update the session
// is closed, matching the backend's credential rotation, and the user must
// log in again.
func (a *App) editAccountView(ctx context.Context, _ map[string]string) error {
	user, err := a.auth.CurrentUser(ctx)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			return a.nav.Go(ctx, "login")
		}
		fmt.Fprintln(a.out, "Failed to fetch user data. Please try again later.")
		return nil
	}

	username, _, err := InlineEdit(a.reader, "Username", user.Username, a.out)
	if err != nil {
		return err
	}
	email, _, err := InlineEdit(a.reader, "Email", user.Email, a.out)
	if err != nil {
		return err
	}
	password, err := getSimpleText(a.reader, "New password (empty line keeps current)", a.out)
	if err != nil {
		return err
	}

	// Sequential validation; the first failing check is shown and nothing
	// is sent. The password is only validated when the user wants to
	// change it.
	if err := validation.Username(username); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}
	if password != "" {
		if err := validation.Password(password); err != nil {
			fmt.Fprintln(a.out, err.Error())
			return nil
		}
	}
	if err := validation.Email(email); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}

	req := models.UpdateUserRequest{Username: username, Email: email, Password: password}
	if _, err := a.auth.UpdateUser(ctx, req); err != nil {
		fmt.Fprintln(a.out, "Failed to update account. Please try again.")
		return nil
	}

	fmt.Fprintln(a.out, "Account updated. Please log in again.")
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	return a.nav.Go(ctx, "login")
}

// deleteAccountView permanently deletes the account after an explicit
// confirmation, then returns to the login screen.
func (a *App) deleteAccountView(ctx context.Context, _ map[string]string) error {
	ok, err := Confirm(a.reader, "Are you absolutely sure? This will permanently delete your account.", a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	if err := a.auth.DeleteAccount(ctx); err != nil {
		fmt.Fprintln(a.out, "Failed to delete account. Please try again later.")
		return nil
	}

	fmt.Fprintln(a.out, "Account deleted.")
	return a.nav.Go(ctx, "login")
}

// themeView flips between light and dark and persists the choice.
func (a *App) themeView(ctx context.Context, _ map[string]string) error {
	next := common.ThemeDark
	if a.themes.Theme(ctx) == common.ThemeDark {
		next = common.ThemeLight
	}
	if err := a.themes.StoreTheme(ctx, next); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Theme set to %s.\n", next)
	return nil
}
