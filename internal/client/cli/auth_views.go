package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/studytrack/internal/client/validation"
	"github.com/dmitrijs2005/studytrack/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// loginView prompts for credentials and authenticates. Authentication
// failures and network failures get distinct messages; a success moves the
// user to the dashboard.
func (a *App) loginView(ctx context.Context, _ map[string]string) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.auth.Login(ctx, username, password); err != nil {
		switch {
		case errors.Is(err, common.ErrorUnauthorized):
			fmt.Fprintln(a.out, "Invalid username or password")
		case errors.Is(err, common.ErrorUnavailable):
			fmt.Fprintln(a.out, "Server unavailable. Please try again.")
		default:
			fmt.Fprintln(a.out, "Login failed. Please try again.")
		}
		return nil
	}

	a.userName = username
	fmt.Fprintln(a.out, "Logged in.")
	return a.nav.Go(ctx, "dashboard")
}

// registerView collects the registration form and validates it before any
// network call: username, then password, then email; the first failing
// check is shown and nothing is sent.
func (a *App) registerView(ctx context.Context, _ map[string]string) error {
	username, err := getSimpleText(a.reader, "Choose a username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	if err := validation.Registration(username, password, email); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}

	if err := a.auth.Register(ctx, username, password, email); err != nil {
		switch {
		case errors.Is(err, common.ErrorAlreadyExists):
			fmt.Fprintln(a.out, "Username or email already exists. Please choose another one.")
		default:
			fmt.Fprintln(a.out, "Registration failed. Try again.")
		}
		return nil
	}

	fmt.Fprintln(a.out, "Registration successful! Please log in.")
	return a.nav.Go(ctx, "login")
}
