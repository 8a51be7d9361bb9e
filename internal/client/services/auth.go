// Package services contains application services for the StudyTrack client.
// This file defines the authentication service: login, registration, logout,
// account management, and the derived logged-in state the views and the
// route guard consult.
package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/studytrack/internal/client/models"
	"github.com/dmitrijs2005/studytrack/internal/client/token"
	"github.com/dmitrijs2005/studytrack/internal/common"
	"github.com/dmitrijs2005/studytrack/internal/logging"
)

// AuthService defines authentication operations for the client.
//
// Contract:
//   - Login: authenticate and persist the issued token; a failed login never
//     leaves a token behind.
//   - Register: create an account; field validation happens in the views
//     before this call.
//   - Logout: clear local state always; notify the server best-effort, and
//     only when the stored token could still be accepted.
//   - IsLoggedIn: re-derived from the stored token on every call.
//   - OnLoginChange: subscribe to logged-in transitions; the current value
//     is delivered immediately.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, username, password string) error
	Register(ctx context.Context, username, password, email string) error
	Logout(ctx context.Context) error
	IsLoggedIn(ctx context.Context) bool
	OnLoginChange(fn func(loggedIn bool)) (unsubscribe func())
	CurrentUser(ctx context.Context) (*models.User, error)
	UpdateUser(ctx context.Context, req models.UpdateUserRequest) (*models.User, error)
	DeleteAccount(ctx context.Context) error
}

// authAPI is the slice of the REST client the auth service needs.
type authAPI interface {
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, username, password, email string) error
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
	UpdateUser(ctx context.Context, req models.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context) error
}

// sessionStore is the slice of the session store the auth service needs.
type sessionStore interface {
	Token(ctx context.Context) (string, error)
	StoreToken(ctx context.Context, tok string) error
	ClearToken(ctx context.Context) error
	Reset(ctx context.Context) error
	LoggedIn(ctx context.Context) bool
	Subscribe(fn func(loggedIn bool)) (unsubscribe func())
}

type authService struct {
	api     authAPI
	store   sessionStore
	log     logging.Logger
	expired func(string) bool
}

// NewAuthService constructs an AuthService bound to the given API client
// and session store.
func NewAuthService(api authAPI, store sessionStore, logger logging.Logger) AuthService {
	return &authService{api: api, store: store, log: logger, expired: token.IsExpired}
}

// Login exchanges credentials for a token. On success the token is stored
// and subscribers see true; on any failure local auth is cleared and
// subscribers see false. A token from a failed call is never stored.
func (a *authService) Login(ctx context.Context, username, password string) error {
	tok, err := a.api.Login(ctx, username, password)
	if err != nil {
		if clearErr := a.store.ClearToken(ctx); clearErr != nil {
			a.log.Error(ctx, "clearing session after failed login", "error", clearErr)
		}
		return err
	}
	return a.store.StoreToken(ctx, tok)
}

// Register creates an account on the server. Callers validate fields first.
func (a *authService) Register(ctx context.Context, username, password, email string) error {
	return a.api.Register(ctx, username, password, email)
}

// Logout is a local-state operation first, server notification second.
// When no token is stored, or the stored one is already expired, the server
// call is skipped: it would only be a doomed authenticated request. A failed
// server call is logged and swallowed; local state is cleared in every path.
func (a *authService) Logout(ctx context.Context) error {
	tok, err := a.store.Token(ctx)
	if err != nil {
		a.log.Error(ctx, "reading session on logout", "error", err)
	}

	if tok != "" && !a.expired(tok) {
		if err := a.api.Logout(ctx); err != nil {
			a.log.Warn(ctx, "server logout failed, clearing local session anyway", "error", err)
		}
	}

	return a.store.ClearToken(ctx)
}

// IsLoggedIn re-derives the state from the stored token each call; it is
// never a cached flag.
func (a *authService) IsLoggedIn(ctx context.Context) bool {
	return a.store.LoggedIn(ctx)
}

// OnLoginChange delegates to the session store's subscription list.
func (a *authService) OnLoginChange(fn func(bool)) func() {
	return a.store.Subscribe(fn)
}

// CurrentUser fetches the profile from the backend. A 401 means the session
// is no longer honored server-side, so local auth is cleared before the
// error is returned.
func (a *authService) CurrentUser(ctx context.Context) (*models.User, error) {
	u, err := a.api.CurrentUser(ctx)
	if err != nil {
		a.clearOnUnauthorized(ctx, err)
		return nil, err
	}
	return u, nil
}

// UpdateUser forwards the profile update to the backend.
func (a *authService) UpdateUser(ctx context.Context, req models.UpdateUserRequest) (*models.User, error) {
	u, err := a.api.UpdateUser(ctx, req)
	if err != nil {
		a.clearOnUnauthorized(ctx, err)
		return nil, err
	}
	return u, nil
}

// DeleteAccount removes the account on the server, then wipes all local
// state; a deleted account leaves nothing behind, not even the theme.
func (a *authService) DeleteAccount(ctx context.Context) error {
	if err := a.api.DeleteUser(ctx); err != nil {
		a.clearOnUnauthorized(ctx, err)
		return err
	}
	return a.store.Reset(ctx)
}

func (a *authService) clearOnUnauthorized(ctx context.Context, err error) {
	if !errors.Is(err, common.ErrorUnauthorized) {
		return
	}
	if clearErr := a.store.ClearToken(ctx); clearErr != nil {
		a.log.Error(ctx, "clearing rejected session", "error", clearErr)
	}
}
