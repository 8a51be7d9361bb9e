package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/studytrack/internal/client/models"
)

// AuthResponse is the body of a successful login.
type AuthResponse struct {
	Token string `json:"token"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for a bearer token. It does not touch the
// session store; the auth service owns that side effect.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var out AuthResponse
	err := c.doJSON(ctx, "Login", http.MethodPost, "/auth/login", loginRequest{Username: username, Password: password}, &out)
	if err != nil {
		return "", err
	}
	return out.Token, nil
}

// Register creates a new account. A 409 maps to ErrorAlreadyExists.
func (c *Client) Register(ctx context.Context, username, password, email string) error {
	return c.doJSON(ctx, "Register", http.MethodPost, "/auth/register", registerRequest{Username: username, Email: email, Password: password}, nil)
}

// Logout notifies the backend that the session ends. The bearer header is
// attached by the Authorizer like on every backend call.
func (c *Client) Logout(ctx context.Context) error {
	return c.doJSON(ctx, "Logout", http.MethodPost, "/auth/logout", struct{}{}, nil)
}

// CurrentUser fetches the authenticated profile from GET /user/me.
func (c *Client) CurrentUser(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := c.doJSON(ctx, "CurrentUser", http.MethodGet, "/user/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUser updates the profile; empty optional fields are omitted from
// the payload.
func (c *Client) UpdateUser(ctx context.Context, req models.UpdateUserRequest) (*models.User, error) {
	var out models.User
	if err := c.doJSON(ctx, "UpdateUser", http.MethodPut, "/user", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteUser permanently removes the account.
func (c *Client) DeleteUser(ctx context.Context) error {
	return c.doJSON(ctx, "DeleteUser", http.MethodDelete, "/user", nil, nil)
}
