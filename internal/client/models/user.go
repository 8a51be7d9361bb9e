// Package models defines the data transfer objects exchanged with the
// StudyTrack backend. The server owns all of these; the client only holds
// short-lived cached copies per view.
package models

// User is the account profile as returned by GET /user/me.
type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UpdateUserRequest is the payload for PUT /user. Email and Password are
// optional; an empty Password means "keep the current one".
type UpdateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
}
