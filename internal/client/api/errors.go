package api

import (
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/studytrack/internal/common"
)

// Error describes a failed backend call. Op is the client operation name,
// Status the HTTP status (0 when the request never reached the server).
// The wrapped Err is one of the common sentinel errors, so callers can
// branch with errors.Is.
type Error struct {
	Op     string
	Status int
	Err    error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: %v (status %d)", e.Op, e.Err, e.Status)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// statusError maps an unexpected HTTP status to a sentinel error.
func statusError(op string, status int) error {
	var err error
	switch status {
	case http.StatusUnauthorized:
		err = common.ErrorUnauthorized
	case http.StatusNotFound:
		err = common.ErrorNotFound
	case http.StatusConflict:
		err = common.ErrorAlreadyExists
	default:
		err = common.ErrorInternal
	}
	return &Error{Op: op, Status: status, Err: err}
}

// transportError wraps a network-level failure: the server never answered.
func transportError(op string, err error) error {
	return &Error{Op: op, Err: fmt.Errorf("%w: %w", common.ErrorUnavailable, err)}
}
