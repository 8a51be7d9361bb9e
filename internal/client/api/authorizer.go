package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/studytrack/internal/common"
)

// TokenSource yields the currently stored bearer token, or "" when the user
// is anonymous. The session store satisfies this.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Authorizer is an http.RoundTripper that attaches the bearer token to every
// outgoing request whose destination origin matches the backend origin. It
// is installed on the shared http.Client, so it runs for every request the
// application dispatches rather than per call site.
type Authorizer struct {
	origin *url.URL
	tokens TokenSource
	next   http.RoundTripper
}

// NewAuthorizer wraps next (http.DefaultTransport when nil) with bearer
// injection for requests targeting origin.
func NewAuthorizer(origin *url.URL, tokens TokenSource, next http.RoundTripper) *Authorizer {
	if next == nil {
		next = http.DefaultTransport
	}
	return &Authorizer{origin: origin, tokens: tokens, next: next}
}

// RoundTrip forwards req. Requests to the backend origin get an
// X-Request-Id for log correlation and, when a token is stored,
// "Authorization: Bearer <token>". Headers go on a clone; RoundTrippers
// must not mutate the caller's request. Requests to any other origin pass
// through untouched.
func (a *Authorizer) RoundTrip(req *http.Request) (*http.Response, error) {
	if !a.sameOrigin(req.URL) {
		return a.next.RoundTrip(req)
	}

	cloned := req.Clone(req.Context())
	cloned.Header.Set("X-Request-Id", uuid.NewString())

	if tok, err := a.tokens.Token(req.Context()); err == nil && tok != "" {
		cloned.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+tok)
	}
	return a.next.RoundTrip(cloned)
}

func (a *Authorizer) sameOrigin(u *url.URL) bool {
	return u.Scheme == a.origin.Scheme && u.Host == a.origin.Host
}
