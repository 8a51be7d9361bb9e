package api

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticTokens struct {
	token string
	err   error
}

func (s staticTokens) Token(context.Context) (string, error) { return s.token, s.err }

// captureTransport records the request it receives and returns an empty 200.
type captureTransport struct {
	seen *http.Request
}

func (c *captureTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	c.seen = req
	return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody, Request: req}, nil
}

func newRequest(t *testing.T, rawURL string) *http.Request {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	require.NoError(t, err)
	return req
}

func backendOrigin(t *testing.T) *url.URL {
	t.Helper()
	u, err := url.Parse("http://localhost:8080")
	require.NoError(t, err)
	return u
}

func TestAuthorizer_AttachesBearerForBackendOrigin(t *testing.T) {
	next := &captureTransport{}
	a := NewAuthorizer(backendOrigin(t), staticTokens{token: "tok-1"}, next)

	req := newRequest(t, "http://localhost:8080/subjects")
	_, err := a.RoundTrip(req)
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-1", next.seen.Header.Get("Authorization"))
	assert.NotEmpty(t, next.seen.Header.Get("X-Request-Id"))
}

func TestAuthorizer_NoTokenNoHeader(t *testing.T) {
	next := &captureTransport{}
	a := NewAuthorizer(backendOrigin(t), staticTokens{}, next)

	req := newRequest(t, "http://localhost:8080/auth/login")
	_, err := a.RoundTrip(req)
	require.NoError(t, err)

	assert.Empty(t, next.seen.Header.Get("Authorization"))
}

func TestAuthorizer_ForeignOriginPassesThroughUntouched(t *testing.T) {
	next := &captureTransport{}
	a := NewAuthorizer(backendOrigin(t), staticTokens{token: "tok-1"}, next)

	for _, raw := range []string{
		"http://example.org/subjects",
		"https://localhost:8080/subjects", // scheme differs
		"http://localhost:9090/subjects",  // port differs
	} {
		req := newRequest(t, raw)
		_, err := a.RoundTrip(req)
		require.NoError(t, err)
		assert.Empty(t, next.seen.Header.Get("Authorization"), "url %s", raw)
		assert.Same(t, req, next.seen, "foreign requests must be forwarded as-is")
	}
}

func TestAuthorizer_DoesNotMutateOriginalRequest(t *testing.T) {
	next := &captureTransport{}
	a := NewAuthorizer(backendOrigin(t), staticTokens{token: "tok-1"}, next)

	req := newRequest(t, "http://localhost:8080/subjects")
	_, err := a.RoundTrip(req)
	require.NoError(t, err)

	assert.Empty(t, req.Header.Get("Authorization"), "caller's request must stay clean")
	assert.NotSame(t, req, next.seen)
}

func TestAuthorizer_TokenSourceErrorSkipsHeader(t *testing.T) {
	next := &captureTransport{}
	a := NewAuthorizer(backendOrigin(t), staticTokens{err: assert.AnError}, next)

	req := newRequest(t, "http://localhost:8080/subjects")
	_, err := a.RoundTrip(req)
	require.NoError(t, err)

	assert.Empty(t, next.seen.Header.Get("Authorization"))
}
