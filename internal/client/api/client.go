// Package api implements the REST clients for the StudyTrack backend: one
// thin CRUD wrapper per resource (auth/user, subjects, files, tasks) over a
// shared HTTP core, plus the request authorizer that injects the bearer
// token into outgoing requests.
//
// Clients never swallow errors and never retry; every failure is mapped to
// a sentinel error (see errors.go) and returned to the caller, which decides
// what the user sees. The single exception is logout's best-effort server
// notification, handled one level up in the auth service.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/dmitrijs2005/studytrack/internal/logging"
)

const defaultTimeout = 15 * time.Second

// Client is the shared HTTP core for all resource clients.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	log        logging.Logger
}

// Options allows overriding the client's dependencies, mainly for tests.
type Options struct {
	HTTPClient *http.Client
	Logger     logging.Logger
}

// New builds a Client for the backend at baseURL. The provided TokenSource
// feeds the Authorizer installed on the HTTP client's transport chain.
func New(baseURL string, tokens TokenSource, opts Options) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("baseURL is empty")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse baseURL: %w", err)
	}

	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: defaultTimeout}
	}
	hc.Transport = NewAuthorizer(parsed, tokens, hc.Transport)

	return &Client{baseURL: parsed, httpClient: hc, log: opts.Logger}, nil
}

// do issues a request with an optional JSON body and returns the raw
// response. Transport-level failures come back as ErrorUnavailable.
func (c *Client) do(ctx context.Context, op, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%s: encode body: %w", op, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.JoinPath(path).String(), reader)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logError(ctx, op, err)
		return nil, transportError(op, err)
	}
	return resp, nil
}

// doJSON issues a request and decodes a JSON response into out (skipped when
// out is nil). Non-2xx statuses are mapped to sentinel errors.
func (c *Client) doJSON(ctx context.Context, op, method, path string, body, out any) error {
	resp, err := c.do(ctx, op, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logStatus(ctx, op, resp.StatusCode)
		return statusError(op, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

func (c *Client) logError(ctx context.Context, op string, err error) {
	if c.log != nil {
		c.log.Error(ctx, "request failed", "op", op, "error", err)
	}
}

func (c *Client) logStatus(ctx context.Context, op string, status int) {
	if c.log != nil {
		c.log.Warn(ctx, "unexpected status", "op", op, "status", status)
	}
}
