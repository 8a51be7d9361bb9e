package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// View renders one screen of the application. Path parameters (e.g. the
// subject id in "subjects/:id") arrive in params.
type View func(ctx context.Context, params map[string]string) error

// Route binds a path pattern to a view. Patterns are slash-separated
// segments; a segment starting with ':' captures the matching path segment
// under its name. Protected routes require a live session.
type Route struct {
	Pattern   string
	Protected bool
	View      View
}

// loginChecker is the predicate the guard consults, fresh on every
// navigation. The auth service satisfies this.
type loginChecker interface {
	IsLoggedIn(ctx context.Context) bool
}

// Navigator dispatches navigation requests against a route table, applying
// the guard before any protected view runs. It holds no login state of its
// own.
type Navigator struct {
	routes    []Route
	auth      loginChecker
	out       io.Writer
	loginPath string
}

// NewNavigator builds a dispatcher over routes. Anonymous navigation to a
// protected route is denied and redirected to loginPath.
func NewNavigator(routes []Route, auth loginChecker, loginPath string, out io.Writer) *Navigator {
	return &Navigator{routes: routes, auth: auth, loginPath: loginPath, out: out}
}

// Go resolves path, runs the guard, and renders the view. Unknown paths
// report an error to the user and return nil; the REPL stays alive.
func (n *Navigator) Go(ctx context.Context, path string) error {
	route, params, ok := n.match(path)
	if !ok {
		fmt.Fprintf(n.out, "Unknown destination: %s\n", path)
		return nil
	}

	if route.Protected && !n.auth.IsLoggedIn(ctx) {
		fmt.Fprintln(n.out, "Please log in first.")
		return n.Go(ctx, n.loginPath)
	}

	return route.View(ctx, params)
}

func (n *Navigator) match(path string) (Route, map[string]string, bool) {
	segments := strings.Split(strings.Trim(path, "/"), "/")

	for _, route := range n.routes {
		patSegments := strings.Split(route.Pattern, "/")
		if len(patSegments) != len(segments) {
			continue
		}

		params := make(map[string]string)
		matched := true
		for i, pat := range patSegments {
			if strings.HasPrefix(pat, ":") {
				params[pat[1:]] = segments[i]
				continue
			}
			if pat != segments[i] {
				matched = false
				break
			}
		}
		if matched {
			return route, params, true
		}
	}
	return Route{}, nil, false
}
