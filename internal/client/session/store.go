// Package session owns the client's persisted session state: the bearer
// token and the theme preference. Every component that needs the token
// (auth service, request authorizer, route guard) goes through the Store;
// nothing else touches the underlying key-value repository.
package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/studytrack/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/studytrack/internal/client/token"
	"github.com/dmitrijs2005/studytrack/internal/common"
	"github.com/dmitrijs2005/studytrack/internal/logging"
)

// Store wraps the metadata repository with a mutex and a logged-in
// notification list. The mutex matters here: unlike a browser event loop,
// multiple goroutines may touch the token concurrently.
type Store struct {
	mu      sync.RWMutex
	repo    metadata.Repository
	log     logging.Logger
	expired func(string) bool

	subsMu   sync.Mutex
	subs     map[int]func(bool)
	nextSub  int
	lastSeen bool
}

// NewStore builds a Store over repo and seeds the logged-in state from the
// currently persisted token, so early subscribers observe reality rather
// than a zero value. The expiry check defaults to token.IsExpired.
func NewStore(ctx context.Context, repo metadata.Repository, logger logging.Logger) (*Store, error) {
	s := &Store{
		repo:    repo,
		log:     logger,
		expired: token.IsExpired,
		subs:    make(map[int]func(bool)),
	}

	tok, err := s.Token(ctx)
	if err != nil {
		return nil, err
	}
	s.lastSeen = tok != "" && !s.expired(tok)
	return s, nil
}

// Token returns the persisted bearer token, or "" if none is stored.
func (s *Store) Token(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, err := s.repo.Get(ctx, common.AuthTokenKey)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// StoreToken persists tok and notifies subscribers that the session is live.
func (s *Store) StoreToken(ctx context.Context, tok string) error {
	s.mu.Lock()
	err := s.repo.Set(ctx, common.AuthTokenKey, []byte(tok))
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.publish(true)
	return nil
}

// ClearToken removes the persisted token and notifies subscribers that the
// session is gone. Clearing an already-empty store still publishes false.
func (s *Store) ClearToken(ctx context.Context) error {
	s.mu.Lock()
	err := s.repo.Delete(ctx, common.AuthTokenKey)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.publish(false)
	return nil
}

// LoggedIn re-derives the session state on every call: a token must be
// present and not past its expiry (minus the clock-skew margin). A token
// found expired is cleared immediately so the stored state and the derived
// flag never disagree.
func (s *Store) LoggedIn(ctx context.Context) bool {
	tok, err := s.Token(ctx)
	if err != nil {
		s.log.Error(ctx, "session read failed", "error", err)
		return false
	}
	if tok == "" {
		return false
	}
	if s.expired(tok) {
		s.log.Info(ctx, "stored token expired, clearing session")
		if err := s.ClearToken(ctx); err != nil {
			s.log.Error(ctx, "session clear failed", "error", err)
		}
		return false
	}
	return true
}

// Subscribe registers fn for logged-in transitions. The current value is
// delivered synchronously before Subscribe returns, then fn runs on every
// store/clear. The returned function removes the subscription; views must
// call it on teardown so a late notification cannot reach a dead view.
func (s *Store) Subscribe(fn func(loggedIn bool)) (unsubscribe func()) {
	s.subsMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	current := s.lastSeen
	s.subsMu.Unlock()

	fn(current)

	return func() {
		s.subsMu.Lock()
		delete(s.subs, id)
		s.subsMu.Unlock()
	}
}

func (s *Store) publish(v bool) {
	s.subsMu.Lock()
	s.lastSeen = v
	fns := make([]func(bool), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subsMu.Unlock()

	for _, fn := range fns {
		fn(v)
	}
}

// Reset wipes everything persisted for this client, token and theme alike,
// and notifies subscribers that the session is gone. Used when the account
// itself is deleted.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	err := s.repo.Clear(ctx)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.publish(false)
	return nil
}

// Theme returns the persisted theme preference, defaulting to light.
func (s *Store) Theme(ctx context.Context) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, err := s.repo.Get(ctx, common.ThemeKey)
	if err != nil || len(v) == 0 {
		return common.ThemeLight
	}
	return string(v)
}

// StoreTheme persists the theme preference.
func (s *Store) StoreTheme(ctx context.Context, theme string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Set(ctx, common.ThemeKey, []byte(theme))
}
