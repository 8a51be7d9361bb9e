// Package metadata persists small key-value client state (auth token, theme
// preference) in a local sqlite database, so it survives process restarts the
// way browser local storage survives page reloads.
package metadata

import "context"

type Repository interface {
	// Get returns the value stored under key, or nil if the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
