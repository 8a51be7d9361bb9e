package session

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/studytrack/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/studytrack/internal/common"
	"github.com/dmitrijs2005/studytrack/internal/logging"

	_ "modernc.org/sqlite"
)

var dbSeq int

func setupStore(t *testing.T) *Store {
	t.Helper()
	dbSeq++
	dsn := fmt.Sprintf("file:sessiontest%d?mode=memory&cache=shared", dbSeq)
	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	require.NoError(t, metadata.EnsureSchema(ctx, db))

	s, err := NewStore(ctx, metadata.NewSQLiteRepository(db), logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, err)
	// All tokens are valid unless a test says otherwise.
	s.expired = func(string) bool { return false }
	return s
}

func TestToken_EmptyStore(t *testing.T) {
	s := setupStore(t)

	tok, err := s.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "", tok)
}

func TestStoreToken_PersistsAndNotifies(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	var got []bool
	unsub := s.Subscribe(func(v bool) { got = append(got, v) })
	defer unsub()

	require.NoError(t, s.StoreToken(ctx, "tok-1"))

	tok, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", tok)
	assert.Equal(t, []bool{false, true}, got, "immediate value then transition")
}

func TestClearToken_RemovesAndNotifies(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.StoreToken(ctx, "tok-1"))

	var got []bool
	unsub := s.Subscribe(func(v bool) { got = append(got, v) })
	defer unsub()

	require.NoError(t, s.ClearToken(ctx))

	tok, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", tok)
	assert.Equal(t, []bool{true, false}, got)
}

func TestLoggedIn_NoToken(t *testing.T) {
	s := setupStore(t)
	assert.False(t, s.LoggedIn(context.Background()))
}

func TestLoggedIn_ValidToken(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.StoreToken(ctx, "tok-1"))
	assert.True(t, s.LoggedIn(ctx))
}

func TestLoggedIn_ExpiredTokenIsCleared(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.StoreToken(ctx, "tok-1"))
	s.expired = func(string) bool { return true }

	var got []bool
	unsub := s.Subscribe(func(v bool) { got = append(got, v) })
	defer unsub()

	assert.False(t, s.LoggedIn(ctx))

	// The invariant: an expired token never stays in the store.
	tok, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", tok)
	assert.Contains(t, got, false)
}

func TestSubscribe_UnsubscribeStopsNotifications(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	calls := 0
	unsub := s.Subscribe(func(bool) { calls++ })
	require.Equal(t, 1, calls, "immediate delivery on subscribe")

	unsub()
	require.NoError(t, s.StoreToken(ctx, "tok-1"))
	assert.Equal(t, 1, calls, "no delivery after unsubscribe")
}

func TestReset_WipesTokenAndTheme(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.StoreToken(ctx, "tok-1"))
	require.NoError(t, s.StoreTheme(ctx, common.ThemeDark))

	var got []bool
	unsub := s.Subscribe(func(v bool) { got = append(got, v) })
	defer unsub()

	require.NoError(t, s.Reset(ctx))

	tok, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", tok)
	assert.Equal(t, common.ThemeLight, s.Theme(ctx))
	assert.Equal(t, []bool{true, false}, got)
}

func TestTheme_DefaultsToLight(t *testing.T) {
	s := setupStore(t)
	assert.Equal(t, common.ThemeLight, s.Theme(context.Background()))
}

func TestTheme_RoundTrip(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.StoreTheme(ctx, common.ThemeDark))
	assert.Equal(t, common.ThemeDark, s.Theme(ctx))
}
