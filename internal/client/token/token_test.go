package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/studytrack/internal/common"
)

func makeToken(t *testing.T, claims Claims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func expiringAt(t *testing.T, exp time.Time) string {
	t.Helper()
	return makeToken(t, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "42",
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})
}

func TestDecode_ReadsClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour)
	s := makeToken(t, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "42",
			ExpiresAt: jwt.NewNumericDate(exp),
		},
		Username: "alice",
		Email:    "alice@example.org",
	})

	claims, err := Decode(s)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "alice@example.org", claims.Email)
	assert.WithinDuration(t, exp, claims.ExpiresAt.Time, time.Second)
}

func TestDecode_MalformedToken(t *testing.T) {
	for _, s := range []string{"", "garbage", "a.b", "a.b.c"} {
		_, err := Decode(s)
		assert.ErrorIs(t, err, common.ErrInvalidToken, "token %q", s)
	}
}

func TestIsExpired(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"well in the future", expiringAt(t, time.Now().Add(time.Hour)), false},
		{"just past the skew window", expiringAt(t, time.Now().Add(ClockSkew+10*time.Second)), false},
		{"inside the skew window", expiringAt(t, time.Now().Add(time.Minute)), true},
		{"already expired", expiringAt(t, time.Now().Add(-time.Hour)), true},
		{"undecodable", "not-a-jwt", true},
		{"empty", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsExpired(tc.token))
		})
	}
}

func TestIsExpired_NoExpClaim(t *testing.T) {
	s := makeToken(t, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "42"},
	})
	assert.True(t, IsExpired(s))
}
