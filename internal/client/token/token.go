// Package token decodes JWT payloads on the client side.
//
// Decoding is unverified: the backend is the trust boundary and the client
// reads claims only to estimate expiry and show profile hints, never to make
// authorization decisions.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/studytrack/internal/common"
)

// ClockSkew is the safety window subtracted from a token's expiry before it
// is treated as expired, to avoid races against server clock drift.
const ClockSkew = 2 * time.Minute

// Claims is the JWT payload issued by the backend: registered claims plus
// the optional profile fields the server includes.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
}

// Decode parses the token payload without verifying the signature.
// Malformed tokens return common.ErrInvalidToken.
func Decode(tokenString string) (*Claims, error) {
	claims := &Claims{}

	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}

// IsExpired reports whether the token's claimed expiry, minus ClockSkew,
// is in the past. Undecodable tokens and tokens without an exp claim are
// treated as expired (fail closed).
func IsExpired(tokenString string) bool {
	claims, err := Decode(tokenString)
	if err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return true
	}
	return !time.Now().Before(claims.ExpiresAt.Time.Add(-ClockSkew))
}
