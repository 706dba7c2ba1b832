// Package auth provides the signed token codec and the session cookie policy.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domainauth "foodatlas-server/internal/domain/auth"
)

// ErrInvalidToken is returned for every verification failure: bad signature,
// malformed payload or expiry. Callers treat all of them identically.
var ErrInvalidToken = errors.New("invalid token")

// Claims carries the registered claims plus the role claim.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// TokenCodec issues and verifies HS256 identity tokens. The signing secret is
// injected at construction; there is no process-wide default.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenCodec constructs a codec for the given secret and token lifetime.
func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	return &TokenCodec{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed token embedding the subject id and role.
func (c *TokenCodec) Issue(subject, role string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
		Role: role,
	})

	return token.SignedString(c.secret)
}

// Verify validates the token signature and expiry and returns its claims.
// Every failure mode collapses into ErrInvalidToken.
func (c *TokenCodec) Verify(tokenString string) (domainauth.TokenClaims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return c.secret, nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return domainauth.TokenClaims{}, ErrInvalidToken
	}

	return domainauth.TokenClaims{
		Subject: claims.Subject,
		Role:    claims.Role,
	}, nil
}
