// Package session inspects bearer tokens for display purposes.
package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the subset of token claims the client shows to the user.
type Claims struct {
	Subject   string
	ExpiresAt time.Time
}

// Inspect parses the bearer token without verifying its signature. The server
// remains the sole authority on token validity; this is for status display
// only (e.g. the whoami command's expiry line). ExpiresAt is zero when the
// token carries no exp claim.
func Inspect(token string) (*Claims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, err
	}

	c := &Claims{}
	if sub, err := claims.GetSubject(); err == nil {
		c.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		c.ExpiresAt = exp.Time
	}
	return c, nil
}

// Expired reports whether the token's exp claim lies before now. Tokens
// without an exp claim never report expired.
func (c *Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}
