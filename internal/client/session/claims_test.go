package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestInspect(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedToken(t, jwt.MapClaims{
		"sub": "1",
		"exp": exp.Unix(),
	})

	c, err := Inspect(token)
	require.NoError(t, err)
	assert.Equal(t, "1", c.Subject)
	assert.True(t, c.ExpiresAt.Equal(exp))
	assert.False(t, c.Expired(time.Now()))
	assert.True(t, c.Expired(exp.Add(time.Second)))
}

func TestInspect_NoExpClaim(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "1"})

	c, err := Inspect(token)
	require.NoError(t, err)
	assert.True(t, c.ExpiresAt.IsZero())
	assert.False(t, c.Expired(time.Now()), "token without exp never expires client-side")
}

func TestInspect_MalformedToken(t *testing.T) {
	_, err := Inspect("not-a-jwt")
	require.Error(t, err)
}
