package tokens

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func sign(t *testing.T, method jwt.SigningMethod, key any, claims AccessClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func claimsFor(sub string, exp time.Time) AccessClaims {
	return AccessClaims{
		Email: "ada@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
}

func TestAccessClaimsFromToken_Valid(t *testing.T) {
	user := uuid.New()
	tok := sign(t, jwt.SigningMethodHS256, secret, claimsFor(user.String(), time.Now().Add(time.Minute)))

	claims, err := AccessClaimsFromToken(tok, secret)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", claims.Email)

	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, user, id)
}

func TestAccessClaimsFromToken_Rejects(t *testing.T) {
	user := uuid.New().String()

	expired := sign(t, jwt.SigningMethodHS256, secret, claimsFor(user, time.Now().Add(-time.Minute)))
	_, err := AccessClaimsFromToken(expired, secret)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	wrongKey := sign(t, jwt.SigningMethodHS256, []byte("other"), claimsFor(user, time.Now().Add(time.Minute)))
	_, err = AccessClaimsFromToken(wrongKey, secret)
	assert.Error(t, err)

	hs512 := sign(t, jwt.SigningMethodHS512, secret, claimsFor(user, time.Now().Add(time.Minute)))
	_, err = AccessClaimsFromToken(hs512, secret)
	assert.Error(t, err)

	noExp := sign(t, jwt.SigningMethodHS256, secret, AccessClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: user}})
	_, err = AccessClaimsFromToken(noExp, secret)
	assert.Error(t, err)
}

func TestUserID_BadSubject(t *testing.T) {
	c := claimsFor("42", time.Now())
	_, err := c.UserID()
	assert.ErrorIs(t, err, ErrInvalidSubject)
}
