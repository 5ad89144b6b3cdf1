package testutil

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/storefront/internal/tokens"
)

// AccessCookie signs a short-lived access token for userID, as the auth
// service would, and wraps it in the cookie the API reads.
func AccessCookie(t *testing.T, secret []byte, userID uuid.UUID, email string) *http.Cookie {
	t.Helper()

	claims := tokens.AccessClaims{
		Role:  "user",
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(15 * time.Minute)),
		},
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return &http.Cookie{Name: tokens.AccessCookie, Value: s, Path: "/"}
}
