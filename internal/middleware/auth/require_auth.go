package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/storefront/internal/logging"
	"github.com/Skotchmaster/storefront/internal/tokens"
)

const (
	ctxUserID = "user_id"
	ctxEmail  = "email"
	ctxRole   = "role"
)

var ErrUnauthorized = errors.New("unauthorized")

type Middleware struct {
	JWTSecret []byte
}

func New(secret []byte) *Middleware {
	return &Middleware{JWTSecret: secret}
}

// RequireAuth accepts an access token from the accessToken cookie or a
// Bearer header and stores the caller's identity on the echo context.
func (m *Middleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		l := logging.FromContext(c.Request().Context()).With("middleware", "require_auth")

		raw := accessToken(c)
		if raw == "" {
			l.Warn("auth_failed", "status", 401, "reason", "missing access token")
			return echo.NewHTTPError(http.StatusUnauthorized, "missing access token")
		}

		claims, err := tokens.AccessClaimsFromToken(raw, m.JWTSecret)
		if err != nil {
			l.Warn("auth_failed", "status", 401, "reason", "invalid access token", "error", err)
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid access token")
		}

		userID, err := claims.UserID()
		if err != nil {
			l.Warn("auth_failed", "status", 401, "reason", "bad subject", "error", err)
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid access token")
		}

		c.Set(ctxUserID, userID)
		c.Set(ctxEmail, claims.Email)
		c.Set(ctxRole, claims.Role)

		ctx := logging.IntoContext(c.Request().Context(), logging.FromContext(c.Request().Context()).With("user_id", userID))
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

func accessToken(c echo.Context) string {
	if ck, err := c.Cookie(tokens.AccessCookie); err == nil && ck.Value != "" {
		return ck.Value
	}
	h := c.Request().Header.Get(echo.HeaderAuthorization)
	if v, ok := strings.CutPrefix(h, "Bearer "); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func UserID(c echo.Context) (uuid.UUID, error) {
	id, ok := c.Get(ctxUserID).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, ErrUnauthorized
	}
	return id, nil
}

func Email(c echo.Context) string {
	s, _ := c.Get(ctxEmail).(string)
	return s
}
