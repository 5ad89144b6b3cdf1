package httpserver

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/storefront/internal/service"
	"github.com/Skotchmaster/storefront/internal/transport"
)

const kindUnauthorized = "unauthorized"

func statusFor(kind string) int {
	switch kind {
	case service.KindNotFound:
		return http.StatusNotFound
	case service.KindForbidden:
		return http.StatusForbidden
	case service.KindEmptyCart, service.KindInvalidInput:
		return http.StatusBadRequest
	case service.KindInsufficientStock:
		return http.StatusConflict
	case kindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// fail logs err under event and renders it. Internal causes never reach the
// response body.
func fail(c echo.Context, l *slog.Logger, event string, err error) error {
	kind := service.Kind(err)
	status := statusFor(kind)

	msg := err.Error()
	if kind == service.KindInternal {
		msg = "internal server error"
		l.Error(event, "status", status, "kind", kind, "error", err)
	} else {
		l.Warn(event, "status", status, "kind", kind, "error", err)
	}
	return c.JSON(status, transport.ErrorResponse{Status: "error", Kind: kind, Message: msg})
}

func badRequest(c echo.Context, l *slog.Logger, event, reason string) error {
	return fail(c, l, event, fmt.Errorf("%s: %w", reason, service.ErrValidation))
}

// ErrorHandler renders errors returned by handlers and middleware in the
// same shape as domain errors.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if !errors.As(err, &he) {
		he = echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	kind := service.KindInternal
	switch he.Code {
	case http.StatusUnauthorized:
		kind = kindUnauthorized
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		kind = service.KindNotFound
	case http.StatusForbidden:
		kind = service.KindForbidden
	case http.StatusBadRequest, http.StatusUnsupportedMediaType, http.StatusRequestEntityTooLarge:
		kind = service.KindInvalidInput
	}

	msg := http.StatusText(he.Code)
	if s, ok := he.Message.(string); ok && he.Code < http.StatusInternalServerError {
		msg = s
	}

	var werr error
	if c.Request().Method == http.MethodHead {
		werr = c.NoContent(he.Code)
	} else {
		werr = c.JSON(he.Code, transport.ErrorResponse{Status: "error", Kind: kind, Message: msg})
	}
	if werr != nil {
		c.Logger().Error(werr)
	}
}
