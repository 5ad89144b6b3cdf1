package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/storefront/internal/logging"
	"github.com/Skotchmaster/storefront/internal/middleware/auth"
	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/service"
	"github.com/Skotchmaster/storefront/internal/transport"
	"github.com/Skotchmaster/storefront/internal/util"
)

type RecommendationHTTP struct {
	Svc *service.RecommendationService
}

func (h *RecommendationHTTP) ForUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "recommendation.for_user")

	userID, err := auth.UserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	limit := util.ParseIntDefault(c.QueryParam("limit"), service.DefaultRecommendLimit)
	items, err := h.Svc.Recommend(ctx, userID, limit)
	if err != nil {
		return fail(c, l, "recommend_failed", err)
	}
	return c.JSON(http.StatusOK, transport.ListResponse[models.Product]{Data: items, Count: len(items)})
}

func (h *RecommendationHTTP) Popular(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "recommendation.popular")

	limit := util.ParseIntDefault(c.QueryParam("limit"), service.DefaultRecommendLimit)
	items, err := h.Svc.Popular(ctx, limit)
	if err != nil {
		return fail(c, l, "popular_failed", err)
	}
	return c.JSON(http.StatusOK, transport.ListResponse[models.Product]{Data: items, Count: len(items)})
}
