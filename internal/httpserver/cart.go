package httpserver

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/storefront/internal/logging"
	"github.com/Skotchmaster/storefront/internal/middleware/auth"
	"github.com/Skotchmaster/storefront/internal/service"
	"github.com/Skotchmaster/storefront/internal/transport"
)

type CartHTTP struct {
	Svc *service.CartService
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get")

	userID, err := auth.UserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	view, err := h.Svc.GetOrCreate(ctx, userID)
	if err != nil {
		return fail(c, l, "get_cart_failed", err)
	}
	return c.JSON(http.StatusOK, presentCart(view))
}

func (h *CartHTTP) AddItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add_item")

	userID, err := auth.UserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var req transport.AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, l, "add_cart_item_failed", "invalid body")
	}
	if req.ProductID == uuid.Nil {
		return badRequest(c, l, "add_cart_item_failed", "product_id required")
	}

	view, err := h.Svc.AddItem(ctx, userID, req.ProductID, req.Quantity)
	if err != nil {
		return fail(c, l, "add_cart_item_failed", err)
	}

	l.Info("add_cart_item_success", "product_id", req.ProductID)
	return c.JSON(http.StatusOK, presentCart(view))
}

func (h *CartHTTP) SetItemQuantity(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.set_quantity")

	userID, err := auth.UserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, l, "set_cart_item_quantity_failed", "item id is not a uuid")
	}

	var req transport.SetQuantityRequest
	if err := c.Bind(&req); err != nil || req.Quantity == nil {
		return badRequest(c, l, "set_cart_item_quantity_failed", "quantity required")
	}

	view, err := h.Svc.SetItemQuantity(ctx, userID, itemID, *req.Quantity)
	if err != nil {
		return fail(c, l, "set_cart_item_quantity_failed", err)
	}
	return c.JSON(http.StatusOK, presentCart(view))
}

func (h *CartHTTP) RemoveItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove_item")

	userID, err := auth.UserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, l, "remove_cart_item_failed", "item id is not a uuid")
	}

	view, err := h.Svc.RemoveItem(ctx, userID, itemID)
	if err != nil {
		return fail(c, l, "remove_cart_item_failed", err)
	}
	return c.JSON(http.StatusOK, presentCart(view))
}

func (h *CartHTTP) Clear(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.clear")

	userID, err := auth.UserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	view, err := h.Svc.Clear(ctx, userID)
	if err != nil {
		return fail(c, l, "clear_cart_failed", err)
	}
	return c.JSON(http.StatusOK, presentCart(view))
}
