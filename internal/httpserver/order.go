package httpserver

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/storefront/internal/logging"
	"github.com/Skotchmaster/storefront/internal/middleware/auth"
	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/service"
	"github.com/Skotchmaster/storefront/internal/transport"
)

type OrderHTTP struct {
	Checkout *service.CheckoutService
	Orders   *service.OrderService
}

func (h *OrderHTTP) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create")

	userID, err := auth.UserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var req transport.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, l, "checkout_failed", "invalid body")
	}

	order, err := h.Checkout.Checkout(ctx, userID, service.CheckoutInput{
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
	})
	if err != nil {
		return fail(c, l, "checkout_failed", err)
	}

	l.Info("checkout_success", "order_id", order.ID)
	return c.JSON(http.StatusCreated, presentOrder(*order))
}

func (h *OrderHTTP) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.list")

	userID, err := auth.UserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	orders, err := h.Orders.ListOrders(ctx, userID)
	if err != nil {
		return fail(c, l, "list_orders_failed", err)
	}
	return c.JSON(http.StatusOK, transport.ListResponse[models.Order]{Data: presentOrders(orders), Count: len(orders)})
}

func (h *OrderHTTP) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get")

	userID, err := auth.UserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, l, "get_order_failed", "order id is not a uuid")
	}

	order, err := h.Orders.GetOrder(ctx, userID, orderID)
	if err != nil {
		return fail(c, l, "get_order_failed", err)
	}
	return c.JSON(http.StatusOK, presentOrder(*order))
}

// PayOrder marks an order paid on behalf of a trusted payment callback. The
// payer email defaults to the caller's token email.
func (h *OrderHTTP) PayOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.pay")

	userID, err := auth.UserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, l, "pay_order_failed", "order id is not a uuid")
	}

	var req transport.PayOrderRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, l, "pay_order_failed", "invalid body")
	}
	email := req.EmailAddress
	if email == "" {
		email = auth.Email(c)
	}

	order, err := h.Orders.MarkPaid(ctx, userID, orderID, service.PaymentInput{Reference: req.PaymentID, PayerEmail: email})
	if err != nil {
		return fail(c, l, "pay_order_failed", err)
	}

	l.Info("pay_order_success", "order_id", order.ID)
	return c.JSON(http.StatusOK, presentOrder(*order))
}
