package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Skotchmaster/storefront/internal/db"
	"github.com/Skotchmaster/storefront/internal/metrics"
	"github.com/Skotchmaster/storefront/internal/middleware/auth"
	"github.com/Skotchmaster/storefront/internal/transport"
)

type Deps struct {
	DB      *gorm.DB
	Auth    *auth.Middleware
	Metrics *metrics.ServerMetrics

	Catalog         *CatalogHTTP
	Cart            *CartHTTP
	Orders          *OrderHTTP
	Recommendations *RecommendationHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error {
		return c.JSON(http.StatusOK, transport.HealthResponse{Status: "ok"})
	})
	e.GET("/health/ready", d.ready)
	if d.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(d.Metrics.Handler()))
	}

	v1 := e.Group("/api/v1")

	products := v1.Group("/products")
	products.GET("", d.Catalog.ListProducts)
	products.GET("/:id", d.Catalog.GetProduct)

	v1.GET("/recommendations/popular", d.Recommendations.Popular)
	v1.GET("/recommendations", d.Recommendations.ForUser, d.Auth.RequireAuth)

	cart := v1.Group("/cart", d.Auth.RequireAuth)
	cart.GET("", d.Cart.GetCart)
	cart.POST("", d.Cart.AddItem)
	cart.DELETE("", d.Cart.Clear)
	cart.PUT("/items/:id", d.Cart.SetItemQuantity)
	cart.DELETE("/items/:id", d.Cart.RemoveItem)

	orders := v1.Group("/orders", d.Auth.RequireAuth)
	orders.POST("", d.Orders.CreateOrder)
	orders.GET("", d.Orders.ListOrders)
	orders.GET("/:id", d.Orders.GetOrder)
	orders.PUT("/:id/pay", d.Orders.PayOrder)
}

func (d *Deps) ready(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	if err := db.Ping(ctx, d.DB); err != nil {
		return c.JSON(http.StatusServiceUnavailable, transport.HealthResponse{Status: "unavailable", DB: err.Error()})
	}
	return c.JSON(http.StatusOK, transport.HealthResponse{Status: "ok", DB: "ok"})
}
