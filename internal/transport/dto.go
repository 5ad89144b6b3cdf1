package transport

import (
	"github.com/google/uuid"

	"github.com/Skotchmaster/storefront/internal/models"
)

type AddCartItemRequest struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

type SetQuantityRequest struct {
	Quantity *int `json:"quantity"`
}

type CheckoutRequest struct {
	ShippingAddress models.ShippingAddress `json:"shipping_address"`
	PaymentMethod   models.PaymentMethod   `json:"payment_method"`
}

type PayOrderRequest struct {
	PaymentID    string `json:"payment_id"`
	EmailAddress string `json:"email_address"`
}

type ErrorResponse struct {
	Status  string `json:"status"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status"`
	DB     string `json:"db,omitempty"`
}

type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Count int `json:"count"`
}
