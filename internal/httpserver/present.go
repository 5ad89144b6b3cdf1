package httpserver

import (
	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/service"
)

// moneyPlaces is the currency minor unit used for responses. Stored values
// keep full precision.
const moneyPlaces = 2

func presentCart(v *service.CartView) *service.CartView {
	out := *v
	out.Totals = v.Totals.Rounded(moneyPlaces)
	return &out
}

func presentOrder(o models.Order) models.Order {
	o.ItemsPrice = o.ItemsPrice.Round(moneyPlaces)
	o.ShippingPrice = o.ShippingPrice.Round(moneyPlaces)
	o.TaxPrice = o.TaxPrice.Round(moneyPlaces)
	o.TotalPrice = o.TotalPrice.Round(moneyPlaces)
	return o
}

func presentOrders(orders []models.Order) []models.Order {
	out := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, presentOrder(o))
	}
	return out
}
