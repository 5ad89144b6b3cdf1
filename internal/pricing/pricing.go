// Package pricing derives order totals from (unit price, quantity) lines.
//
// Values are kept exact; rounding to the currency's minor unit happens only
// when totals are presented.
package pricing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrInvalidLine = errors.New("invalid pricing line")

type Config struct {
	// Subtotals strictly above the threshold ship for free.
	FreeShippingThreshold decimal.Decimal
	ShippingFee           decimal.Decimal
	TaxRate               decimal.Decimal
}

func DefaultConfig() Config {
	return Config{
		FreeShippingThreshold: decimal.NewFromInt(100),
		ShippingFee:           decimal.NewFromInt(10),
		TaxRate:               decimal.RequireFromString("0.10"),
	}
}

type Line struct {
	UnitPrice decimal.Decimal
	Quantity  int
}

type Totals struct {
	Subtotal decimal.Decimal `json:"items_price"`
	Shipping decimal.Decimal `json:"shipping_price"`
	Tax      decimal.Decimal `json:"tax_price"`
	Total    decimal.Decimal `json:"total_price"`
}

// Rounded returns a copy for display. Never feed it back into Compute.
func (t Totals) Rounded(places int32) Totals {
	return Totals{
		Subtotal: t.Subtotal.Round(places),
		Shipping: t.Shipping.Round(places),
		Tax:      t.Tax.Round(places),
		Total:    t.Total.Round(places),
	}
}

type Engine struct {
	Config Config
}

func NewEngine(cfg Config) *Engine {
	return &Engine{Config: cfg}
}

func (e *Engine) Compute(lines []Line) (Totals, error) {
	subtotal := decimal.Zero
	for i, l := range lines {
		if l.UnitPrice.IsNegative() {
			return Totals{}, fmt.Errorf("%w: line %d: negative unit price %s", ErrInvalidLine, i, l.UnitPrice)
		}
		if l.Quantity < 0 {
			return Totals{}, fmt.Errorf("%w: line %d: negative quantity %d", ErrInvalidLine, i, l.Quantity)
		}
		subtotal = subtotal.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}

	shipping := e.Config.ShippingFee
	if subtotal.GreaterThan(e.Config.FreeShippingThreshold) {
		shipping = decimal.Zero
	}
	tax := subtotal.Mul(e.Config.TaxRate)

	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax),
	}, nil
}
