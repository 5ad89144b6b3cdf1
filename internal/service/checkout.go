package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Skotchmaster/storefront/internal/logging"
	"github.com/Skotchmaster/storefront/internal/metrics"
	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/pricing"
	"github.com/Skotchmaster/storefront/internal/repo"
)

type CheckoutService struct {
	Repo    *repo.GormRepo
	Pricing *pricing.Engine
	Events  EventPublisher
	Metrics *metrics.ServerMetrics
}

type CheckoutInput struct {
	ShippingAddress models.ShippingAddress
	PaymentMethod   models.PaymentMethod
}

func (in CheckoutInput) validate() error {
	a := in.ShippingAddress
	fields := []struct{ name, value string }{
		{"full_name", a.FullName},
		{"address", a.Address},
		{"city", a.City},
		{"postal_code", a.PostalCode},
		{"country", a.Country},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("shipping_address.%s required: %w", f.name, ErrValidation)
		}
	}
	if !in.PaymentMethod.Valid() {
		return fmt.Errorf("payment_method %q not supported: %w", in.PaymentMethod, ErrValidation)
	}
	return nil
}

// Checkout turns the user's cart into a pending order. Pricing, the order
// insert, every stock decrement and the cart reset commit together or not
// at all.
func (s *CheckoutService) Checkout(ctx context.Context, userID uuid.UUID, in CheckoutInput) (*models.Order, error) {
	l := logging.FromContext(ctx).With("op", "checkout", "user_id", userID)

	if err := in.validate(); err != nil {
		s.count(err)
		return nil, err
	}

	var order *models.Order
	err := s.Repo.WithTx(ctx, func(tx *repo.GormRepo) error {
		cart, err := tx.FindCartForUpdate(ctx, userID)
		if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && len(cart.Items) == 0) {
			return ErrEmptyCart
		}
		if err != nil {
			return storageErr("checkout", err)
		}

		ids := make([]uuid.UUID, 0, len(cart.Items))
		for _, it := range cart.Items {
			ids = append(ids, it.ProductID)
		}
		products, err := tx.FindProducts(ctx, ids)
		if err != nil {
			return storageErr("checkout", err)
		}

		order = &models.Order{
			UserID:          userID,
			ShippingAddress: in.ShippingAddress,
			PaymentMethod:   in.PaymentMethod,
			Status:          models.OrderStatusPending,
			Lines:           make([]models.OrderLine, 0, len(cart.Items)),
		}
		priced := make([]pricing.Line, 0, len(cart.Items))
		for i, it := range cart.Items {
			p, ok := products[it.ProductID]
			if !ok {
				return fmt.Errorf("product %s: %w", it.ProductID, ErrNotFound)
			}
			order.Lines = append(order.Lines, models.OrderLine{
				Position:  i,
				ProductID: p.ID,
				Name:      p.Name,
				UnitPrice: p.Price,
				Quantity:  it.Quantity,
				Image:     p.Image,
			})
			priced = append(priced, pricing.Line{UnitPrice: p.Price, Quantity: it.Quantity})
		}

		totals, err := s.engine().Compute(priced)
		if err != nil {
			return fmt.Errorf("price cart: %w: %w", ErrValidation, err)
		}
		order.ItemsPrice = totals.Subtotal
		order.ShippingPrice = totals.Shipping
		order.TaxPrice = totals.Tax
		order.TotalPrice = totals.Total

		if err := tx.CreateOrder(ctx, order); err != nil {
			return storageErr("create order", err)
		}

		if err := decrementAll(ctx, tx, order.Lines); err != nil {
			return err
		}

		if err := tx.ClearCart(ctx, cart.ID); err != nil {
			return storageErr("clear cart", err)
		}
		return nil
	})
	s.count(err)
	if err != nil {
		if Kind(err) == KindInternal {
			l.Error("checkout_failed", "error", err)
		} else {
			l.Warn("checkout_rejected", "kind", Kind(err), "error", err)
		}
		return nil, err
	}

	l.Info("checkout_succeeded", "order_id", order.ID, "total", order.TotalPrice.String(), "lines", len(order.Lines))
	publishOrder(ctx, s.Events, OrderEvent{
		Type:       EventOrderCreated,
		OrderID:    order.ID,
		UserID:     userID,
		Lines:      len(order.Lines),
		TotalPrice: order.TotalPrice,
	})
	return order, nil
}

// decrementAll takes stock for every line, in product id order so that
// concurrent checkouts touching the same products lock rows in one order.
// The first shortfall aborts; the caller's transaction undoes the rest.
func decrementAll(ctx context.Context, tx *repo.GormRepo, lines []models.OrderLine) error {
	want := make(map[uuid.UUID]int, len(lines))
	names := make(map[uuid.UUID]string, len(lines))
	for _, ln := range lines {
		want[ln.ProductID] += ln.Quantity
		names[ln.ProductID] = ln.Name
	}

	ids := make([]uuid.UUID, 0, len(want))
	for id := range want {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return bytes.Compare(ids[i][:], ids[j][:]) < 0 })

	for _, id := range ids {
		ok, err := tx.DecrementStock(ctx, id, want[id])
		if err != nil {
			return storageErr("decrement stock", err)
		}
		if !ok {
			return fmt.Errorf("%q: %w", names[id], ErrInsufficientStock)
		}
	}
	return nil
}

func (s *CheckoutService) engine() *pricing.Engine {
	if s.Pricing == nil {
		return pricing.NewEngine(pricing.DefaultConfig())
	}
	return s.Pricing
}

func (s *CheckoutService) count(err error) {
	if s.Metrics == nil {
		return
	}
	result := metrics.ResultOK
	switch Kind(err) {
	case KindEmptyCart:
		result = metrics.ResultEmptyCart
	case KindInsufficientStock:
		result = metrics.ResultInsufficientStock
	case KindInvalidInput, KindNotFound:
		result = metrics.ResultInvalid
	case KindInternal:
		if err != nil {
			result = metrics.ResultError
		}
	}
	s.Metrics.CheckoutResults.WithLabelValues(result).Inc()
}
