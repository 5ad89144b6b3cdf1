package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/storefront/internal/models"
	tu "github.com/Skotchmaster/storefront/internal/testutil"
)

func placeOrder(t *testing.T, f *fixture, user uuid.UUID, price string) *models.Order {
	t.Helper()
	ctx := context.Background()

	p := tu.CreateProduct(t, f.db, "item-"+price, price)
	_, err := f.cart.AddItem(ctx, user, p.ID, 1)
	require.NoError(t, err)
	order, err := f.checkout.Checkout(ctx, user, validCheckout())
	require.NoError(t, err)
	return order
}

func TestOrders_ListNewestFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := newUser()

	first := placeOrder(t, f, user, "10")
	require.NoError(t, f.db.Model(&models.Order{}).Where("id = ?", first.ID).Update("created_at", time.Now().UTC().Add(-time.Hour)).Error)
	second := placeOrder(t, f, user, "20")
	placeOrder(t, f, newUser(), "30")

	orders, err := f.orders.ListOrders(ctx, user)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)
	assert.Len(t, orders[0].Lines, 1)
}

func TestOrders_GetOwnership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := newUser()
	order := placeOrder(t, f, owner, "10")

	_, err := f.orders.GetOrder(ctx, newUser(), order.ID)
	require.ErrorIs(t, err, ErrForbidden)

	_, err = f.orders.GetOrder(ctx, owner, uuid.New())
	require.ErrorIs(t, err, ErrNotFound)

	got, err := f.orders.GetOrder(ctx, owner, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
}

func TestOrders_MarkPaid(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := newUser()
	order := placeOrder(t, f, owner, "10")

	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	f.orders.Now = func() time.Time { return fixed }

	paid, err := f.orders.MarkPaid(ctx, owner, order.ID, PaymentInput{Reference: "PAY-123", PayerEmail: "ada@example.com"})
	require.NoError(t, err)
	assert.True(t, paid.IsPaid)
	require.NotNil(t, paid.PaidAt)
	assert.True(t, paid.PaidAt.Equal(fixed))

	stored, err := f.orders.GetOrder(ctx, owner, order.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsPaid)
	require.NotNil(t, stored.PaidAt)
	assert.True(t, stored.PaidAt.Equal(fixed))
	assert.Equal(t, "PAY-123", stored.PaymentResult.ReferenceID)
	assert.Equal(t, models.PaymentStatusCompleted, stored.PaymentResult.Status)
	assert.Equal(t, "ada@example.com", stored.PaymentResult.EmailAddress)
	assert.Equal(t, models.OrderStatusPending, stored.Status)
	assert.True(t, stored.TotalPrice.Equal(order.TotalPrice))

	assert.Contains(t, f.events.types(), EventOrderPaid)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.OrdersPaid))
}

func TestOrders_MarkPaid_GeneratesReference(t *testing.T) {
	f := newFixture(t)
	owner := newUser()
	order := placeOrder(t, f, owner, "10")

	paid, err := f.orders.MarkPaid(context.Background(), owner, order.ID, PaymentInput{})
	require.NoError(t, err)
	_, err = uuid.Parse(paid.PaymentResult.ReferenceID)
	assert.NoError(t, err)
}

func TestOrders_MarkPaid_ForbiddenLeavesOrderAlone(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := newUser()
	order := placeOrder(t, f, owner, "10")

	_, err := f.orders.MarkPaid(ctx, newUser(), order.ID, PaymentInput{Reference: "X"})
	require.ErrorIs(t, err, ErrForbidden)
	assert.Equal(t, KindForbidden, Kind(err))

	_, err = f.orders.MarkPaid(ctx, owner, uuid.New(), PaymentInput{Reference: "X"})
	require.ErrorIs(t, err, ErrNotFound)

	stored, err := f.orders.GetOrder(ctx, owner, order.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsPaid)
	assert.Nil(t, stored.PaidAt)
	assert.Empty(t, stored.PaymentResult.ReferenceID)
}
