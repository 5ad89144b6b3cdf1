package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Skotchmaster/storefront/internal/logging"
	"github.com/Skotchmaster/storefront/internal/metrics"
	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/repo"
)

type OrderService struct {
	Repo    *repo.GormRepo
	Events  EventPublisher
	Metrics *metrics.ServerMetrics
	Now     func() time.Time
}

type PaymentInput struct {
	Reference  string
	PayerEmail string
}

func (s *OrderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	orders, err := s.Repo.ListOrders(ctx, userID)
	if err != nil {
		return nil, storageErr("list orders", err)
	}
	return orders, nil
}

func (s *OrderService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*models.Order, error) {
	order, err := s.Repo.FindOrder(ctx, orderID)
	if err != nil {
		return nil, lookupErr("get order", err, "order")
	}
	if order.UserID != userID {
		return nil, fmt.Errorf("order %s: %w", orderID, ErrForbidden)
	}
	return order, nil
}

// MarkPaid records a payment confirmed by a trusted caller. Repeated calls
// overwrite the previous payment result.
func (s *OrderService) MarkPaid(ctx context.Context, userID, orderID uuid.UUID, in PaymentInput) (*models.Order, error) {
	order, err := s.GetOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	ref := strings.TrimSpace(in.Reference)
	if ref == "" {
		ref = uuid.NewString()
	}

	now := s.now()
	order.IsPaid = true
	order.PaidAt = &now
	order.PaymentResult = models.PaymentResult{
		ReferenceID:  ref,
		Status:       models.PaymentStatusCompleted,
		UpdateTime:   &now,
		EmailAddress: in.PayerEmail,
	}

	if err := s.Repo.SaveOrderPayment(ctx, order); err != nil {
		return nil, storageErr("mark paid", err)
	}

	if s.Metrics != nil {
		s.Metrics.OrdersPaid.Inc()
	}
	logging.FromContext(ctx).Info("order_paid", "order_id", order.ID, "user_id", userID, "reference", ref)
	publishOrder(ctx, s.Events, OrderEvent{
		Type:       EventOrderPaid,
		OrderID:    order.ID,
		UserID:     userID,
		Lines:      len(order.Lines),
		TotalPrice: order.TotalPrice,
		Reference:  ref,
	})
	return order, nil
}

func (s *OrderService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}
