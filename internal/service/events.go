package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Skotchmaster/storefront/internal/logging"
	"github.com/Skotchmaster/storefront/internal/mykafka"
)

type EventPublisher interface {
	PublishEvent(ctx context.Context, topic, key string, event interface{}) error
}

type NopPublisher struct{}

func (NopPublisher) PublishEvent(context.Context, string, string, interface{}) error { return nil }

const (
	EventAddCartItem         = "add_cart_item"
	EventSetCartItemQuantity = "set_cart_item_quantity"
	EventCartItemRemoved     = "cart_item_removed"
	EventCartCleared         = "cart_cleared"
	EventOrderCreated        = "order_created"
	EventOrderPaid           = "order_paid"
)

type CartEvent struct {
	Type      string    `json:"type"`
	UserID    uuid.UUID `json:"user_id"`
	CartID    uuid.UUID `json:"cart_id"`
	ItemID    uuid.UUID `json:"item_id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity,omitempty"`
	At        time.Time `json:"at"`
}

type OrderEvent struct {
	Type       string          `json:"type"`
	OrderID    uuid.UUID       `json:"order_id"`
	UserID     uuid.UUID       `json:"user_id"`
	Lines      int             `json:"lines"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Reference  string          `json:"payment_reference,omitempty"`
	At         time.Time       `json:"at"`
}

// publish runs after the state change is committed. A failed publish is
// logged and never undoes the change.
func publish(ctx context.Context, p EventPublisher, topic, key string, event interface{}) {
	if p == nil {
		return
	}
	if err := p.PublishEvent(ctx, topic, key, event); err != nil {
		logging.FromContext(ctx).Warn("event_publish_failed", "topic", topic, "key", key, "error", err)
	}
}

func publishCart(ctx context.Context, p EventPublisher, ev CartEvent) {
	ev.At = time.Now().UTC()
	publish(ctx, p, mykafka.TopicCartEvents, ev.UserID.String(), ev)
}

func publishOrder(ctx context.Context, p EventPublisher, ev OrderEvent) {
	ev.At = time.Now().UTC()
	publish(ctx, p, mykafka.TopicOrderEvents, ev.OrderID.String(), ev)
}
