package service

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Skotchmaster/storefront/internal/metrics"
	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/pricing"
	"github.com/Skotchmaster/storefront/internal/repo"
	"github.com/Skotchmaster/storefront/internal/testutil"
)

type recordedEvent struct {
	Topic string
	Key   string
	Event interface{}
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (p *recordingPublisher) PublishEvent(_ context.Context, topic, key string, event interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, recordedEvent{Topic: topic, Key: key, Event: event})
	return nil
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		switch ev := e.Event.(type) {
		case CartEvent:
			out = append(out, ev.Type)
		case OrderEvent:
			out = append(out, ev.Type)
		}
	}
	return out
}

type fixture struct {
	db       *gorm.DB
	repo     *repo.GormRepo
	events   *recordingPublisher
	metrics  *metrics.ServerMetrics
	cart     *CartService
	checkout *CheckoutService
	orders   *OrderService
	recs     *RecommendationService
	catalog  *CatalogService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	gdb := testutil.NewDB(t)
	r := &repo.GormRepo{DB: gdb}
	ev := &recordingPublisher{}
	m := metrics.NewServerMetrics("test")
	engine := pricing.NewEngine(pricing.DefaultConfig())

	return &fixture{
		db:       gdb,
		repo:     r,
		events:   ev,
		metrics:  m,
		cart:     &CartService{Repo: r, Pricing: engine, Events: ev, Metrics: m},
		checkout: &CheckoutService{Repo: r, Pricing: engine, Events: ev, Metrics: m},
		orders:   &OrderService{Repo: r, Events: ev, Metrics: m},
		recs:     &RecommendationService{Repo: r},
		catalog:  &CatalogService{Repo: r},
	}
}

func validCheckout() CheckoutInput {
	return CheckoutInput{
		ShippingAddress: models.ShippingAddress{
			FullName:   "Ada Lovelace",
			Address:    "12 Analytical Row",
			City:       "London",
			PostalCode: "N1 9GU",
			Country:    "UK",
		},
		PaymentMethod: models.PaymentCard,
	}
}

func countOrders(t *testing.T, gdb *gorm.DB) int64 {
	t.Helper()
	var n int64
	if err := gdb.Model(&models.Order{}).Count(&n).Error; err != nil {
		t.Fatalf("count orders: %v", err)
	}
	return n
}

func newUser() uuid.UUID { return uuid.New() }
