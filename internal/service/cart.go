package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Skotchmaster/storefront/internal/logging"
	"github.com/Skotchmaster/storefront/internal/metrics"
	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/pricing"
	"github.com/Skotchmaster/storefront/internal/repo"
)

type CartService struct {
	Repo    *repo.GormRepo
	Pricing *pricing.Engine
	Events  EventPublisher
	Metrics *metrics.ServerMetrics
}

// ProductView is the live catalog data shown next to a cart line.
type ProductView struct {
	ID    uuid.UUID       `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Image string          `json:"image"`
	Stock int             `json:"stock"`
}

type CartLine struct {
	ID       uuid.UUID    `json:"id"`
	Product  *ProductView `json:"product"`
	Quantity int          `json:"quantity"`
}

// CartView joins every line with the product as it is now. Product is nil
// for lines whose product left the catalog; such lines are not priced.
type CartView struct {
	ID     uuid.UUID      `json:"id"`
	UserID uuid.UUID      `json:"user_id"`
	Items  []CartLine     `json:"items"`
	Totals pricing.Totals `json:"totals"`
}

func (s *CartService) GetOrCreate(ctx context.Context, userID uuid.UUID) (*CartView, error) {
	cart, err := s.Repo.GetOrCreateCart(ctx, userID)
	if err != nil {
		return nil, storageErr("get cart", err)
	}
	return s.view(ctx, s.Repo, cart)
}

// AddItem puts quantity units of the product into the cart, merging with an
// existing line. Zero means one unit.
func (s *CartService) AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*CartView, error) {
	if productID == uuid.Nil {
		return nil, fmt.Errorf("product_id required: %w", ErrValidation)
	}
	if quantity < 0 {
		return nil, fmt.Errorf("quantity must be positive: %w", ErrValidation)
	}
	if quantity == 0 {
		quantity = 1
	}

	var (
		view *CartView
		ev   CartEvent
	)
	err := s.Repo.WithTx(ctx, func(tx *repo.GormRepo) error {
		if _, err := tx.GetOrCreateCart(ctx, userID); err != nil {
			return storageErr("add item", err)
		}
		cart, err := tx.FindCartForUpdate(ctx, userID)
		if err != nil {
			return storageErr("add item", err)
		}

		product, err := tx.FindProductForUpdate(ctx, productID)
		if err != nil {
			return lookupErr("add item", err, "product")
		}

		item, err := tx.FindCartItemByProduct(ctx, cart.ID, productID)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if quantity > product.Stock {
				return fmt.Errorf("requested %d of %q, %d in stock: %w", quantity, product.Name, product.Stock, ErrInsufficientStock)
			}
			item = &models.CartItem{CartID: cart.ID, ProductID: productID, Quantity: quantity}
			if err := tx.CreateCartItem(ctx, item); err != nil {
				return storageErr("add item", err)
			}
		case err != nil:
			return storageErr("add item", err)
		default:
			requested := item.Quantity + quantity
			if requested > product.Stock {
				return fmt.Errorf("requested %d of %q, %d in stock: %w", requested, product.Name, product.Stock, ErrInsufficientStock)
			}
			item.Quantity = requested
			if err := tx.SetCartItemQuantity(ctx, item.ID, requested); err != nil {
				return storageErr("add item", err)
			}
		}

		ev = CartEvent{Type: EventAddCartItem, UserID: userID, CartID: cart.ID, ItemID: item.ID, ProductID: productID, Quantity: item.Quantity}
		view, err = s.reload(ctx, tx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.mutated(ctx, ev)
	return view, nil
}

// SetItemQuantity replaces the quantity of a line; zero or less removes it.
func (s *CartService) SetItemQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*CartView, error) {
	var (
		view *CartView
		ev   CartEvent
	)
	err := s.Repo.WithTx(ctx, func(tx *repo.GormRepo) error {
		cart, err := tx.FindCartForUpdate(ctx, userID)
		if err != nil {
			return lookupErr("set quantity", err, "cart")
		}
		item, err := tx.FindCartItem(ctx, cart.ID, itemID)
		if err != nil {
			return lookupErr("set quantity", err, "cart item")
		}

		ev = CartEvent{Type: EventSetCartItemQuantity, UserID: userID, CartID: cart.ID, ItemID: item.ID, ProductID: item.ProductID, Quantity: quantity}

		if quantity <= 0 {
			ev.Type, ev.Quantity = EventCartItemRemoved, 0
			if _, err := tx.DeleteCartItem(ctx, cart.ID, item.ID); err != nil {
				return storageErr("set quantity", err)
			}
		} else {
			product, err := tx.FindProductForUpdate(ctx, item.ProductID)
			if err != nil {
				return lookupErr("set quantity", err, "product")
			}
			if quantity > product.Stock {
				return fmt.Errorf("requested %d of %q, %d in stock: %w", quantity, product.Name, product.Stock, ErrInsufficientStock)
			}
			if err := tx.SetCartItemQuantity(ctx, item.ID, quantity); err != nil {
				return storageErr("set quantity", err)
			}
		}

		view, err = s.reload(ctx, tx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.mutated(ctx, ev)
	return view, nil
}

// RemoveItem deletes a line. A line that is already gone is not an error.
func (s *CartService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) (*CartView, error) {
	cart, err := s.Repo.FindCart(ctx, userID)
	if err != nil {
		return nil, lookupErr("remove item", err, "cart")
	}

	deleted, err := s.Repo.DeleteCartItem(ctx, cart.ID, itemID)
	if err != nil {
		return nil, storageErr("remove item", err)
	}
	if !deleted {
		logging.FromContext(ctx).Debug("cart_item_already_absent", "user_id", userID, "item_id", itemID)
		return s.view(ctx, s.Repo, cart)
	}

	view, err := s.reload(ctx, s.Repo, userID)
	if err != nil {
		return nil, err
	}
	s.mutated(ctx, CartEvent{Type: EventCartItemRemoved, UserID: userID, CartID: cart.ID, ItemID: itemID})
	return view, nil
}

func (s *CartService) Clear(ctx context.Context, userID uuid.UUID) (*CartView, error) {
	cart, err := s.Repo.GetOrCreateCart(ctx, userID)
	if err != nil {
		return nil, storageErr("clear cart", err)
	}
	if err := s.Repo.ClearCart(ctx, cart.ID); err != nil {
		return nil, storageErr("clear cart", err)
	}
	cart.Items = nil

	view, err := s.view(ctx, s.Repo, cart)
	if err != nil {
		return nil, err
	}
	s.mutated(ctx, CartEvent{Type: EventCartCleared, UserID: userID, CartID: cart.ID})
	return view, nil
}

func (s *CartService) reload(ctx context.Context, r *repo.GormRepo, userID uuid.UUID) (*CartView, error) {
	cart, err := r.FindCart(ctx, userID)
	if err != nil {
		return nil, storageErr("reload cart", err)
	}
	return s.view(ctx, r, cart)
}

func (s *CartService) view(ctx context.Context, r *repo.GormRepo, cart *models.Cart) (*CartView, error) {
	ids := make([]uuid.UUID, 0, len(cart.Items))
	for _, it := range cart.Items {
		ids = append(ids, it.ProductID)
	}
	products, err := r.FindProducts(ctx, ids)
	if err != nil {
		return nil, storageErr("load cart products", err)
	}

	v := &CartView{ID: cart.ID, UserID: cart.UserID, Items: make([]CartLine, 0, len(cart.Items))}
	lines := make([]pricing.Line, 0, len(cart.Items))
	for _, it := range cart.Items {
		line := CartLine{ID: it.ID, Quantity: it.Quantity}
		if p, ok := products[it.ProductID]; ok {
			line.Product = &ProductView{ID: p.ID, Name: p.Name, Price: p.Price, Image: p.Image, Stock: p.Stock}
			lines = append(lines, pricing.Line{UnitPrice: p.Price, Quantity: it.Quantity})
		}
		v.Items = append(v.Items, line)
	}

	v.Totals, err = s.engine().Compute(lines)
	if err != nil {
		return nil, storageErr("price cart", err)
	}
	return v, nil
}

func (s *CartService) engine() *pricing.Engine {
	if s.Pricing == nil {
		return pricing.NewEngine(pricing.DefaultConfig())
	}
	return s.Pricing
}

func (s *CartService) mutated(ctx context.Context, ev CartEvent) {
	if s.Metrics != nil {
		s.Metrics.CartMutations.WithLabelValues(ev.Type).Inc()
	}
	logging.FromContext(ctx).Info("cart_mutated", "type", ev.Type, "user_id", ev.UserID, "product_id", ev.ProductID, "quantity", ev.Quantity)
	publishCart(ctx, s.Events, ev)
}
