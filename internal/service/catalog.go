package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/repo"
	"github.com/Skotchmaster/storefront/internal/util"
)

type CatalogService struct {
	Repo *repo.GormRepo
}

type ProductPage struct {
	Items []models.Product `json:"data"`
	Meta  util.PageMeta    `json:"meta"`
}

func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	p, err := s.Repo.FindProduct(ctx, id)
	if err != nil {
		return nil, lookupErr("get product", err, "product")
	}
	return p, nil
}

func (s *CatalogService) ListProducts(ctx context.Context, page, size int) (*ProductPage, error) {
	offset, limit := util.Calculate(page, size)

	total, items, err := s.Repo.ListProducts(ctx, offset, limit)
	if err != nil {
		return nil, storageErr("list products", err)
	}

	return &ProductPage{Items: items, Meta: util.NewPageMeta(page, offset, limit, total)}, nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, p *models.Product) error {
	if p.Name == "" {
		return fmt.Errorf("product name required: %w", ErrValidation)
	}
	if p.Price.IsNegative() || p.Stock < 0 || p.ReviewCount < 0 {
		return fmt.Errorf("price, stock and review count must be non-negative: %w", ErrValidation)
	}
	if p.Rating < 0 || p.Rating > 5 {
		return fmt.Errorf("rating must be within 0..5: %w", ErrValidation)
	}
	if err := s.Repo.CreateProduct(ctx, p); err != nil {
		return storageErr("create product", err)
	}
	return nil
}

// Restock adds amount units to the product's stock.
func (s *CatalogService) Restock(ctx context.Context, id uuid.UUID, amount int) (*models.Product, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("restock amount must be positive: %w", ErrValidation)
	}
	if err := s.Repo.IncrementStock(ctx, id, amount); err != nil {
		return nil, lookupErr("restock", err, "product")
	}
	return s.GetProduct(ctx, id)
}
