package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/repo"
)

const (
	DefaultRecommendLimit = 8
	MaxRecommendLimit     = 50
)

type RecommendationService struct {
	Repo *repo.GormRepo
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultRecommendLimit
	}
	if limit > MaxRecommendLimit {
		return MaxRecommendLimit
	}
	return limit
}

// Recommend ranks in-stock products from the categories the user bought
// before, then fills the remaining slots with the most popular in-stock
// products not picked yet. Previously purchased products may reappear.
func (s *RecommendationService) Recommend(ctx context.Context, userID uuid.UUID, limit int) ([]models.Product, error) {
	limit = clampLimit(limit)

	categories, err := s.Repo.PurchasedCategories(ctx, userID)
	if err != nil {
		return nil, storageErr("recommend", err)
	}

	picked, err := s.Repo.InStockByCategories(ctx, categories, limit)
	if err != nil {
		return nil, storageErr("recommend", err)
	}

	out := make([]models.Product, 0, limit)
	seen := make(map[uuid.UUID]struct{}, limit)
	add := func(items []models.Product) {
		for _, p := range items {
			if len(out) == limit {
				return
			}
			if _, dup := seen[p.ID]; dup {
				continue
			}
			seen[p.ID] = struct{}{}
			out = append(out, p)
		}
	}
	add(picked)

	if len(out) < limit {
		exclude := make([]uuid.UUID, 0, len(out))
		for _, p := range out {
			exclude = append(exclude, p.ID)
		}
		backfill, err := s.Repo.PopularInStock(ctx, exclude, limit-len(out))
		if err != nil {
			return nil, storageErr("recommend backfill", err)
		}
		add(backfill)
	}

	return out, nil
}

func (s *RecommendationService) Popular(ctx context.Context, limit int) ([]models.Product, error) {
	items, err := s.Repo.PopularInStock(ctx, nil, clampLimit(limit))
	if err != nil {
		return nil, storageErr("popular", err)
	}
	return items, nil
}
