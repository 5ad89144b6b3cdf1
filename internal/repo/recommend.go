package repo

import (
	"context"

	"github.com/google/uuid"

	"github.com/Skotchmaster/storefront/internal/models"
)

// PurchasedCategories lists the distinct live categories of products the user
// has ordered. Lines whose product no longer exists are skipped.
func (r *GormRepo) PurchasedCategories(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var categories []string
	err := r.DB.WithContext(ctx).
		Model(&models.OrderLine{}).
		Distinct("products.category").
		Joins("JOIN orders ON orders.id = order_lines.order_id").
		Joins("JOIN products ON products.id = order_lines.product_id").
		Where("orders.user_id = ? AND products.category <> ''", userID).
		Order("products.category ASC").
		Pluck("products.category", &categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *GormRepo) InStockByCategories(ctx context.Context, categories []string, limit int) ([]models.Product, error) {
	var items []models.Product
	if len(categories) == 0 || limit <= 0 {
		return items, nil
	}
	err := r.DB.WithContext(ctx).
		Where("stock > 0 AND category IN ?", categories).
		Order("rating DESC, created_at DESC, id ASC").
		Limit(limit).
		Find(&items).Error
	return items, err
}

func (r *GormRepo) PopularInStock(ctx context.Context, exclude []uuid.UUID, limit int) ([]models.Product, error) {
	var items []models.Product
	if limit <= 0 {
		return items, nil
	}
	q := r.DB.WithContext(ctx).Where("stock > 0")
	if len(exclude) > 0 {
		q = q.Where("id NOT IN ?", exclude)
	}
	err := q.Order("rating DESC, review_count DESC, id ASC").Limit(limit).Find(&items).Error
	return items, err
}
