package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Skotchmaster/storefront/internal/models"
)

func orderedLines(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

func (r *GormRepo) CreateOrder(ctx context.Context, order *models.Order) error {
	return r.DB.WithContext(ctx).Create(order).Error
}

func (r *GormRepo) FindOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := r.DB.WithContext(ctx).Preload("Lines", orderedLines).Where("id = ?", id).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormRepo) ListOrders(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	var orders []models.Order
	if err := r.DB.WithContext(ctx).
		Preload("Lines", orderedLines).
		Where("user_id = ?", userID).
		Order("created_at DESC, id ASC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// SaveOrderPayment writes only the payment columns of order.
func (r *GormRepo) SaveOrderPayment(ctx context.Context, order *models.Order) error {
	pr := order.PaymentResult
	res := r.DB.WithContext(ctx).Model(&models.Order{}).Where("id = ?", order.ID).Updates(map[string]any{
		"is_paid":               order.IsPaid,
		"paid_at":               order.PaidAt,
		"payment_reference_id":  pr.ReferenceID,
		"payment_status":        pr.Status,
		"payment_update_time":   pr.UpdateTime,
		"payment_email_address": pr.EmailAddress,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
