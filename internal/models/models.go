package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID          uuid.UUID       `gorm:"primaryKey"                 json:"id"`
	Name        string          `gorm:"not null"                   json:"name"`
	Description string          `gorm:"not null;default:''"        json:"description"`
	Image       string          `gorm:"not null;default:''"        json:"image"`
	Category    string          `gorm:"index;not null"             json:"category"`
	Price       decimal.Decimal `gorm:"type:numeric;not null"      json:"price"`
	Stock       int             `gorm:"not null;check:stock >= 0"  json:"stock"`
	Rating      float64         `gorm:"not null;default:0"         json:"rating"`
	ReviewCount int             `gorm:"not null;default:0"         json:"review_count"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

type Cart struct {
	ID        uuid.UUID  `gorm:"primaryKey"             json:"id"`
	UserID    uuid.UUID  `gorm:"uniqueIndex;not null"   json:"user_id"`
	Items     []CartItem `gorm:"constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (c *Cart) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type CartItem struct {
	ID        uuid.UUID `gorm:"primaryKey"                              json:"id"`
	CartID    uuid.UUID `gorm:"uniqueIndex:idx_cart_product;not null"   json:"cart_id"`
	ProductID uuid.UUID `gorm:"uniqueIndex:idx_cart_product;not null"   json:"product_id"`
	Quantity  int       `gorm:"not null;check:quantity > 0"             json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *CartItem) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (CartItem) TableName() string {
	return "cart_items"
}
