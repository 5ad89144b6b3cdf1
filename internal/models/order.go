package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

type PaymentMethod string

const (
	PaymentCard   PaymentMethod = "card"
	PaymentPayPal PaymentMethod = "paypal"
	PaymentCash   PaymentMethod = "cash"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCard, PaymentPayPal, PaymentCash:
		return true
	}
	return false
}

const PaymentStatusCompleted = "completed"

type ShippingAddress struct {
	FullName   string `gorm:"not null" json:"full_name"`
	Address    string `gorm:"not null" json:"address"`
	City       string `gorm:"not null" json:"city"`
	PostalCode string `gorm:"not null" json:"postal_code"`
	Country    string `gorm:"not null" json:"country"`
}

type PaymentResult struct {
	ReferenceID  string     `json:"id,omitempty"`
	Status       string     `json:"status,omitempty"`
	UpdateTime   *time.Time `json:"update_time,omitempty"`
	EmailAddress string     `json:"email_address,omitempty"`
}

type Order struct {
	ID              uuid.UUID       `gorm:"primaryKey"                                     json:"id"`
	UserID          uuid.UUID       `gorm:"index;not null"                                 json:"user_id"`
	Lines           []OrderLine     `gorm:"constraint:OnDelete:CASCADE"                    json:"order_items"`
	ShippingAddress ShippingAddress `gorm:"embedded;embeddedPrefix:shipping_"              json:"shipping_address"`
	PaymentMethod   PaymentMethod   `gorm:"not null"                                       json:"payment_method"`
	ItemsPrice      decimal.Decimal `gorm:"type:numeric;not null"                          json:"items_price"`
	ShippingPrice   decimal.Decimal `gorm:"type:numeric;not null"                          json:"shipping_price"`
	TaxPrice        decimal.Decimal `gorm:"type:numeric;not null"                          json:"tax_price"`
	TotalPrice      decimal.Decimal `gorm:"type:numeric;not null"                          json:"total_price"`
	Status          OrderStatus     `gorm:"not null;default:pending"                       json:"status"`
	IsPaid          bool            `gorm:"not null;default:false"                         json:"is_paid"`
	PaidAt          *time.Time      `json:"paid_at,omitempty"`
	PaymentResult   PaymentResult   `gorm:"embedded;embeddedPrefix:payment_"               json:"payment_result"`
	CreatedAt       time.Time       `gorm:"index"                                          json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// OrderLine is a frozen copy of the product taken at checkout. It is never
// re-joined with the live catalog.
type OrderLine struct {
	ID        uuid.UUID       `gorm:"primaryKey"                json:"id"`
	OrderID   uuid.UUID       `gorm:"index;not null"            json:"order_id"`
	Position  int             `gorm:"not null"                  json:"-"`
	ProductID uuid.UUID       `gorm:"index;not null"            json:"product"`
	Name      string          `gorm:"not null"                  json:"name"`
	UnitPrice decimal.Decimal `gorm:"type:numeric;not null"     json:"price"`
	Quantity  int             `gorm:"not null;check:quantity > 0" json:"quantity"`
	Image     string          `gorm:"not null;default:''"       json:"image"`
}

func (l *OrderLine) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

func (OrderLine) TableName() string {
	return "order_lines"
}
