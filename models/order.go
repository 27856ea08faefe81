package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents all possible states of an order
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// PaymentStatus tracks whether an order has been paid for or refunded
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

type Order struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	Reference       string          `json:"reference" gorm:"uniqueIndex;not null"`
	UserID          uint            `json:"user_id" gorm:"not null;index"`
	RestaurantID    uint            `json:"restaurant_id" gorm:"not null"`
	Restaurant      Restaurant      `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID"`
	Items           []OrderItem     `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	TotalAmount     decimal.Decimal `json:"total_amount" gorm:"type:decimal(10,2);not null"`
	Status          OrderStatus     `json:"status" gorm:"not null;default:'pending'"`
	PaymentMethodID *uint           `json:"payment_method_id"`
	PaymentMethod   *PaymentMethod  `json:"payment_method,omitempty" gorm:"foreignKey:PaymentMethodID"`
	PaymentStatus   PaymentStatus   `json:"payment_status" gorm:"not null;default:'pending'"`
	// Country is fixed from the restaurant at creation and never changes.
	Country         Country   `json:"country" gorm:"not null;index"`
	DeliveryAddress string    `json:"delivery_address" gorm:"not null"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type OrderItem struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	OrderID    uint            `json:"order_id" gorm:"not null;index"`
	MenuItemID uint            `json:"menu_item_id" gorm:"not null"`
	Name       string          `json:"name"`                                     // snapshot name at time of order
	Price      decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"` // snapshot price at time of order
	Quantity   int             `json:"quantity" gorm:"not null"`
}

// Terminal reports whether the order can no longer change status.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}
