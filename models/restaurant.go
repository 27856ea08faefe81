package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Restaurant struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Name         string     `json:"name" gorm:"not null"`
	Description  string     `json:"description"`
	Country      Country    `json:"country" gorm:"not null;index"`
	Cuisine      string     `json:"cuisine"`
	Rating       float64    `json:"rating" gorm:"default:4.0"`
	DeliveryTime string     `json:"delivery_time" gorm:"default:'30-40 mins'"`
	IsActive     bool       `json:"is_active" gorm:"default:true"`
	MenuItems    []MenuItem `json:"menu_items,omitempty" gorm:"foreignKey:RestaurantID"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// MenuCategory enumerates the menu sections a dish can belong to
type MenuCategory string

const (
	CategoryAppetizer  MenuCategory = "Appetizer"
	CategoryMainCourse MenuCategory = "Main Course"
	CategoryDessert    MenuCategory = "Dessert"
	CategoryBeverage   MenuCategory = "Beverage"
	CategorySides      MenuCategory = "Sides"
)

type MenuItem struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	RestaurantID uint            `json:"restaurant_id" gorm:"not null;index"`
	Name         string          `json:"name" gorm:"not null"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Category     MenuCategory    `json:"category"`
	IsVeg        bool            `json:"is_veg" gorm:"default:true"`
	IsAvailable  bool            `json:"is_available" gorm:"default:true"`
	// Country mirrors the owning restaurant's country; kept denormalized so
	// region scoping works without a join.
	Country   Country   `json:"country" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
