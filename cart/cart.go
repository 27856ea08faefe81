// Package cart holds the client-tier shopping cart. It is pure in-memory
// state with one invariant: every line in a non-empty cart belongs to the
// same restaurant. No server calls happen here.
package cart

import (
	"github.com/shopspring/decimal"

	"food-ordering-api/models"
)

// Line is one cart entry, a snapshot of the menu item at add time
type Line struct {
	MenuItemID uint            `json:"menu_item_id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
}

type Cart struct {
	Items []Line `json:"items"`
	// RestaurantID is zero when the cart is empty and no restaurant is locked in
	RestaurantID   uint   `json:"restaurant_id"`
	RestaurantName string `json:"restaurant_name"`
}

func New() *Cart {
	return &Cart{}
}

// AddItem adds one unit of a menu item. Adding from a different restaurant
// than the cart already holds is rejected and leaves the cart unchanged.
// The first successful add locks the cart to that restaurant.
func (c *Cart) AddItem(item models.MenuItem, restaurant models.Restaurant) bool {
	if len(c.Items) > 0 && c.RestaurantID != restaurant.ID {
		return false
	}
	c.RestaurantID = restaurant.ID
	c.RestaurantName = restaurant.Name
	for i := range c.Items {
		if c.Items[i].MenuItemID == item.ID {
			c.Items[i].Quantity++
			return true
		}
	}
	c.Items = append(c.Items, Line{
		MenuItemID: item.ID,
		Name:       item.Name,
		Price:      item.Price,
		Quantity:   1,
	})
	return true
}

// RemoveItem drops a line. When the last line goes, the restaurant
// association is cleared so a new restaurant can be chosen.
func (c *Cart) RemoveItem(menuItemID uint) {
	kept := c.Items[:0]
	for _, line := range c.Items {
		if line.MenuItemID != menuItemID {
			kept = append(kept, line)
		}
	}
	c.Items = kept
	if len(c.Items) == 0 {
		c.RestaurantID = 0
		c.RestaurantName = ""
	}
}

// UpdateQuantity sets a line's quantity; zero or negative removes the line.
func (c *Cart) UpdateQuantity(menuItemID uint, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(menuItemID)
		return
	}
	for i := range c.Items {
		if c.Items[i].MenuItemID == menuItemID {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

// Total sums price times quantity over all lines
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.Items {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// ItemCount returns the number of units across all lines
func (c *Cart) ItemCount() int {
	count := 0
	for _, line := range c.Items {
		count += line.Quantity
	}
	return count
}

// Clear empties the cart and releases the restaurant lock
func (c *Cart) Clear() {
	c.Items = nil
	c.RestaurantID = 0
	c.RestaurantName = ""
}
