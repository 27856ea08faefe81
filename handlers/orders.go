package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"food-ordering-api/config"
	"food-ordering-api/middleware"
	"food-ordering-api/models"
	"food-ordering-api/policy"
	"food-ordering-api/statemachine"
)

type CreateOrderRequest struct {
	RestaurantID    uint   `json:"restaurant_id" binding:"required"`
	DeliveryAddress string `json:"delivery_address" binding:"required"`
	Items           []struct {
		MenuItemID uint `json:"menu_item_id" binding:"required"`
		Quantity   int  `json:"quantity" binding:"required,min=1"`
	} `json:"items" binding:"required,min=1"`
}

// CreateOrder creates a pending order from cart contents. Every item is
// validated before anything is written, so a bad item never leaves a
// partial order behind.
func CreateOrder(c *gin.Context) {
	identity := middleware.GetIdentity(c)

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, req.RestaurantID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	if !policy.ScopeFor(identity).Allows(restaurant.Country) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to order from this restaurant"})
		return
	}
	if !restaurant.IsActive {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Restaurant is not accepting orders"})
		return
	}

	// Validate all items first, then write
	var orderItems []models.OrderItem
	total := decimal.Zero

	for _, reqItem := range req.Items {
		var menuItem models.MenuItem
		if err := config.DB.First(&menuItem, reqItem.MenuItemID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Menu item %d is not available", reqItem.MenuItemID)})
			return
		}
		if !menuItem.IsAvailable {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Menu item %d is not available", reqItem.MenuItemID)})
			return
		}
		if menuItem.RestaurantID != req.RestaurantID {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Menu item %d does not belong to this restaurant", reqItem.MenuItemID)})
			return
		}
		orderItems = append(orderItems, models.OrderItem{
			MenuItemID: menuItem.ID,
			Name:       menuItem.Name,
			Price:      menuItem.Price,
			Quantity:   reqItem.Quantity,
		})
		total = total.Add(menuItem.Price.Mul(decimal.NewFromInt(int64(reqItem.Quantity))))
	}

	order := models.Order{
		Reference:       uuid.NewString(),
		UserID:          identity.UserID,
		RestaurantID:    restaurant.ID,
		Items:           orderItems,
		TotalAmount:     total,
		Status:          models.StatusPending,
		PaymentStatus:   models.PaymentPending,
		Country:         restaurant.Country,
		DeliveryAddress: req.DeliveryAddress,
	}
	if err := config.DB.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	config.DB.Preload("Items").Preload("Restaurant").First(&order, order.ID)
	c.JSON(http.StatusCreated, gin.H{"message": "Order created successfully", "order": order})
}

// ListOrders returns the caller's orders, newest first, region-scoped for
// non-admins
func ListOrders(c *gin.Context) {
	identity := middleware.GetIdentity(c)

	var orders []models.Order
	query := policy.ScopeFor(identity).Apply(
		config.DB.Preload("Items").Preload("Restaurant").Preload("PaymentMethod"),
	).Where("user_id = ?", identity.UserID)

	query.Order("created_at desc").Find(&orders)
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetOrder returns a single order owned by the caller
func GetOrder(c *gin.Context) {
	identity := middleware.GetIdentity(c)

	var order models.Order
	if err := config.DB.
		Preload("Items").
		Preload("Restaurant").
		Preload("PaymentMethod").
		First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.UserID != identity.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to access this order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

type CheckoutRequest struct {
	PaymentMethodID uint `json:"payment_method_id" binding:"required"`
}

// Checkout records payment against an order and confirms it. The payment
// method is a descriptor, not a live charge — no validity or expiry check
// happens here, and no status precondition is enforced before the
// transition.
func Checkout(c *gin.Context) {
	identity := middleware.GetIdentity(c)

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.UserID != identity.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to checkout this order"})
		return
	}

	var paymentMethod models.PaymentMethod
	if err := config.DB.First(&paymentMethod, req.PaymentMethodID).Error; err != nil || paymentMethod.UserID != identity.UserID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment method"})
		return
	}

	order.PaymentMethodID = &paymentMethod.ID
	order.PaymentStatus = models.PaymentPaid
	order.Status = models.StatusConfirmed
	if err := config.DB.Save(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to checkout order"})
		return
	}

	config.DB.Preload("Items").Preload("Restaurant").Preload("PaymentMethod").First(&order, order.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Order confirmed and paid", "order": order})
}

// CancelOrder cancels a non-terminal order; a paid order is flagged
// refunded (status only, no real refund happens)
func CancelOrder(c *gin.Context) {
	identity := middleware.GetIdentity(c)

	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.UserID != identity.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to cancel this order"})
		return
	}

	if err := statemachine.CanCancel(order.Status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order.Status = models.StatusCancelled
	if order.PaymentStatus == models.PaymentPaid {
		order.PaymentStatus = models.PaymentRefunded
	}
	if err := config.DB.Save(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel order"})
		return
	}

	config.DB.Preload("Items").Preload("Restaurant").Preload("PaymentMethod").First(&order, order.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Order cancelled successfully", "order": order})
}
