package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"food-ordering-api/config"
	"food-ordering-api/middleware"
	"food-ordering-api/models"
	"food-ordering-api/policy"
)

// ListRestaurants returns active restaurants visible to the caller's region
func ListRestaurants(c *gin.Context) {
	identity := middleware.GetIdentity(c)
	scope := policy.ScopeFor(identity)

	var restaurants []models.Restaurant
	query := scope.Apply(config.DB).Where("is_active = ?", true)

	if cuisine := c.Query("cuisine"); cuisine != "" {
		query = query.Where("cuisine LIKE ?", "%"+cuisine+"%")
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	query.Order("created_at desc").Find(&restaurants)
	c.JSON(http.StatusOK, gin.H{
		"count":       len(restaurants),
		"restaurants": restaurants,
	})
}

// GetRestaurant returns a single restaurant. A non-admin asking for a
// restaurant outside their country gets 403, not 404 — existence is not
// hidden across regions.
func GetRestaurant(c *gin.Context) {
	identity := middleware.GetIdentity(c)

	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	if !policy.ScopeFor(identity).Allows(restaurant.Country) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to access this restaurant"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

// GetMenu returns a restaurant's available menu items, same access check
// as GetRestaurant
func GetMenu(c *gin.Context) {
	identity := middleware.GetIdentity(c)
	restaurantID := c.Param("id")

	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, restaurantID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	if !policy.ScopeFor(identity).Allows(restaurant.Country) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to access this restaurant"})
		return
	}

	var items []models.MenuItem
	query := config.DB.Where("restaurant_id = ? AND is_available = ?", restaurantID, true)

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if isVeg := c.Query("is_veg"); isVeg == "true" {
		query = query.Where("is_veg = ?", true)
	}
	query.Find(&items)

	c.JSON(http.StatusOK, gin.H{
		"restaurant": restaurant.Name,
		"count":      len(items),
		"menu":       items,
	})
}

// GetStateMachineInfo returns the order lifecycle for informational purposes
func GetStateMachineInfo(c *gin.Context) {
	info := []gin.H{
		{"from": "pending", "to": "confirmed", "trigger": "checkout"},
		{"from": "pending", "to": "cancelled", "trigger": "cancel"},
		{"from": "confirmed", "to": "cancelled", "trigger": "cancel"},
		{"from": "preparing", "to": "cancelled", "trigger": "cancel"},
		{"from": "confirmed", "to": "preparing", "trigger": "fulfillment (external)"},
		{"from": "preparing", "to": "delivered", "trigger": "fulfillment (external)"},
	}
	c.JSON(http.StatusOK, gin.H{
		"state_machine":   info,
		"terminal_states": []string{"delivered", "cancelled"},
		"description":     "Food Ordering Lifecycle State Machine",
	})
}
