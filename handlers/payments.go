package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"food-ordering-api/config"
	"food-ordering-api/middleware"
	"food-ordering-api/models"
)

// ListPaymentMethods returns the caller's stored payment methods, card
// numbers masked
func ListPaymentMethods(c *gin.Context) {
	identity := middleware.GetIdentity(c)
	var methods []models.PaymentMethod
	config.DB.Where("user_id = ?", identity.UserID).Order("created_at desc").Find(&methods)
	c.JSON(http.StatusOK, gin.H{"count": len(methods), "payment_methods": methods})
}

type PaymentMethodRequest struct {
	Type           models.PaymentType `json:"type" binding:"required,oneof=credit_card debit_card upi paypal net_banking"`
	CardNumber     string             `json:"card_number"`
	CardHolderName string             `json:"card_holder_name"`
	ExpiryDate     string             `json:"expiry_date"`
	UPIID          string             `json:"upi_id"`
	IsDefault      bool               `json:"is_default"`
}

// AddPaymentMethod stores a new payment descriptor (admin only). Setting it
// as default clears the caller's other defaults in the same transaction, so
// at most one default is ever visible.
func AddPaymentMethod(c *gin.Context) {
	identity := middleware.GetIdentity(c)

	var req PaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	method := models.PaymentMethod{
		UserID:         identity.UserID,
		Type:           req.Type,
		CardNumber:     req.CardNumber,
		CardHolderName: req.CardHolderName,
		ExpiryDate:     req.ExpiryDate,
		UPIID:          req.UPIID,
		IsDefault:      req.IsDefault,
		Country:        identity.Country,
	}

	details, err := method.Details()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := details.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if method.IsDefault {
			if err := tx.Model(&models.PaymentMethod{}).
				Where("user_id = ?", identity.UserID).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(&method).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add payment method"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Payment method added", "payment_method": method})
}

// UpdatePaymentMethod applies a partial update to an owned payment method
// (admin only)
func UpdatePaymentMethod(c *gin.Context) {
	identity := middleware.GetIdentity(c)

	var method models.PaymentMethod
	if err := config.DB.First(&method, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment method not found"})
		return
	}
	if method.UserID != identity.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to update this payment method"})
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Only allow safe fields
	allowed := map[string]bool{
		"type": true, "card_number": true, "card_holder_name": true,
		"expiry_date": true, "upi_id": true, "is_default": true,
	}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}

	invalid := errors.New("invalid payment method fields")
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if isDefault, ok := update["is_default"].(bool); ok && isDefault {
			if err := tx.Model(&models.PaymentMethod{}).
				Where("user_id = ? AND id <> ?", identity.UserID, method.ID).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		if err := tx.Model(&method).Updates(update).Error; err != nil {
			return err
		}
		if err := tx.First(&method, method.ID).Error; err != nil {
			return err
		}
		// Re-check the typed variant after the update; rolls back on failure
		details, err := method.Details()
		if err != nil {
			return invalid
		}
		if err := details.Validate(); err != nil {
			return invalid
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, invalid) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Updated payment method is missing required fields for its type"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment method"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payment method updated", "payment_method": method})
}

// DeletePaymentMethod hard-deletes an owned payment method (admin only)
func DeletePaymentMethod(c *gin.Context) {
	identity := middleware.GetIdentity(c)

	var method models.PaymentMethod
	if err := config.DB.First(&method, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment method not found"})
		return
	}
	if method.UserID != identity.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to delete this payment method"})
		return
	}

	if err := config.DB.Delete(&method).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete payment method"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment method deleted"})
}
