package cartControllers

import (
	"net/http"

	"github.com/Iyedchebbi/SofaSteam2026/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AddToCartInput struct {
	ServiceID uint `json:"service_id" binding:"required"`
}

type SetQuantityInput struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// POST /user/cart
// Add-or-increment: an existing (user, service) line gains quantity 1, a new
// pairing inserts a line with quantity 1. Never two lines for one pairing.
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var input AddToCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var service models.Service
		if err := db.First(&service, "id = ?", input.ServiceID).Error; err != nil {
			status := http.StatusInternalServerError
			errMsg := "Failed to validate service"
			if err == gorm.ErrRecordNotFound {
				status = http.StatusBadRequest
				errMsg = "Service does not exist"
			}
			c.JSON(status, gin.H{"error": errMsg})
			return
		}

		var item models.CartItem
		err := db.Where("user_id = ? AND service_id = ?", userID, input.ServiceID).First(&item).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				newItem := models.CartItem{
					UserID:    userID,
					ServiceID: service.ID,
					Quantity:  1,
				}
				if err := db.Create(&newItem).Error; err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add service to cart"})
					return
				}
				newItem.Service = service
				c.JSON(http.StatusCreated, newItem)
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart line"})
			return
		}

		item.Quantity++
		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart line"})
			return
		}
		item.Service = service

		c.JSON(http.StatusOK, item)
	}
}

// PUT /user/cart/:item_id
// A quantity of zero or less deletes the line rather than storing it.
func SetQuantity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)
		itemID := c.Param("item_id")

		var input SetQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var item models.CartItem
		if err := db.Where("id = ? AND user_id = ?", itemID, userID).First(&item).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart line not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart line"})
			return
		}

		if *input.Quantity <= 0 {
			if err := db.Delete(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove cart line"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"message": "Cart line removed"})
			return
		}

		item.Quantity = *input.Quantity
		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart line"})
			return
		}

		c.JSON(http.StatusOK, item)
	}
}

// DELETE /user/cart/:item_id
func DeleteCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)
		itemID := c.Param("item_id")

		result := db.Where("id = ? AND user_id = ?", itemID, userID).Delete(&models.CartItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete cart line"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart line not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart line deleted"})
	}
}

// DELETE /user/cart
func ClearUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		if err := db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /user/cart
// Lines come back joined with their service, oldest first — this governs
// display order in the drawer.
func GetUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var items []models.CartItem
		if err := db.Preload("Service").
			Where("user_id = ?", userID).
			Order("created_at ASC").
			Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"items": items,
			"total": models.CartTotal(items),
		})
	}
}
