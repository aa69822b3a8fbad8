package catalogControllers

import (
	"net/http"

	"github.com/Iyedchebbi/SofaSteam2026/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DeleteService retires a service from the catalog. Soft delete: existing
// order line items keep referencing the row for historical rendering. Pending
// cart lines go with it — a retired service must not be checkable-out.
func DeleteService(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Service ID is required"})
			return
		}

		var affected int64
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("service_id = ?", id).Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
			result := tx.Delete(&models.Service{}, "id = ?", id)
			if result.Error != nil {
				return result.Error
			}
			affected = result.RowsAffected
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete service"})
			return
		}
		if affected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
	}
}
