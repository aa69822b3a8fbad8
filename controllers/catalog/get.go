package catalogControllers

import (
	"net/http"
	"strconv"

	"github.com/Iyedchebbi/SofaSteam2026/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetServices returns the full catalog ordered by id ascending. The optional
// ?category= query is validated against the closed category set; "all" and
// empty are the identity filter.
func GetServices(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.Query("category")
		if category != "" && category != "all" {
			if _, err := models.ParseServiceCategory(category); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category: " + category})
				return
			}
		}

		var services []models.Service
		if err := db.Order("id ASC").Find(&services).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch services"})
			return
		}

		c.JSON(http.StatusOK, FilterByCategory(services, category))
	}
}

// GetServiceByID returns a single service.
// URL param: /services/:id
func GetServiceByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		idParam := c.Param("id")
		id, err := strconv.Atoi(idParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service ID"})
			return
		}

		var service models.Service
		if err := db.First(&service, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve service"})
			}
			return
		}
		c.JSON(http.StatusOK, service)
	}
}
