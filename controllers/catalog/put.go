package catalogControllers

import (
	"net/http"
	"strconv"

	"github.com/Iyedchebbi/SofaSteam2026/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UpdateService updates an existing service by ID. Accepts the same fields as
// CreateService and an optional "image" file. Price edits never touch
// historical orders — those carry their own frozen snapshots.
func UpdateService(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := c.Param("id")
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service ID"})
			return
		}

		var service models.Service
		if err := db.First(&service, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
			return
		}

		if v := c.PostForm("name_en"); v != "" {
			service.NameEN = v
		}
		if v := c.PostForm("name_ro"); v != "" {
			service.NameRO = v
		}
		if v := c.PostForm("description_en"); v != "" {
			service.DescriptionEN = v
		}
		if v := c.PostForm("description_ro"); v != "" {
			service.DescriptionRO = v
		}
		if v := c.PostForm("price"); v != "" {
			price, err := strconv.ParseFloat(v, 64)
			if err != nil || price < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
				return
			}
			service.Price = price
		}
		if v := c.PostForm("category"); v != "" {
			category, err := models.ParseServiceCategory(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category: " + v})
				return
			}
			service.Category = category
		}
		if v := c.PostForm("promotion"); v != "" {
			promotion, err := strconv.Atoi(v)
			if err != nil || promotion < 0 || promotion > 100 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Promotion must be between 0 and 100"})
				return
			}
			service.Promotion = promotion
		}

		// Optional image replacement
		if file, err := c.FormFile("image"); err == nil {
			imageURL, err := SaveImage(c, file, "services")
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			service.Image = imageURL
		}

		if err := db.Save(&service).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update service"})
			return
		}

		c.JSON(http.StatusOK, service)
	}
}
