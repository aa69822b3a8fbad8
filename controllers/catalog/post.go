package catalogControllers

import (
	"net/http"
	"strconv"

	"github.com/Iyedchebbi/SofaSteam2026/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateService creates a new service offering with an image upload.
// Admin only. Category is validated against the closed set at write time so
// unknown categories can never reach the catalog.
func CreateService(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Required fields
		nameEN := c.PostForm("name_en")
		priceStr := c.PostForm("price")
		categoryStr := c.PostForm("category")
		if nameEN == "" || priceStr == "" || categoryStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name_en, price, and category are required"})
			return
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}

		category, err := models.ParseServiceCategory(categoryStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category: " + categoryStr})
			return
		}

		promotion := 0
		if promoStr := c.PostForm("promotion"); promoStr != "" {
			promotion, err = strconv.Atoi(promoStr)
			if err != nil || promotion < 0 || promotion > 100 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Promotion must be between 0 and 100"})
				return
			}
		}

		// Image upload
		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image is required"})
			return
		}
		imageURL, err := SaveImage(c, file, "services")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		newService := models.Service{
			NameEN:        nameEN,
			NameRO:        c.PostForm("name_ro"),
			DescriptionEN: c.PostForm("description_en"),
			DescriptionRO: c.PostForm("description_ro"),
			Price:         price,
			Category:      category,
			Image:         imageURL,
			Promotion:     promotion,
		}

		if err := db.Create(&newService).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create service"})
			return
		}

		c.JSON(http.StatusCreated, newService)
	}
}
