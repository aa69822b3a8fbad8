package catalogControllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Iyedchebbi/SofaSteam2026/models"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// ImportServicesFromExcel bulk-creates or updates service offerings from an
// uploaded sheet. Columns: ID, NameEN, NameRO, DescriptionEN, DescriptionRO,
// Price, Category, Promotion, Image. Rows with an unknown category are
// skipped, not defaulted — the category set is closed.
func ImportServicesFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			idStr := get(0)
			nameEN := get(1)
			price, priceErr := strconv.ParseFloat(get(5), 64)
			category, catErr := models.ParseServiceCategory(get(6))
			promotion, _ := strconv.Atoi(get(7))

			if nameEN == "" || priceErr != nil || catErr != nil || promotion < 0 || promotion > 100 {
				skippedCount++
				continue
			}

			service := models.Service{
				NameEN:        nameEN,
				NameRO:        get(2),
				DescriptionEN: get(3),
				DescriptionRO: get(4),
				Price:         price,
				Category:      category,
				Promotion:     promotion,
				Image:         get(8),
			}

			if idStr != "" {
				if id, err := strconv.Atoi(idStr); err == nil {
					var existing models.Service
					if err := db.First(&existing, id).Error; err == nil {
						service.ID = existing.ID
						service.CreatedAt = existing.CreatedAt
						if err := db.Save(&service).Error; err == nil {
							updatedCount++
						} else {
							skippedCount++
						}
						continue
					}
				}
			}

			if err := db.Create(&service).Error; err == nil {
				createdCount++
			} else {
				skippedCount++
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"message":       "Import completed",
			"created_count": createdCount,
			"updated_count": updatedCount,
			"skipped_count": skippedCount,
		})
	}
}
