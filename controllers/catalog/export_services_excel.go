package catalogControllers

import (
	"net/http"

	"github.com/Iyedchebbi/SofaSteam2026/models"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

func ExportServicesToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var services []models.Service
		if err := db.Order("id ASC").Find(&services).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch services"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Services")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "NameEN", "NameRO", "DescriptionEN", "DescriptionRO",
			"Price", "Category", "Promotion", "Image", "CreatedAt", "UpdatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, s := range services {
			row := sheet.AddRow()
			row.AddCell().SetValue(s.ID)
			row.AddCell().SetValue(s.NameEN)
			row.AddCell().SetValue(s.NameRO)
			row.AddCell().SetValue(s.DescriptionEN)
			row.AddCell().SetValue(s.DescriptionRO)
			row.AddCell().SetValue(s.Price)
			row.AddCell().SetValue(string(s.Category))
			row.AddCell().SetValue(s.Promotion)
			row.AddCell().SetValue(s.Image)
			row.AddCell().SetValue(s.CreatedAt.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(s.UpdatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=services.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
