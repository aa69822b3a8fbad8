package orderControllers

import (
	"net/http"
	"strings"

	"github.com/Iyedchebbi/SofaSteam2026/models"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// GET /admin/bookings/export-excel
func ExportBookingsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Items").
			Preload("Items.Service").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Bookings")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "UserID", "ClientName", "ClientPhone", "Address",
			"ScheduledDate", "Status", "TotalAmount", "Services", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range orders {
			row := sheet.AddRow()
			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(o.UserID)
			row.AddCell().SetValue(o.ClientName)
			row.AddCell().SetValue(o.ClientPhone)
			row.AddCell().SetValue(o.ShippingAddress)
			if o.ScheduledDate != nil {
				row.AddCell().SetValue(o.ScheduledDate.Format("2006-01-02 15:04"))
			} else {
				row.AddCell().SetValue("")
			}
			row.AddCell().SetValue(string(o.Status))
			row.AddCell().SetValue(o.TotalAmount)

			var lines []string
			for _, item := range o.Items {
				lines = append(lines, item.Service.NameEN)
			}
			row.AddCell().SetValue(strings.Join(lines, ", "))

			row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=bookings.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
