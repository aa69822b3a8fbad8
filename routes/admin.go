package routes

import (
	catalogControllers "github.com/Iyedchebbi/SofaSteam2026/controllers/catalog"
	orderControllers "github.com/Iyedchebbi/SofaSteam2026/controllers/order"
	userControllers "github.com/Iyedchebbi/SofaSteam2026/controllers/user"
	"github.com/Iyedchebbi/SofaSteam2026/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all “/admin/*” endpoints. Requires a valid JWT
// plus the admin role flag on the caller's profile.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, hub *orderControllers.Hub) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireAdmin(db))
	{
		// ─────────── User Management ───────────
		adminGroup.GET("/users", userControllers.GetAllProfiles(db))

		// ─────────── Service Management ───────────
		serviceAdmin := adminGroup.Group("/services")
		{
			serviceAdmin.POST("", catalogControllers.CreateService(db))
			serviceAdmin.PUT("/:id", catalogControllers.UpdateService(db))
			serviceAdmin.DELETE("/:id", catalogControllers.DeleteService(db))
			serviceAdmin.POST("/import-excel", catalogControllers.ImportServicesFromExcel(db))
			serviceAdmin.GET("/export-excel", catalogControllers.ExportServicesToExcel(db))
		}

		// ─────────── Booking Reconciliation ───────────
		bookingAdmin := adminGroup.Group("/bookings")
		{
			bookingAdmin.GET("", orderControllers.GetAllBookingsHandler(db))
			bookingAdmin.PUT("/:orderID/status", orderControllers.UpdateBookingStatusHandler(db, hub))
			bookingAdmin.DELETE("/:orderID", orderControllers.AdminDeleteBookingHandler(db))
			bookingAdmin.DELETE("", orderControllers.AdminDeleteAllBookingsHandler(db))
			bookingAdmin.GET("/export-excel", orderControllers.ExportBookingsToExcel(db))
		}
	}
}
