package routes

import (
	cartControllers "github.com/Iyedchebbi/SofaSteam2026/controllers/cart"
	orderControllers "github.com/Iyedchebbi/SofaSteam2026/controllers/order"
	userControllers "github.com/Iyedchebbi/SofaSteam2026/controllers/user"
	"github.com/Iyedchebbi/SofaSteam2026/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupUserRoutes registers all “/user/*” endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, hub *orderControllers.Hub) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Profile ────────────────
		userGroup.GET("/profile", userControllers.GetProfile(db))
		userGroup.PUT("/profile", userControllers.UpdateProfile(db))
		userGroup.POST("/profile/avatar", userControllers.UploadAvatar(db))

		// ──────────────── Booking List (Cart) ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetUserCart(db))
			cartGroup.POST("", cartControllers.AddToCart(db))
			cartGroup.PUT("/:item_id", cartControllers.SetQuantity(db))
			cartGroup.DELETE("/:item_id", cartControllers.DeleteCartItem(db))
			cartGroup.DELETE("", cartControllers.ClearUserCart(db))
		}

		// ──────────────── Bookings ────────────────
		bookings := userGroup.Group("/bookings")
		{
			bookings.POST("", orderControllers.PlaceBookingHandler(db))
			bookings.GET("", orderControllers.GetMyBookingsHandler(db, hub))
			bookings.GET("/confirmed-count", orderControllers.ConfirmedCountHandler(db))
			bookings.PUT("/:orderID/cancel", orderControllers.CancelMyBookingHandler(db, hub))
			bookings.DELETE("/:orderID", orderControllers.DeleteMyBookingHandler(db))
		}

		// ──────────────── Notifications ────────────────
		userGroup.GET("/notifications", hub.UnseenHandler())
	}
}
