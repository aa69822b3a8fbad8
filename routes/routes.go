package routes

import (
	orderControllers "github.com/Iyedchebbi/SofaSteam2026/controllers/order"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry‐point that wires up all route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Shared websocket hub for booking status events
	hub := orderControllers.NewHub()

	// 1️⃣ Public auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// 2️⃣ Public catalog + assistant
	SetupCatalogRoutes(r, db)
	SetupAssistantRoutes(r)

	// 3️⃣ Customer routes (JWT‐protected)
	SetupUserRoutes(r, db, hub)

	// 4️⃣ Admin routes (JWT + role flag)
	SetupAdminRoutes(r, db, hub)

	// websocket endpoint for real-time booking updates (token via query param)
	r.GET("/orders/ws", hub.OrderEventsHandler)
}
