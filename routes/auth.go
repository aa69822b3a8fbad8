package routes

import (
	"github.com/Iyedchebbi/SofaSteam2026/auth"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers all “/auth/*” endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		// Google login (wrapped as a Gin handler)
		authGroup.POST("/google", func(c *gin.Context) {
			auth.GoogleLoginHandler(c.Writer, c.Request, db)
		})
	}
}
