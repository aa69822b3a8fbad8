package middleware

import (
	"net/http"

	"github.com/Iyedchebbi/SofaSteam2026/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RequireAdmin reads the role flag off the caller's profile row. The profile
// role is the only admin signal; hiding controls client-side is UX, this is
// the server-side gate. Must run after ValidateToken.
func RequireAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		var profile models.Profile
		if err := db.First(&profile, "id = ?", userIDVal).Error; err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "Profile not found"})
			c.Abort()
			return
		}

		if !profile.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}

		c.Set("role", profile.Role)
		c.Next()
	}
}
