package routes

import (
	catalogControllers "github.com/Iyedchebbi/SofaSteam2026/controllers/catalog"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupCatalogRoutes registers the public catalog reads. Browsing needs no
// account; only cart and booking actions do.
func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB) {
	services := r.Group("/services")
	{
		services.GET("", catalogControllers.GetServices(db))
		services.GET("/:id", catalogControllers.GetServiceByID(db))
	}
}
