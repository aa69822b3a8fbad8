package routes

import (
	assistantControllers "github.com/Iyedchebbi/SofaSteam2026/controllers/assistant"
	"github.com/gin-gonic/gin"
)

// SetupAssistantRoutes registers the AI cleaning consultant proxy.
func SetupAssistantRoutes(r *gin.Engine) {
	assistant := r.Group("/assistant")
	{
		assistant.POST("/chat", assistantControllers.ChatHandler())
	}
}
