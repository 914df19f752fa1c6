package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты жизненного цикла инцидентов
	emergency := api.Group("/emergency")
	if len(h.cfg.APIKeys) > 0 {
		emergency.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	}
	{
		emergency.POST("/report", h.submitReport)
		emergency.GET("/incident/:id", h.getIncident)
		emergency.GET("/active-incidents", h.activeIncidents)
		emergency.PUT("/incident/:id/status", h.updateStatus)
		emergency.POST("/update-analysis/:id", h.updateAnalysis)
	}

	// Маршрут Health-check
	api.GET("/health", h.healthCheck)
}

// RegisterRootRoutes регистрирует корневой маршрут с описанием API
func (h *Handler) RegisterRootRoutes(router *gin.Engine) {
	router.GET("/", h.index)
}
