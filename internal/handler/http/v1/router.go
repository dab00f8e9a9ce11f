package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	auth := TriggerTokenAuthMiddleware(h.cfg, h.logger)

	// Маршруты срабатывания: POST с показаниями датчиков,
	// GET - встроенный демо-сценарий
	trigger := api.Group("/trigger", auth)
	{
		trigger.POST("/crash", h.triggerCrash)
		trigger.GET("/crash", h.triggerCrashDemo)
	}

	// Маршруты для управления инцидентами
	incidents := api.Group("/incidents", auth)
	{
		incidents.POST("/:id/cancel", h.cancelIncident)
		incidents.POST("/cancel-all", h.cancelAll)
		incidents.GET("/active", h.listActiveIncidents)
		incidents.GET("/:id/status", h.getIncidentStatus)
		incidents.GET("/:id/logs", h.getIncidentLogs)
	}

	// Маршрут Health-check, без токена
	api.GET("/system/health", h.healthCheck)
}
