package routes

import (
	"github.com/gin-gonic/gin"

	apphandlers "weiyue/internal/interfaces/http/handlers/application"
)

type ApplicationRouteConfig struct {
	DefaultHandler  *apphandlers.DefaultApplicationHandler
	RecoveryHandler *apphandlers.RecoveryApplicationHandler
}

func SetupApplicationRoutes(api *gin.RouterGroup, config *ApplicationRouteConfig) {
	defaults := api.Group("/default-applications")
	{
		defaults.POST("", config.DefaultHandler.Create)
		defaults.GET("", config.DefaultHandler.List)
		defaults.GET("/export", config.DefaultHandler.Export)
		defaults.POST("/:id/audit", config.DefaultHandler.Audit)
		defaults.GET("/:id", config.DefaultHandler.Get)
	}

	recoveries := api.Group("/recovery-applications")
	{
		recoveries.POST("", config.RecoveryHandler.Create)
		recoveries.GET("", config.RecoveryHandler.List)
		recoveries.POST("/:id/audit", config.RecoveryHandler.Audit)
		recoveries.GET("/:id", config.RecoveryHandler.Get)
	}
}
