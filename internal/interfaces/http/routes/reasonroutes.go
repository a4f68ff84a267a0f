package routes

import (
	"github.com/gin-gonic/gin"

	reasonhandlers "weiyue/internal/interfaces/http/handlers/reason"
)

type ReasonRouteConfig struct {
	DefaultReasonHandler  *reasonhandlers.Handler
	RecoveryReasonHandler *reasonhandlers.Handler
}

func SetupReasonRoutes(api *gin.RouterGroup, config *ReasonRouteConfig) {
	setupReasonGroup(api.Group("/default-reasons"), config.DefaultReasonHandler)
	setupReasonGroup(api.Group("/recovery-reasons"), config.RecoveryReasonHandler)
}

func setupReasonGroup(g *gin.RouterGroup, h *reasonhandlers.Handler) {
	// /all must be registered before /:id
	g.GET("", h.ListEnabled)
	g.GET("/all", h.ListAll)
	g.POST("", h.Create)

	g.POST("/:id/enable", h.Enable)
	g.POST("/:id/disable", h.Disable)

	g.GET("/:id", h.Get)
	g.PATCH("/:id", h.Update)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Disable)
}
