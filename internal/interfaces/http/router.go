package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"weiyue/internal/infrastructure/metrics"
	"weiyue/internal/interfaces/http/middleware"
	"weiyue/internal/interfaces/http/routes"
	"weiyue/internal/shared/utils"
	"weiyue/internal/shared/version"
)

func (c *Container) setupRoutes() {
	e := c.engine
	e.Use(middleware.Recovery(c.log))
	e.Use(middleware.RequestID())
	e.Use(middleware.CustomLogger(c.log))
	e.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	e.MaxMultipartMemory = 8 << 20

	e.GET("/health", c.health)
	e.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := e.Group("/api")
	api.Use(c.authMiddleware.OptionalAuth())

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler: c.hdlrs.authHandler,
		LoginLimit:  c.loginLimit(),
	})
	routes.SetupReasonRoutes(api, &routes.ReasonRouteConfig{
		DefaultReasonHandler:  c.hdlrs.defaultReasonHandler,
		RecoveryReasonHandler: c.hdlrs.recoveryReasonHandler,
	})
	routes.SetupApplicationRoutes(api, &routes.ApplicationRouteConfig{
		DefaultHandler:  c.hdlrs.defaultAppHandler,
		RecoveryHandler: c.hdlrs.recoveryAppHandler,
	})
	routes.SetupQueryRoutes(api, &routes.QueryRouteConfig{
		CustomerHandler:   c.hdlrs.customerHandler,
		StatisticsHandler: c.hdlrs.statisticsHandler,
		OptionsHandler:    c.hdlrs.optionsHandler,
		FileHandler:       c.hdlrs.fileHandler,
	})

	e.NoRoute(func(ctx *gin.Context) {
		utils.ErrorResponse(ctx, http.StatusNotFound, "route not found")
	})
}

func (c *Container) health(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	status := "ok"
	code := http.StatusOK
	if sqlDB, err := c.db.DB(); err != nil || sqlDB.PingContext(pingCtx) != nil {
		status = "database unavailable"
		code = http.StatusServiceUnavailable
	}

	ctx.JSON(code, gin.H{
		"status":  status,
		"version": version.Version,
	})
}

func (c *Container) loginLimit() gin.HandlerFunc {
	if c.redis == nil || c.cfg.Redis.LoginPerMinute <= 0 {
		return nil
	}
	return middleware.NewRateLimiter(c.redis, "login", c.cfg.Redis.LoginPerMinute, time.Minute, c.log).Limit()
}
