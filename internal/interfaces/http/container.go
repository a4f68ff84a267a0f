package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"weiyue/internal/infrastructure/config"
	"weiyue/internal/interfaces/http/middleware"
	"weiyue/internal/shared/logger"
)

// Container holds the infrastructure, services and handlers of the HTTP
// server and wires them together.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	infra *infrastructure
	svcs  *allServices
	hdlrs *allHandlers

	authMiddleware *middleware.AuthMiddleware
}

// NewContainer builds every component from cfg. A Redis connection failure is
// logged and the statistics cache is disabled rather than failing startup.
func NewContainer(ctx context.Context, db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	if err := c.initInfrastructure(ctx); err != nil {
		return nil, err
	}
	c.initServices()
	c.initHandlers()
	c.setupRoutes()

	return c, nil
}

// Handler returns the configured gin engine.
func (c *Container) Handler() *gin.Engine {
	return c.engine
}

// Shutdown releases connections owned by the container.
func (c *Container) Shutdown(ctx context.Context) {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}

func (c *Container) statsTTL() time.Duration {
	if c.cfg.Redis.StatsTTLSeconds <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(c.cfg.Redis.StatsTTLSeconds) * time.Second
}
