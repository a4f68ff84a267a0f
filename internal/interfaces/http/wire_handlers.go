package http

import (
	domainReason "weiyue/internal/domain/reason"
	"weiyue/internal/interfaces/http/handlers"
	appHandlers "weiyue/internal/interfaces/http/handlers/application"
	reasonHandlers "weiyue/internal/interfaces/http/handlers/reason"
	"weiyue/internal/interfaces/http/middleware"
	"weiyue/internal/shared/logger"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	authHandler           *handlers.AuthHandler
	customerHandler       *handlers.CustomerHandler
	statisticsHandler     *handlers.StatisticsHandler
	optionsHandler        *handlers.OptionsHandler
	fileHandler           *handlers.FileHandler
	defaultReasonHandler  *reasonHandlers.Handler
	recoveryReasonHandler *reasonHandlers.Handler
	defaultAppHandler     *appHandlers.DefaultApplicationHandler
	recoveryAppHandler    *appHandlers.RecoveryApplicationHandler
}

func (c *Container) initHandlers() {
	s := c.svcs
	handlerLog := logger.WithComponent("http")

	c.authMiddleware = middleware.NewAuthMiddleware(c.infra.jwtService, handlerLog)

	c.hdlrs = &allHandlers{
		authHandler:           handlers.NewAuthHandler(s.userService, handlerLog),
		customerHandler:       handlers.NewCustomerHandler(s.customerService),
		statisticsHandler:     handlers.NewStatisticsHandler(s.statisticsService),
		optionsHandler:        handlers.NewOptionsHandler(),
		fileHandler:           handlers.NewFileHandler(c.infra.fileStore, handlerLog),
		defaultReasonHandler:  reasonHandlers.NewHandler(s.reasonRegistry, domainReason.KindDefault, handlerLog),
		recoveryReasonHandler: reasonHandlers.NewHandler(s.reasonRegistry, domainReason.KindRecovery, handlerLog),
		defaultAppHandler: appHandlers.NewDefaultApplicationHandler(
			s.createDefaultUC, s.auditDefaultUC, s.getDefaultUC, s.listDefaultUC, handlerLog,
		),
		recoveryAppHandler: appHandlers.NewRecoveryApplicationHandler(
			s.createRecoveryUC, s.auditRecoveryUC, s.getRecoveryUC, s.listRecoveryUC, handlerLog,
		),
	}
}
