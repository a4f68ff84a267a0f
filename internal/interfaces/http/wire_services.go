package http

import (
	customerApp "weiyue/internal/application/customer"
	"weiyue/internal/application/lifecycle/usecases"
	reasonApp "weiyue/internal/application/reason"
	"weiyue/internal/application/statistics"
	userApp "weiyue/internal/application/user"
	"weiyue/internal/infrastructure/metrics"
	"weiyue/internal/shared/logger"
)

// allServices holds the application services and lifecycle use cases.
type allServices struct {
	userService       *userApp.Service
	customerService   *customerApp.Service
	statisticsService *statistics.Service
	reasonRegistry    *reasonApp.Registry

	createDefaultUC  *usecases.CreateDefaultApplicationUseCase
	auditDefaultUC   *usecases.AuditDefaultApplicationUseCase
	getDefaultUC     *usecases.GetDefaultApplicationUseCase
	listDefaultUC    *usecases.ListDefaultApplicationsUseCase
	createRecoveryUC *usecases.CreateRecoveryApplicationUseCase
	auditRecoveryUC  *usecases.AuditRecoveryApplicationUseCase
	getRecoveryUC    *usecases.GetRecoveryApplicationUseCase
	listRecoveryUC   *usecases.ListRecoveryApplicationsUseCase
}

func (c *Container) initServices() {
	in := c.infra
	recorder := metrics.LifecycleRecorder{}
	lifecycleLog := logger.WithComponent("lifecycle")

	statisticsService := statistics.NewService(in.customerRepo, in.defaultAppRepo, in.statisticsCache, logger.WithComponent("statistics"))

	c.svcs = &allServices{
		userService:       userApp.NewService(in.userRepo, in.hasher, in.jwtService, logger.WithComponent("user")),
		customerService:   customerApp.NewService(in.customerRepo, logger.WithComponent("customer")),
		statisticsService: statisticsService,
		reasonRegistry:    reasonApp.NewRegistry(in.reasonRepo, in.sequencer, in.gateway, logger.WithComponent("reason")),

		createDefaultUC: usecases.NewCreateDefaultApplicationUseCase(
			in.defaultAppRepo, in.customerRepo, in.reasonRepo, in.userRepo,
			in.sequencer, in.gateway, recorder, lifecycleLog,
		),
		auditDefaultUC: usecases.NewAuditDefaultApplicationUseCase(
			in.defaultAppRepo, in.customerRepo, in.userRepo, in.gateway,
			statisticsService, in.notifier, recorder, lifecycleLog,
		),
		getDefaultUC:  usecases.NewGetDefaultApplicationUseCase(in.defaultAppRepo, lifecycleLog),
		listDefaultUC: usecases.NewListDefaultApplicationsUseCase(in.defaultAppRepo, lifecycleLog),
		createRecoveryUC: usecases.NewCreateRecoveryApplicationUseCase(
			in.recoveryAppRepo, in.defaultAppRepo, in.customerRepo, in.reasonRepo, in.userRepo,
			in.sequencer, in.gateway, recorder, lifecycleLog,
		),
		auditRecoveryUC: usecases.NewAuditRecoveryApplicationUseCase(
			in.recoveryAppRepo, in.customerRepo, in.userRepo, in.gateway,
			statisticsService, in.notifier, recorder, lifecycleLog,
		),
		getRecoveryUC:  usecases.NewGetRecoveryApplicationUseCase(in.recoveryAppRepo, lifecycleLog),
		listRecoveryUC: usecases.NewListRecoveryApplicationsUseCase(in.recoveryAppRepo, lifecycleLog),
	}
}
