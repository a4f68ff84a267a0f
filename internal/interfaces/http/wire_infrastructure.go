package http

import (
	"context"
	"fmt"

	"weiyue/internal/application/lifecycle/usecases"
	"weiyue/internal/domain/customer"
	"weiyue/internal/domain/defaultapp"
	"weiyue/internal/domain/reason"
	"weiyue/internal/domain/recoveryapp"
	"weiyue/internal/domain/sequence"
	"weiyue/internal/domain/user"
	"weiyue/internal/infrastructure/auth"
	"weiyue/internal/infrastructure/cache"
	"weiyue/internal/infrastructure/email"
	"weiyue/internal/infrastructure/repository"
	infraSequence "weiyue/internal/infrastructure/sequence"
	"weiyue/internal/infrastructure/storage"
	sharedDB "weiyue/internal/shared/db"
	"weiyue/internal/shared/logger"
)

// infrastructure holds repositories and the adapters use cases depend on.
type infrastructure struct {
	customerRepo    customer.Repository
	userRepo        user.Repository
	reasonRepo      reason.Repository
	defaultAppRepo  defaultapp.Repository
	recoveryAppRepo recoveryapp.Repository
	gateway         *sharedDB.Gateway
	sequencer       sequence.Sequencer
	hasher          user.PasswordHasher
	jwtService      *auth.JWTService
	statisticsCache cache.StatisticsCache
	notifier        usecases.AuditNotifier
	fileStore       *storage.LocalStore
}

func (c *Container) initInfrastructure(ctx context.Context) error {
	hasher, err := auth.NewPasswordHasher(c.cfg.Auth.PasswordScheme, c.cfg.Auth.BcryptCost)
	if err != nil {
		return fmt.Errorf("failed to create password hasher: %w", err)
	}

	fileStore, err := storage.NewLocalStore(c.cfg.Storage.UploadDir, c.cfg.Storage.MaxUploadMB)
	if err != nil {
		return err
	}

	c.infra = &infrastructure{
		customerRepo:    repository.NewCustomerRepository(c.db, logger.WithComponent("repository.customer")),
		userRepo:        repository.NewUserRepository(c.db, logger.WithComponent("repository.user")),
		reasonRepo:      repository.NewReasonRepository(c.db, logger.WithComponent("repository.reason")),
		defaultAppRepo:  repository.NewDefaultApplicationRepository(c.db, logger.WithComponent("repository.default_application")),
		recoveryAppRepo: repository.NewRecoveryApplicationRepository(c.db, logger.WithComponent("repository.recovery_application")),
		gateway:         sharedDB.NewGateway(c.db),
		sequencer:       infraSequence.NewGormSequencer(c.db),
		hasher:          hasher,
		jwtService:      auth.NewJWTService(c.cfg.Auth.JWT.Secret, c.cfg.Auth.JWT.AccessExpMinutes),
		statisticsCache: cache.NoopStatisticsCache{},
		fileStore:       fileStore,
	}

	if c.cfg.Redis.Enabled {
		client, err := cache.NewRedisClient(ctx, &c.cfg.Redis)
		if err != nil {
			c.log.Warnw("redis unavailable, statistics cache disabled", "error", err)
		} else {
			c.redis = client
			c.infra.statisticsCache = cache.NewRedisStatisticsCache(client, c.statsTTL())
			c.log.Infow("statistics cache enabled", "addr", c.cfg.Redis.GetAddr())
		}
	}

	// Left as a nil interface when SMTP is not configured.
	if c.cfg.Email.Enabled() {
		c.infra.notifier = email.NewSMTPNotifier(email.SMTPConfig{
			Host:        c.cfg.Email.SMTPHost,
			Port:        c.cfg.Email.SMTPPort,
			Username:    c.cfg.Email.SMTPUser,
			Password:    c.cfg.Email.SMTPPassword,
			FromAddress: c.cfg.Email.FromAddress,
			FromName:    c.cfg.Email.FromName,
		})
	}

	return nil
}
