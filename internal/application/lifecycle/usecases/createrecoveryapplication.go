package usecases

import (
	"context"
	"strings"
	"time"

	"weiyue/internal/application/lifecycle/dto"
	"weiyue/internal/domain/customer"
	"weiyue/internal/domain/defaultapp"
	"weiyue/internal/domain/reason"
	"weiyue/internal/domain/recoveryapp"
	"weiyue/internal/domain/sequence"
	"weiyue/internal/domain/user"
	"weiyue/internal/shared/db"
	"weiyue/internal/shared/errors"
	"weiyue/internal/shared/logger"
)

type CreateRecoveryApplicationCommand struct {
	CustomerID string
	// OriginalDefaultAppID is optional; when empty the customer's latest
	// default application is used.
	OriginalDefaultAppID string
	ReasonID             string
	ApplicantID          string
}

type CreateRecoveryApplicationUseCase struct {
	apps        recoveryapp.Repository
	defaultApps defaultapp.Repository
	customers   customer.Repository
	reasons     reason.Repository
	users       user.Repository
	sequencer   sequence.Sequencer
	runner      db.Runner
	recorder    Recorder
	logger      logger.Interface
	now         func() time.Time
}

func NewCreateRecoveryApplicationUseCase(
	apps recoveryapp.Repository,
	defaultApps defaultapp.Repository,
	customers customer.Repository,
	reasons reason.Repository,
	users user.Repository,
	sequencer sequence.Sequencer,
	runner db.Runner,
	recorder Recorder,
	logger logger.Interface,
) *CreateRecoveryApplicationUseCase {
	return &CreateRecoveryApplicationUseCase{
		apps:        apps,
		defaultApps: defaultApps,
		customers:   customers,
		reasons:     reasons,
		users:       users,
		sequencer:   sequencer,
		runner:      runner,
		recorder:    recorder,
		logger:      logger,
		now:         nowUTC,
	}
}

func (uc *CreateRecoveryApplicationUseCase) Execute(ctx context.Context, cmd CreateRecoveryApplicationCommand) (*dto.RecoveryApplicationDTO, error) {
	uc.logger.Infow("executing create recovery application use case",
		"customer_id", cmd.CustomerID,
		"original_default_app_id", cmd.OriginalDefaultAppID,
		"applicant_id", cmd.ApplicantID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Warnw("invalid create recovery application command", "error", err)
		return nil, err
	}

	var created *recoveryapp.Application
	err := withFreshID(ctx, uc.runner, uc.logger, func(ctx context.Context) error {
		if _, err := requireCustomer(ctx, uc.customers, cmd.CustomerID); err != nil {
			return err
		}
		original, err := uc.resolveOriginal(ctx, cmd)
		if err != nil {
			return err
		}
		r, err := uc.reasons.GetByID(ctx, reason.KindRecovery, cmd.ReasonID)
		if err != nil {
			return err
		}
		if r == nil {
			return errors.NewNotFoundError("recovery reason not found", cmd.ReasonID)
		}
		if _, err := requireUser(ctx, uc.users, cmd.ApplicantID, "applicant"); err != nil {
			return err
		}

		id, err := uc.sequencer.Next(ctx, sequence.KindRecoveryApplication)
		if err != nil {
			return err
		}

		app, err := recoveryapp.NewApplication(id, cmd.CustomerID, original.ID(), cmd.ReasonID, cmd.ApplicantID, uc.now())
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.apps.Create(ctx, app); err != nil {
			return err
		}
		created = app
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to create recovery application",
			"customer_id", cmd.CustomerID,
			"error", err)
		return nil, asAppError(err, "failed to create recovery application")
	}

	uc.recorder.ApplicationCreated(kindRecovery)
	uc.logger.Infow("recovery application created",
		"recovery_app_id", created.ID(),
		"original_default_app_id", created.OriginalDefaultAppID())

	return dto.ToRecoveryApplicationDTO(created), nil
}

func (uc *CreateRecoveryApplicationUseCase) resolveOriginal(ctx context.Context, cmd CreateRecoveryApplicationCommand) (*defaultapp.Application, error) {
	if cmd.OriginalDefaultAppID != "" {
		app, err := uc.defaultApps.GetByID(ctx, cmd.OriginalDefaultAppID)
		if err != nil {
			return nil, err
		}
		if app == nil {
			return nil, errors.NewNotFoundError("original default application not found", cmd.OriginalDefaultAppID)
		}
		return app, nil
	}

	app, err := uc.defaultApps.LatestForCustomer(ctx, cmd.CustomerID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, errors.NewNotFoundError("no default application found for customer", cmd.CustomerID)
	}
	return app, nil
}

func (uc *CreateRecoveryApplicationUseCase) validateCommand(cmd CreateRecoveryApplicationCommand) error {
	if strings.TrimSpace(cmd.CustomerID) == "" {
		return errors.NewValidationError("customer_id is required")
	}
	if strings.TrimSpace(cmd.ReasonID) == "" {
		return errors.NewValidationError("recovery_reason_id is required")
	}
	if strings.TrimSpace(cmd.ApplicantID) == "" {
		return errors.NewValidationError("applicant_id is required")
	}
	return nil
}
