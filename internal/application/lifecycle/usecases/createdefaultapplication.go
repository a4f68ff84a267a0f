package usecases

import (
	"context"
	"strings"
	"time"

	"weiyue/internal/application/lifecycle/dto"
	"weiyue/internal/domain/customer"
	"weiyue/internal/domain/defaultapp"
	"weiyue/internal/domain/reason"
	"weiyue/internal/domain/sequence"
	"weiyue/internal/domain/user"
	"weiyue/internal/shared/db"
	"weiyue/internal/shared/errors"
	"weiyue/internal/shared/logger"
)

type CreateDefaultApplicationCommand struct {
	CustomerID    string
	ReasonID      string
	Severity      string
	ApplicantID   string
	Remarks       *string
	AttachmentRef *string
}

type CreateDefaultApplicationUseCase struct {
	apps      defaultapp.Repository
	customers customer.Repository
	reasons   reason.Repository
	users     user.Repository
	sequencer sequence.Sequencer
	runner    db.Runner
	recorder  Recorder
	logger    logger.Interface
	now       func() time.Time
}

func NewCreateDefaultApplicationUseCase(
	apps defaultapp.Repository,
	customers customer.Repository,
	reasons reason.Repository,
	users user.Repository,
	sequencer sequence.Sequencer,
	runner db.Runner,
	recorder Recorder,
	logger logger.Interface,
) *CreateDefaultApplicationUseCase {
	return &CreateDefaultApplicationUseCase{
		apps:      apps,
		customers: customers,
		reasons:   reasons,
		users:     users,
		sequencer: sequencer,
		runner:    runner,
		recorder:  recorder,
		logger:    logger,
		now:       nowUTC,
	}
}

// Execute checks the customer, the reason and the applicant in that order and
// inserts a pending application under a freshly minted DEF identifier.
func (uc *CreateDefaultApplicationUseCase) Execute(ctx context.Context, cmd CreateDefaultApplicationCommand) (*dto.DefaultApplicationDTO, error) {
	uc.logger.Infow("executing create default application use case",
		"customer_id", cmd.CustomerID,
		"reason_id", cmd.ReasonID,
		"applicant_id", cmd.ApplicantID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Warnw("invalid create default application command", "error", err)
		return nil, err
	}
	severity, err := defaultapp.NewSeverity(cmd.Severity)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var created *defaultapp.Application
	err = withFreshID(ctx, uc.runner, uc.logger, func(ctx context.Context) error {
		if _, err := requireCustomer(ctx, uc.customers, cmd.CustomerID); err != nil {
			return err
		}
		r, err := uc.reasons.GetByID(ctx, reason.KindDefault, cmd.ReasonID)
		if err != nil {
			return err
		}
		if r == nil {
			return errors.NewNotFoundError("default reason not found", cmd.ReasonID)
		}
		if _, err := requireUser(ctx, uc.users, cmd.ApplicantID, "applicant"); err != nil {
			return err
		}

		id, err := uc.sequencer.Next(ctx, sequence.KindDefaultApplication)
		if err != nil {
			return err
		}

		app, err := defaultapp.NewApplication(id, cmd.CustomerID, cmd.ReasonID, severity,
			cmd.ApplicantID, cmd.Remarks, cmd.AttachmentRef, uc.now())
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
		uc.logger.Errorw("failed to create default application",
			"customer_id", cmd.CustomerID,
			"error", err)
		return nil, asAppError(err, "failed to create default application")
	}

	uc.recorder.ApplicationCreated(kindDefault)
	uc.logger.Infow("default application created",
		"app_id", created.ID(),
		"customer_id", created.CustomerID())

	return dto.ToDefaultApplicationDTO(created), nil
}

func (uc *CreateDefaultApplicationUseCase) validateCommand(cmd CreateDefaultApplicationCommand) error {
	if strings.TrimSpace(cmd.CustomerID) == "" {
		return errors.NewValidationError("customer_id is required")
	}
	if strings.TrimSpace(cmd.ReasonID) == "" {
		return errors.NewValidationError("default_reason_id is required")
	}
	if strings.TrimSpace(cmd.ApplicantID) == "" {
		return errors.NewValidationError("applicant_id is required")
	}
	return nil
}
