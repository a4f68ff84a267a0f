package usecases

import (
	"context"
	"time"

	"weiyue/internal/application/lifecycle/dto"
	"weiyue/internal/domain/customer"
	"weiyue/internal/domain/defaultapp"
	"weiyue/internal/domain/review"
	"weiyue/internal/domain/user"
	"weiyue/internal/shared/db"
	"weiyue/internal/shared/errors"
	"weiyue/internal/shared/logger"
)

type AuditDefaultApplicationUseCase struct {
	apps      defaultapp.Repository
	customers customer.Repository
	users     user.Repository
	runner    db.Runner
	stats     StatisticsInvalidator
	notifier  AuditNotifier
	recorder  Recorder
	logger    logger.Interface
	now       func() time.Time
}

func NewAuditDefaultApplicationUseCase(
	apps defaultapp.Repository,
	customers customer.Repository,
	users user.Repository,
	runner db.Runner,
	stats StatisticsInvalidator,
	notifier AuditNotifier,
	recorder Recorder,
	logger logger.Interface,
) *AuditDefaultApplicationUseCase {
	return &AuditDefaultApplicationUseCase{
		apps:      apps,
		customers: customers,
		users:     users,
		runner:    runner,
		stats:     stats,
		notifier:  notifier,
		recorder:  recorder,
		logger:    logger,
		now:       nowUTC,
	}
}

// Execute records the decision. An approval flags the customer as defaulted
// in the same unit of work; a rejection leaves the customer alone.
func (uc *AuditDefaultApplicationUseCase) Execute(ctx context.Context, cmd AuditCommand) (*dto.DefaultApplicationDTO, error) {
	uc.logger.Infow("executing audit default application use case",
		"app_id", cmd.AppID,
		"auditor_id", cmd.AuditorID,
		"decision", cmd.Decision)

	var (
		summary *defaultapp.Summary
		notice  review.Notice
	)
	err := uc.runner.Run(ctx, func(ctx context.Context) error {
		app, err := uc.apps.GetByID(ctx, cmd.AppID)
		if err != nil {
			return err
		}
		if app == nil {
			return errors.NewNotFoundError("default application not found", cmd.AppID)
		}
		auditor, err := requireUser(ctx, uc.users, cmd.AuditorID, "auditor")
		if err != nil {
			return err
		}
		decision, err := parseDecision(cmd.Decision)
		if err != nil {
			return err
		}

		now := uc.now()
		if err := app.Audit(decision, auditor.ID(), cmd.Remarks, now); err != nil {
			return auditError(err)
		}

		matched, err := uc.apps.SaveAudit(ctx, app)
		if err != nil {
			return err
		}
		if matched == 0 {
			return errors.NewConflictError("application has already been audited")
		}

		if app.DefaultsCustomer() {
			matched, err := uc.customers.SetDefaulted(ctx, app.CustomerID(), true, now)
			if err != nil {
				return err
			}
			if matched == 0 {
				return errors.NewNotFoundError("customer not found", app.CustomerID())
			}
		}

		summary, err = uc.apps.GetSummary(ctx, app.ID())
		if err != nil {
			return err
		}
		if summary == nil {
			return errors.NewNotFoundError("default application not found", app.ID())
		}
		applicant, err := uc.users.GetByID(ctx, app.ApplicantID())
		if err != nil {
			return err
		}
		notice = review.Notice{
			ApplicationKind: kindDefault,
			ApplicationID:   app.ID(),
			CustomerName:    summary.CustomerName,
			ApplicantName:   summary.ApplicantName,
			Decision:        decision,
			Remarks:         cmd.Remarks,
			AuditedAt:       now,
		}
		if applicant != nil {
			notice.ApplicantEmail = applicant.Email()
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to audit default application",
			"app_id", cmd.AppID,
			"error", err)
		return nil, asAppError(err, "failed to audit default application")
	}

	uc.logger.Infow("default application audited",
		"app_id", cmd.AppID,
		"decision", notice.Decision)
	afterAudit(ctx, uc.logger, uc.recorder, uc.stats, uc.notifier, notice)

	return dto.DefaultSummaryToDTO(summary), nil
}
