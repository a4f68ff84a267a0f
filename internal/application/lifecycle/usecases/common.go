package usecases

import (
	"context"
	"time"

	"weiyue/internal/domain/customer"
	"weiyue/internal/domain/review"
	"weiyue/internal/domain/user"
	"weiyue/internal/shared/biztime"
	"weiyue/internal/shared/db"
	"weiyue/internal/shared/errors"
	"weiyue/internal/shared/goroutine"
	"weiyue/internal/shared/logger"
)

// AuditCommand is the input of both audit use cases.
type AuditCommand struct {
	AppID     string
	AuditorID string
	Decision  string
	Remarks   *string
}

const notifyTimeout = 30 * time.Second

// withFreshID runs fn in its own unit of work and repeats it, up to
// maxMintAttempts times, while it fails on a duplicate key. fn is expected to
// mint its ID inside the unit of work.
func withFreshID(ctx context.Context, runner db.Runner, log logger.Interface, fn func(ctx context.Context) error) error {
	var err error
	for attempt := 1; attempt <= maxMintAttempts; attempt++ {
		err = runner.Run(ctx, fn)
		if err == nil || !errors.IsDuplicateError(err) {
			return err
		}
		log.Warnw("minted ID already taken, retrying", "attempt", attempt, "error", err)
	}
	return errors.NewConflictError("could not allocate a unique identifier", err.Error())
}

// asAppError passes AppErrors through and hides everything else behind msg.
func asAppError(err error, msg string) error {
	if errors.IsAppError(err) {
		return err
	}
	return errors.NewInternalError(msg, err.Error())
}

func requireCustomer(ctx context.Context, repo customer.Repository, id string) (*customer.Customer, error) {
	c, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, errors.NewNotFoundError("customer not found", id)
	}
	return c, nil
}

func requireUser(ctx context.Context, repo user.Repository, id, role string) (*user.User, error) {
	u, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, errors.NewNotFoundError(role+" not found", id)
	}
	return u, nil
}

// parseDecision maps domain decision errors to validation errors.
func parseDecision(s string) (review.Status, error) {
	d, err := review.ParseDecision(s)
	if err != nil {
		return "", errors.NewValidationError(err.Error())
	}
	return d, nil
}

func auditError(err error) error {
	if err == review.ErrAlreadyAudited {
		return errors.NewConflictError("application has already been audited")
	}
	if err == review.ErrInvalidDecision {
		return errors.NewValidationError(err.Error())
	}
	return err
}

// afterAudit runs the post-commit side effects of an audit. None of them can
// fail the audit.
func afterAudit(
	ctx context.Context,
	log logger.Interface,
	recorder Recorder,
	stats StatisticsInvalidator,
	notifier AuditNotifier,
	notice review.Notice,
) {
	recorder.ApplicationAudited(notice.ApplicationKind, notice.Decision.String())

	if notice.Decision.IsApproved() {
		if err := stats.Invalidate(ctx); err != nil {
			log.Warnw("failed to invalidate statistics cache", "error", err)
		}
	}

	if notifier == nil {
		return
	}
	goroutine.Detach(ctx, log, "audit-notification", notifyTimeout, func(ctx context.Context) {
		if err := notifier.NotifyAudit(ctx, notice); err != nil {
			log.Warnw("failed to send audit notification",
				"application_id", notice.ApplicationID,
				"error", err)
		}
	})
}

func nowUTC() time.Time {
	return biztime.NowUTC()
}
