package usecases

import (
	"context"

	"weiyue/internal/application/lifecycle/dto"
	"weiyue/internal/domain/review"
)

const (
	kindDefault  = "default"
	kindRecovery = "recovery"

	// maxMintAttempts bounds how often an insert is retried with a freshly
	// minted ID after losing a race on the primary key.
	maxMintAttempts = 3
)

// AuditNotifier tells the applicant about an audit outcome.
type AuditNotifier interface {
	NotifyAudit(ctx context.Context, n review.Notice) error
}

// StatisticsInvalidator drops cached statistics after customer flags change.
type StatisticsInvalidator interface {
	Invalidate(ctx context.Context) error
}

// Recorder counts lifecycle events.
type Recorder interface {
	ApplicationCreated(kind string)
	ApplicationAudited(kind, decision string)
}

type CreateDefaultApplicationExecutor interface {
	Execute(ctx context.Context, cmd CreateDefaultApplicationCommand) (*dto.DefaultApplicationDTO, error)
}

type AuditDefaultApplicationExecutor interface {
	Execute(ctx context.Context, cmd AuditCommand) (*dto.DefaultApplicationDTO, error)
}

type GetDefaultApplicationExecutor interface {
	Execute(ctx context.Context, appID string) (*dto.DefaultApplicationDTO, error)
}

type ListDefaultApplicationsExecutor interface {
	Execute(ctx context.Context, query ListDefaultApplicationsQuery) (*ListDefaultApplicationsResult, error)
}

type CreateRecoveryApplicationExecutor interface {
	Execute(ctx context.Context, cmd CreateRecoveryApplicationCommand) (*dto.RecoveryApplicationDTO, error)
}

type AuditRecoveryApplicationExecutor interface {
	Execute(ctx context.Context, cmd AuditCommand) (*dto.RecoveryApplicationDTO, error)
}

type GetRecoveryApplicationExecutor interface {
	Execute(ctx context.Context, appID string) (*dto.RecoveryApplicationDTO, error)
}

type ListRecoveryApplicationsExecutor interface {
	Execute(ctx context.Context, query ListRecoveryApplicationsQuery) (*ListRecoveryApplicationsResult, error)
}
