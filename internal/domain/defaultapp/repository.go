package defaultapp

import (
	"context"
	"time"

	"weiyue/internal/domain/review"
)

// Summary is an application joined with the display names of what it references.
type Summary struct {
	Application   *Application
	CustomerName  string
	ReasonContent string
	ApplicantName string
	AuditorName   string
}

// Filter narrows application listings. Zero values match everything.
type Filter struct {
	CustomerID   string
	CustomerName string
	Status       *review.Status
	AppliedFrom  *time.Time
	AppliedTo    *time.Time
	AuditorName  string
	Page         int
	PageSize     int
}

type Repository interface {
	Create(ctx context.Context, a *Application) error
	// GetByID returns nil, nil when the application does not exist.
	GetByID(ctx context.Context, id string) (*Application, error)
	// GetSummary returns nil, nil when the application does not exist.
	GetSummary(ctx context.Context, id string) (*Summary, error)
	// LatestForCustomer returns the most recently applied application,
	// ties broken by ID, or nil, nil when the customer has none.
	LatestForCustomer(ctx context.Context, customerID string) (*Application, error)
	// SaveAudit writes the audit fields of a pending application and reports
	// how many rows matched.
	SaveAudit(ctx context.Context, a *Application) (int64, error)
	List(ctx context.Context, filter Filter) ([]*Summary, int64, error)
	// ApprovedAuditTimes returns the audit time of every approved application.
	ApprovedAuditTimes(ctx context.Context) ([]time.Time, error)
}
