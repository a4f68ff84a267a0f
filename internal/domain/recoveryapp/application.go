// Package recoveryapp models applications lifting a customer's default status.
package recoveryapp

import (
	"context"
	"fmt"
	"time"

	"weiyue/internal/domain/review"
)

// Application is a recovery application tied to the default application it reverses.
type Application struct {
	id                   string
	customerID           string
	originalDefaultAppID string
	reasonID             string
	applicantID          string
	appliedAt            time.Time
	review               review.Record
}

func NewApplication(id, customerID, originalDefaultAppID, reasonID, applicantID string, now time.Time) (*Application, error) {
	if id == "" {
		return nil, fmt.Errorf("recovery application ID is required")
	}
	if customerID == "" {
		return nil, fmt.Errorf("customer ID is required")
	}
	if originalDefaultAppID == "" {
		return nil, fmt.Errorf("original default application ID is required")
	}
	if reasonID == "" {
		return nil, fmt.Errorf("recovery reason ID is required")
	}
	if applicantID == "" {
		return nil, fmt.Errorf("applicant ID is required")
	}

	return &Application{
		id:                   id,
		customerID:           customerID,
		originalDefaultAppID: originalDefaultAppID,
		reasonID:             reasonID,
		applicantID:          applicantID,
		appliedAt:            now,
		review:               review.NewRecord(),
	}, nil
}

func ReconstructApplication(id, customerID, originalDefaultAppID, reasonID, applicantID string, appliedAt time.Time, record review.Record) *Application {
	return &Application{
		id:                   id,
		customerID:           customerID,
		originalDefaultAppID: originalDefaultAppID,
		reasonID:             reasonID,
		applicantID:          applicantID,
		appliedAt:            appliedAt,
		review:               record,
	}
}

func (a *Application) ID() string                   { return a.id }
func (a *Application) CustomerID() string           { return a.customerID }
func (a *Application) OriginalDefaultAppID() string { return a.originalDefaultAppID }
func (a *Application) ReasonID() string             { return a.reasonID }
func (a *Application) ApplicantID() string          { return a.applicantID }
func (a *Application) AppliedAt() time.Time         { return a.appliedAt }
func (a *Application) Review() review.Record        { return a.review }
func (a *Application) Status() review.Status        { return a.review.Status() }

func (a *Application) Audit(decision review.Status, auditorID string, remarks *string, at time.Time) error {
	return a.review.Decide(decision, auditorID, remarks, at)
}

// ClearsCustomer reports whether the audit outcome lifts the customer's default flag.
func (a *Application) ClearsCustomer() bool {
	return a.review.Status().IsApproved()
}

// Summary is an application joined with display names.
type Summary struct {
	Application   *Application
	CustomerName  string
	ReasonContent string
	ApplicantName string
	AuditorName   string
}

type Filter struct {
	CustomerID   string
	CustomerName string
	Status       *review.Status
	Page         int
	PageSize     int
}

type Repository interface {
	Create(ctx context.Context, a *Application) error
	// GetByID returns nil, nil when the application does not exist.
	GetByID(ctx context.Context, id string) (*Application, error)
	// GetSummary returns nil, nil when the application does not exist.
	GetSummary(ctx context.Context, id string) (*Summary, error)
	// SaveAudit writes the audit fields of a pending application and reports
	// how many rows matched.
	SaveAudit(ctx context.Context, a *Application) (int64, error)
	List(ctx context.Context, filter Filter) ([]*Summary, int64, error)
}
