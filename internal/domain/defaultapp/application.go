// Package defaultapp models applications declaring a customer in default.
package defaultapp

import (
	"fmt"
	"time"

	"weiyue/internal/domain/review"
)

// Application is a default application. It is created pending and audited once.
type Application struct {
	id            string
	customerID    string
	reasonID      string
	severity      Severity
	remarks       *string
	attachmentRef *string
	applicantID   string
	appliedAt     time.Time
	review        review.Record
}

// NewApplication creates a pending application.
func NewApplication(
	id string,
	customerID string,
	reasonID string,
	severity Severity,
	applicantID string,
	remarks *string,
	attachmentRef *string,
	now time.Time,
) (*Application, error) {
	if id == "" {
		return nil, fmt.Errorf("application ID is required")
	}
	if customerID == "" {
		return nil, fmt.Errorf("customer ID is required")
	}
	if reasonID == "" {
		return nil, fmt.Errorf("reason ID is required")
	}
	if applicantID == "" {
		return nil, fmt.Errorf("applicant ID is required")
	}
	if !severity.IsValid() {
		return nil, fmt.Errorf("invalid severity: %s", severity)
	}

	return &Application{
		id:            id,
		customerID:    customerID,
		reasonID:      reasonID,
		severity:      severity,
		remarks:       remarks,
		attachmentRef: attachmentRef,
		applicantID:   applicantID,
		appliedAt:     now,
		review:        review.NewRecord(),
	}, nil
}

// ReconstructApplication rebuilds an application from persistence.
func ReconstructApplication(
	id string,
	customerID string,
	reasonID string,
	severity Severity,
	applicantID string,
	remarks *string,
	attachmentRef *string,
	appliedAt time.Time,
	record review.Record,
) *Application {
	return &Application{
		id:            id,
		customerID:    customerID,
		reasonID:      reasonID,
		severity:      severity,
		remarks:       remarks,
		attachmentRef: attachmentRef,
		applicantID:   applicantID,
		appliedAt:     appliedAt,
		review:        record,
	}
}

func (a *Application) ID() string             { return a.id }
func (a *Application) CustomerID() string     { return a.customerID }
func (a *Application) ReasonID() string       { return a.reasonID }
func (a *Application) Severity() Severity     { return a.severity }
func (a *Application) Remarks() *string       { return a.remarks }
func (a *Application) AttachmentRef() *string { return a.attachmentRef }
func (a *Application) ApplicantID() string    { return a.applicantID }
func (a *Application) AppliedAt() time.Time   { return a.appliedAt }
func (a *Application) Review() review.Record  { return a.review }
func (a *Application) Status() review.Status  { return a.review.Status() }

// Audit records the decision. It fails with review.ErrAlreadyAudited when
// the application is no longer pending.
func (a *Application) Audit(decision review.Status, auditorID string, remarks *string, at time.Time) error {
	return a.review.Decide(decision, auditorID, remarks, at)
}

// DefaultsCustomer reports whether the audit outcome flags the customer.
func (a *Application) DefaultsCustomer() bool {
	return a.review.Status().IsApproved()
}
