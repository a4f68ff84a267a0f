package review

import (
	"fmt"
	"time"
)

// Record is the audit trail carried by an application.
type Record struct {
	status    Status
	auditorID *string
	auditTime *time.Time
	remarks   *string
}

// NewRecord returns a pending record.
func NewRecord() Record {
	return Record{status: StatusPending}
}

// ReconstructRecord rebuilds a record from persistence.
func ReconstructRecord(status Status, auditorID *string, auditTime *time.Time, remarks *string) (Record, error) {
	if !status.IsValid() {
		return Record{}, fmt.Errorf("invalid audit status: %s", status)
	}
	return Record{
		status:    status,
		auditorID: auditorID,
		auditTime: auditTime,
		remarks:   remarks,
	}, nil
}

func (r Record) Status() Status        { return r.status }
func (r Record) AuditorID() *string    { return r.auditorID }
func (r Record) AuditTime() *time.Time { return r.auditTime }
func (r Record) Remarks() *string      { return r.remarks }

// Decide applies an audit decision. The record is left unchanged on error.
func (r *Record) Decide(decision Status, auditorID string, remarks *string, at time.Time) error {
	if decision != StatusApproved && decision != StatusRejected {
		return ErrInvalidDecision
	}
	if !r.status.CanTransitionTo(decision) {
		return ErrAlreadyAudited
	}
	if auditorID == "" {
		return fmt.Errorf("auditor ID is required")
	}

	r.status = decision
	r.auditorID = &auditorID
	r.auditTime = &at
	r.remarks = remarks
	return nil
}
