package dto

import (
	"time"

	"weiyue/internal/domain/defaultapp"
	"weiyue/internal/domain/recoveryapp"
	"weiyue/internal/domain/review"
)

// ReviewDTO carries the audit fields shared by both application kinds.
type ReviewDTO struct {
	AuditStatus  string     `json:"audit_status"`
	AuditorID    *string    `json:"auditor_id"`
	AuditorName  string     `json:"auditor_name,omitempty"`
	AuditTime    *time.Time `json:"audit_time"`
	AuditRemarks *string    `json:"audit_remarks"`
}

type DefaultApplicationDTO struct {
	AppID           string    `json:"app_id"`
	CustomerID      string    `json:"customer_id"`
	CustomerName    string    `json:"customer_name,omitempty"`
	DefaultReasonID string    `json:"default_reason_id"`
	ReasonContent   string    `json:"reason_content,omitempty"`
	SeverityLevel   string    `json:"severity_level"`
	Remarks         *string   `json:"remarks"`
	AttachmentURL   *string   `json:"attachment_url"`
	ApplicantID     string    `json:"applicant_id"`
	ApplicantName   string    `json:"applicant_name,omitempty"`
	ApplyTime       time.Time `json:"apply_time"`
	ReviewDTO
}

type RecoveryApplicationDTO struct {
	RecoveryAppID        string    `json:"recovery_app_id"`
	CustomerID           string    `json:"customer_id"`
	CustomerName         string    `json:"customer_name,omitempty"`
	OriginalDefaultAppID string    `json:"original_default_app_id"`
	RecoveryReasonID     string    `json:"recovery_reason_id"`
	ReasonContent        string    `json:"reason_content,omitempty"`
	ApplicantID          string    `json:"applicant_id"`
	ApplicantName        string    `json:"applicant_name,omitempty"`
	ApplyTime            time.Time `json:"apply_time"`
	ReviewDTO
}

func toReviewDTO(r review.Record, auditorName string) ReviewDTO {
	return ReviewDTO{
		AuditStatus:  r.Status().String(),
		AuditorID:    r.AuditorID(),
		AuditorName:  auditorName,
		AuditTime:    r.AuditTime(),
		AuditRemarks: r.Remarks(),
	}
}

// ToDefaultApplicationDTO converts a bare application. Display names stay empty.
func ToDefaultApplicationDTO(a *defaultapp.Application) *DefaultApplicationDTO {
	if a == nil {
		return nil
	}
	return &DefaultApplicationDTO{
		AppID:           a.ID(),
		CustomerID:      a.CustomerID(),
		DefaultReasonID: a.ReasonID(),
		SeverityLevel:   a.Severity().String(),
		Remarks:         a.Remarks(),
		AttachmentURL:   a.AttachmentRef(),
		ApplicantID:     a.ApplicantID(),
		ApplyTime:       a.AppliedAt(),
		ReviewDTO:       toReviewDTO(a.Review(), ""),
	}
}

func DefaultSummaryToDTO(s *defaultapp.Summary) *DefaultApplicationDTO {
	if s == nil {
		return nil
	}
	d := ToDefaultApplicationDTO(s.Application)
	d.CustomerName = s.CustomerName
	d.ReasonContent = s.ReasonContent
	d.ApplicantName = s.ApplicantName
	d.AuditorName = s.AuditorName
	return d
}

func DefaultSummariesToDTO(list []*defaultapp.Summary) []*DefaultApplicationDTO {
	out := make([]*DefaultApplicationDTO, 0, len(list))
	for _, s := range list {
		out = append(out, DefaultSummaryToDTO(s))
	}
	return out
}

func ToRecoveryApplicationDTO(a *recoveryapp.Application) *RecoveryApplicationDTO {
	if a == nil {
		return nil
	}
	return &RecoveryApplicationDTO{
		RecoveryAppID:        a.ID(),
		CustomerID:           a.CustomerID(),
		OriginalDefaultAppID: a.OriginalDefaultAppID(),
		RecoveryReasonID:     a.ReasonID(),
		ApplicantID:          a.ApplicantID(),
		ApplyTime:            a.AppliedAt(),
		ReviewDTO:            toReviewDTO(a.Review(), ""),
	}
}

func RecoverySummaryToDTO(s *recoveryapp.Summary) *RecoveryApplicationDTO {
	if s == nil {
		return nil
	}
	d := ToRecoveryApplicationDTO(s.Application)
	d.CustomerName = s.CustomerName
	d.ReasonContent = s.ReasonContent
	d.ApplicantName = s.ApplicantName
	d.AuditorName = s.AuditorName
	return d
}

func RecoverySummariesToDTO(list []*recoveryapp.Summary) []*RecoveryApplicationDTO {
	out := make([]*RecoveryApplicationDTO, 0, len(list))
	for _, s := range list {
		out = append(out, RecoverySummaryToDTO(s))
	}
	return out
}
