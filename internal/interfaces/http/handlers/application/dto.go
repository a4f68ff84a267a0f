package application

import (
	"weiyue/internal/application/lifecycle/dto"
	"weiyue/internal/application/lifecycle/usecases"
	"weiyue/internal/domain/defaultapp"
	"weiyue/internal/domain/review"
)

type CreateDefaultApplicationRequest struct {
	CustomerID      string  `json:"customer_id" binding:"required"`
	DefaultReasonID string  `json:"default_reason_id" binding:"required"`
	SeverityLevel   string  `json:"severity_level" binding:"required"`
	ApplicantID     string  `json:"applicant_id"`
	Remarks         *string `json:"remarks" binding:"omitempty,max=1000"`
	AttachmentURL   *string `json:"attachment_url" binding:"omitempty,max=255"`
}

func (r *CreateDefaultApplicationRequest) ToCommand(applicantID string) usecases.CreateDefaultApplicationCommand {
	return usecases.CreateDefaultApplicationCommand{
		CustomerID:    r.CustomerID,
		ReasonID:      r.DefaultReasonID,
		Severity:      NormalizeSeverity(r.SeverityLevel),
		ApplicantID:   applicantID,
		Remarks:       r.Remarks,
		AttachmentRef: r.AttachmentURL,
	}
}

type CreateRecoveryApplicationRequest struct {
	CustomerID           string `json:"customer_id" binding:"required"`
	OriginalDefaultAppID string `json:"original_default_app_id"`
	RecoveryReasonID     string `json:"recovery_reason_id" binding:"required"`
	ApplicantID          string `json:"applicant_id"`
}

func (r *CreateRecoveryApplicationRequest) ToCommand(applicantID string) usecases.CreateRecoveryApplicationCommand {
	return usecases.CreateRecoveryApplicationCommand{
		CustomerID:           r.CustomerID,
		OriginalDefaultAppID: r.OriginalDefaultAppID,
		ReasonID:             r.RecoveryReasonID,
		ApplicantID:          applicantID,
	}
}

// AuditRequest accepts approved/rejected or 同意/拒绝.
type AuditRequest struct {
	AuditorID    string  `json:"auditor_id"`
	AuditStatus  string  `json:"audit_status" binding:"required"`
	AuditRemarks *string `json:"audit_remarks" binding:"omitempty,max=1000"`
}

func (r *AuditRequest) ToCommand(appID, auditorID string) usecases.AuditCommand {
	return usecases.AuditCommand{
		AppID:     appID,
		AuditorID: auditorID,
		Decision:  NormalizeStatus(r.AuditStatus),
		Remarks:   r.AuditRemarks,
	}
}

// DefaultApplicationResponse adds display labels to the DTO.
type DefaultApplicationResponse struct {
	*dto.DefaultApplicationDTO
	AuditStatusLabel string `json:"audit_status_label"`
	SeverityLabel    string `json:"severity_label"`
}

type RecoveryApplicationResponse struct {
	*dto.RecoveryApplicationDTO
	AuditStatusLabel string `json:"audit_status_label"`
}

func toDefaultResponse(d *dto.DefaultApplicationDTO) *DefaultApplicationResponse {
	return &DefaultApplicationResponse{
		DefaultApplicationDTO: d,
		AuditStatusLabel:      StatusLabel(review.Status(d.AuditStatus)),
		SeverityLabel:         SeverityLabel(defaultapp.Severity(d.SeverityLevel)),
	}
}

func toDefaultResponses(list []*dto.DefaultApplicationDTO) []*DefaultApplicationResponse {
	out := make([]*DefaultApplicationResponse, 0, len(list))
	for _, d := range list {
		out = append(out, toDefaultResponse(d))
	}
	return out
}

func toRecoveryResponse(d *dto.RecoveryApplicationDTO) *RecoveryApplicationResponse {
	return &RecoveryApplicationResponse{
		RecoveryApplicationDTO: d,
		AuditStatusLabel:       StatusLabel(review.Status(d.AuditStatus)),
	}
}

func toRecoveryResponses(list []*dto.RecoveryApplicationDTO) []*RecoveryApplicationResponse {
	out := make([]*RecoveryApplicationResponse, 0, len(list))
	for _, d := range list {
		out = append(out, toRecoveryResponse(d))
	}
	return out
}
