package mappers

import (
	"fmt"

	"weiyue/internal/domain/defaultapp"
	"weiyue/internal/domain/recoveryapp"
	"weiyue/internal/domain/review"
	"weiyue/internal/infrastructure/persistence/models"
)

// ApplicationMapper converts default and recovery applications to and from rows.
type ApplicationMapper interface {
	DefaultToModel(a *defaultapp.Application) *models.DefaultApplicationModel
	DefaultToDomain(m *models.DefaultApplicationModel) (*defaultapp.Application, error)
	DefaultRowToSummary(row *models.DefaultApplicationRow) (*defaultapp.Summary, error)

	RecoveryToModel(a *recoveryapp.Application) *models.RecoveryApplicationModel
	RecoveryToDomain(m *models.RecoveryApplicationModel) (*recoveryapp.Application, error)
	RecoveryRowToSummary(row *models.RecoveryApplicationRow) (*recoveryapp.Summary, error)
}

type ApplicationMapperImpl struct{}

func NewApplicationMapper() ApplicationMapper {
	return &ApplicationMapperImpl{}
}

func (m *ApplicationMapperImpl) DefaultToModel(a *defaultapp.Application) *models.DefaultApplicationModel {
	rec := a.Review()
	return &models.DefaultApplicationModel{
		AppID:           a.ID(),
		CustomerID:      a.CustomerID(),
		DefaultReasonID: a.ReasonID(),
		SeverityLevel:   a.Severity().String(),
		Remarks:         a.Remarks(),
		AttachmentURL:   a.AttachmentRef(),
		ApplicantID:     a.ApplicantID(),
		ApplyTime:       a.AppliedAt(),
		AuditStatus:     rec.Status().String(),
		AuditorID:       rec.AuditorID(),
		AuditTime:       rec.AuditTime(),
		AuditRemarks:    rec.Remarks(),
	}
}

func (m *ApplicationMapperImpl) DefaultToDomain(model *models.DefaultApplicationModel) (*defaultapp.Application, error) {
	if model == nil {
		return nil, nil
	}

	severity, err := defaultapp.NewSeverity(model.SeverityLevel)
	if err != nil {
		return nil, fmt.Errorf("application %s: %w", model.AppID, err)
	}
	rec, err := review.ReconstructRecord(review.Status(model.AuditStatus), model.AuditorID, model.AuditTime, model.AuditRemarks)
	if err != nil {
		return nil, fmt.Errorf("application %s: %w", model.AppID, err)
	}

	return defaultapp.ReconstructApplication(
		model.AppID,
		model.CustomerID,
		model.DefaultReasonID,
		severity,
		model.ApplicantID,
		model.Remarks,
		model.AttachmentURL,
		model.ApplyTime,
		rec,
	), nil
}

func (m *ApplicationMapperImpl) DefaultRowToSummary(row *models.DefaultApplicationRow) (*defaultapp.Summary, error) {
	app, err := m.DefaultToDomain(&row.DefaultApplicationModel)
	if err != nil {
		return nil, err
	}
	return &defaultapp.Summary{
		Application:   app,
		CustomerName:  row.CustomerName,
		ReasonContent: row.ReasonContent,
		ApplicantName: row.ApplicantName,
		AuditorName:   row.AuditorName,
	}, nil
}

func (m *ApplicationMapperImpl) RecoveryToModel(a *recoveryapp.Application) *models.RecoveryApplicationModel {
	rec := a.Review()
	return &models.RecoveryApplicationModel{
		RecoveryAppID:        a.ID(),
		CustomerID:           a.CustomerID(),
		OriginalDefaultAppID: a.OriginalDefaultAppID(),
		RecoveryReasonID:     a.ReasonID(),
		ApplicantID:          a.ApplicantID(),
		ApplyTime:            a.AppliedAt(),
		AuditStatus:          rec.Status().String(),
		AuditorID:            rec.AuditorID(),
		AuditTime:            rec.AuditTime(),
		AuditRemarks:         rec.Remarks(),
	}
}

func (m *ApplicationMapperImpl) RecoveryToDomain(model *models.RecoveryApplicationModel) (*recoveryapp.Application, error) {
	if model == nil {
		return nil, nil
	}

	rec, err := review.ReconstructRecord(review.Status(model.AuditStatus), model.AuditorID, model.AuditTime, model.AuditRemarks)
	if err != nil {
		return nil, fmt.Errorf("recovery application %s: %w", model.RecoveryAppID, err)
	}

	return recoveryapp.ReconstructApplication(
		model.RecoveryAppID,
		model.CustomerID,
		model.OriginalDefaultAppID,
		model.RecoveryReasonID,
		model.ApplicantID,
		model.ApplyTime,
		rec,
	), nil
}

func (m *ApplicationMapperImpl) RecoveryRowToSummary(row *models.RecoveryApplicationRow) (*recoveryapp.Summary, error) {
	app, err := m.RecoveryToDomain(&row.RecoveryApplicationModel)
	if err != nil {
		return nil, err
	}
	return &recoveryapp.Summary{
		Application:   app,
		CustomerName:  row.CustomerName,
		ReasonContent: row.ReasonContent,
		ApplicantName: row.ApplicantName,
		AuditorName:   row.AuditorName,
	}, nil
}
