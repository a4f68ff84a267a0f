package mappers

import (
	"weiyue/internal/domain/reason"
	"weiyue/internal/infrastructure/persistence/models"
)

// ReasonToModel returns the row for the table matching the reason's kind:
// *models.DefaultReasonModel or *models.RecoveryReasonModel.
func ReasonToModel(r *reason.Reason) interface{} {
	if r.Kind() == reason.KindRecovery {
		return &models.RecoveryReasonModel{
			RecoveryID:      r.ID(),
			RecoveryContent: r.Content(),
			IsEnabled:       r.IsEnabled(),
			CreateTime:      r.CreatedAt(),
			UpdateTime:      r.UpdatedAt(),
		}
	}
	return &models.DefaultReasonModel{
		ReasonID:      r.ID(),
		ReasonContent: r.Content(),
		IsEnabled:     r.IsEnabled(),
		CreateTime:    r.CreatedAt(),
		UpdateTime:    r.UpdatedAt(),
	}
}

func ReasonRowToDomain(kind reason.Kind, row *models.ReasonRow) *reason.Reason {
	if row == nil {
		return nil
	}
	return reason.ReconstructReason(kind, row.ID, row.Content, row.IsEnabled, row.CreateTime, row.UpdateTime)
}

func ReasonRowsToDomain(kind reason.Kind, rows []models.ReasonRow) []*reason.Reason {
	out := make([]*reason.Reason, 0, len(rows))
	for i := range rows {
		out = append(out, ReasonRowToDomain(kind, &rows[i]))
	}
	return out
}
