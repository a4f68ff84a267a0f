package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"weiyue/internal/domain/recoveryapp"
	"weiyue/internal/domain/review"
	"weiyue/internal/infrastructure/persistence/mappers"
	"weiyue/internal/infrastructure/persistence/models"
	"weiyue/internal/shared/db"
	"weiyue/internal/shared/logger"
)

const recoveryApplicationSelect = `a.*,
	COALESCE(c.customer_name, '') AS customer_name,
	COALESCE(r.recovery_content, '') AS reason_content,
	COALESCE(NULLIF(ap.real_name, ''), ap.user_name, '') AS applicant_name,
	COALESCE(NULLIF(au.real_name, ''), au.user_name, '') AS auditor_name`

type RecoveryApplicationRepository struct {
	db     *gorm.DB
	mapper mappers.ApplicationMapper
	logger logger.Interface
}

func NewRecoveryApplicationRepository(db *gorm.DB, logger logger.Interface) *RecoveryApplicationRepository {
	return &RecoveryApplicationRepository{
		db:     db,
		mapper: mappers.NewApplicationMapper(),
		logger: logger,
	}
}

func (r *RecoveryApplicationRepository) Create(ctx context.Context, a *recoveryapp.Application) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(r.mapper.RecoveryToModel(a)).Error; err != nil {
		return fmt.Errorf("failed to create recovery application: %w", err)
	}
	return nil
}

func (r *RecoveryApplicationRepository) GetByID(ctx context.Context, id string) (*recoveryapp.Application, error) {
	var model models.RecoveryApplicationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("recovery_app_id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get recovery application", "recovery_app_id", id, "error", err)
		return nil, fmt.Errorf("failed to get recovery application: %w", err)
	}

	return r.mapper.RecoveryToDomain(&model)
}

func (r *RecoveryApplicationRepository) SaveAudit(ctx context.Context, a *recoveryapp.Application) (int64, error) {
	rec := a.Review()
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.RecoveryApplicationModel{}).
		Where("recovery_app_id = ? AND audit_status = ?", a.ID(), review.StatusPending.String()).
		Updates(map[string]interface{}{
			"audit_status":  rec.Status().String(),
			"auditor_id":    rec.AuditorID(),
			"audit_time":    rec.AuditTime(),
			"audit_remarks": rec.Remarks(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to save recovery application audit", "recovery_app_id", a.ID(), "error", result.Error)
		return 0, fmt.Errorf("failed to save recovery application audit: %w", result.Error)
	}

	return result.RowsAffected, nil
}

func (r *RecoveryApplicationRepository) joined(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db).
		Table("t_recovery_application AS a").
		Joins("LEFT JOIN t_customer_info c ON c.customer_id = a.customer_id").
		Joins("LEFT JOIN t_recovery_reason r ON r.recovery_id = a.recovery_reason_id").
		Joins("LEFT JOIN t_user_info ap ON ap.user_id = a.applicant_id").
		Joins("LEFT JOIN t_user_info au ON au.user_id = a.auditor_id")
}

func (r *RecoveryApplicationRepository) GetSummary(ctx context.Context, id string) (*recoveryapp.Summary, error) {
	var rows []models.RecoveryApplicationRow
	err := r.joined(ctx).
		Select(recoveryApplicationSelect).
		Where("a.recovery_app_id = ?", id).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to get recovery application summary", "recovery_app_id", id, "error", err)
		return nil, fmt.Errorf("failed to get recovery application: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	return r.mapper.RecoveryRowToSummary(&rows[0])
}

func applyRecoveryFilter(q *gorm.DB, filter recoveryapp.Filter) *gorm.DB {
	if filter.CustomerID != "" {
		q = q.Where("a.customer_id = ?", filter.CustomerID)
	}
	if filter.CustomerName != "" {
		q = q.Where("c.customer_name LIKE ?", "%"+filter.CustomerName+"%")
	}
	if filter.Status != nil {
		q = q.Where("a.audit_status = ?", filter.Status.String())
	}
	return q
}

func (r *RecoveryApplicationRepository) List(ctx context.Context, filter recoveryapp.Filter) ([]*recoveryapp.Summary, int64, error) {
	var total int64
	if err := applyRecoveryFilter(r.joined(ctx), filter).Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count recovery applications", "error", err)
		return nil, 0, fmt.Errorf("failed to count recovery applications: %w", err)
	}

	q := applyRecoveryFilter(r.joined(ctx), filter).
		Select(recoveryApplicationSelect).
		Order("a.apply_time DESC").
		Order("a.recovery_app_id DESC")
	if filter.PageSize > 0 {
		q = q.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var rows []models.RecoveryApplicationRow
	if err := q.Scan(&rows).Error; err != nil {
		r.logger.Errorw("failed to list recovery applications", "error", err)
		return nil, 0, fmt.Errorf("failed to list recovery applications: %w", err)
	}

	summaries := make([]*recoveryapp.Summary, 0, len(rows))
	for i := range rows {
		s, err := r.mapper.RecoveryRowToSummary(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		summaries = append(summaries, s)
	}

	return summaries, total, nil
}
