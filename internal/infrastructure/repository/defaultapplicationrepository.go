package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"weiyue/internal/domain/defaultapp"
	"weiyue/internal/domain/review"
	"weiyue/internal/infrastructure/persistence/mappers"
	"weiyue/internal/infrastructure/persistence/models"
	"weiyue/internal/shared/db"
	"weiyue/internal/shared/logger"
)

const defaultApplicationSelect = `a.*,
	COALESCE(c.customer_name, '') AS customer_name,
	COALESCE(r.reason_content, '') AS reason_content,
	COALESCE(NULLIF(ap.real_name, ''), ap.user_name, '') AS applicant_name,
	COALESCE(NULLIF(au.real_name, ''), au.user_name, '') AS auditor_name`

type DefaultApplicationRepository struct {
	db     *gorm.DB
	mapper mappers.ApplicationMapper
	logger logger.Interface
}

func NewDefaultApplicationRepository(db *gorm.DB, logger logger.Interface) *DefaultApplicationRepository {
	return &DefaultApplicationRepository{
		db:     db,
		mapper: mappers.NewApplicationMapper(),
		logger: logger,
	}
}

func (r *DefaultApplicationRepository) Create(ctx context.Context, a *defaultapp.Application) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(r.mapper.DefaultToModel(a)).Error; err != nil {
		return fmt.Errorf("failed to create default application: %w", err)
	}
	return nil
}

func (r *DefaultApplicationRepository) GetByID(ctx context.Context, id string) (*defaultapp.Application, error) {
	var model models.DefaultApplicationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("app_id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get default application", "app_id", id, "error", err)
		return nil, fmt.Errorf("failed to get default application: %w", err)
	}

	return r.mapper.DefaultToDomain(&model)
}

func (r *DefaultApplicationRepository) LatestForCustomer(ctx context.Context, customerID string) (*defaultapp.Application, error) {
	var model models.DefaultApplicationModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("customer_id = ?", customerID).
		Order("apply_time DESC").
		Order("app_id DESC").
		Take(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get latest default application", "customer_id", customerID, "error", err)
		return nil, fmt.Errorf("failed to get latest default application: %w", err)
	}

	return r.mapper.DefaultToDomain(&model)
}

func (r *DefaultApplicationRepository) SaveAudit(ctx context.Context, a *defaultapp.Application) (int64, error) {
	rec := a.Review()
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.DefaultApplicationModel{}).
		Where("app_id = ? AND audit_status = ?", a.ID(), review.StatusPending.String()).
		Updates(map[string]interface{}{
			"audit_status":  rec.Status().String(),
			"auditor_id":    rec.AuditorID(),
			"audit_time":    rec.AuditTime(),
			"audit_remarks": rec.Remarks(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to save default application audit", "app_id", a.ID(), "error", result.Error)
		return 0, fmt.Errorf("failed to save default application audit: %w", result.Error)
	}

	return result.RowsAffected, nil
}

func (r *DefaultApplicationRepository) joined(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db).
		Table("t_default_application AS a").
		Joins("LEFT JOIN t_customer_info c ON c.customer_id = a.customer_id").
		Joins("LEFT JOIN t_default_reason r ON r.reason_id = a.default_reason_id").
		Joins("LEFT JOIN t_user_info ap ON ap.user_id = a.applicant_id").
		Joins("LEFT JOIN t_user_info au ON au.user_id = a.auditor_id")
}

func (r *DefaultApplicationRepository) GetSummary(ctx context.Context, id string) (*defaultapp.Summary, error) {
	var rows []models.DefaultApplicationRow
	err := r.joined(ctx).
		Select(defaultApplicationSelect).
		Where("a.app_id = ?", id).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to get default application summary", "app_id", id, "error", err)
		return nil, fmt.Errorf("failed to get default application: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	return r.mapper.DefaultRowToSummary(&rows[0])
}

func applyDefaultFilter(q *gorm.DB, filter defaultapp.Filter) *gorm.DB {
	if filter.CustomerID != "" {
		q = q.Where("a.customer_id = ?", filter.CustomerID)
	}
	if filter.CustomerName != "" {
		q = q.Where("c.customer_name LIKE ?", "%"+filter.CustomerName+"%")
	}
	if filter.Status != nil {
		q = q.Where("a.audit_status = ?", filter.Status.String())
	}
	if filter.AppliedFrom != nil {
		q = q.Where("a.apply_time >= ?", *filter.AppliedFrom)
	}
	if filter.AppliedTo != nil {
		q = q.Where("a.apply_time <= ?", *filter.AppliedTo)
	}
	if filter.AuditorName != "" {
		like := "%" + filter.AuditorName + "%"
		q = q.Where("(au.real_name LIKE ? OR au.user_name LIKE ?)", like, like)
	}
	return q
}

func (r *DefaultApplicationRepository) List(ctx context.Context, filter defaultapp.Filter) ([]*defaultapp.Summary, int64, error) {
	var total int64
	if err := applyDefaultFilter(r.joined(ctx), filter).Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count default applications", "error", err)
		return nil, 0, fmt.Errorf("failed to count default applications: %w", err)
	}

	q := applyDefaultFilter(r.joined(ctx), filter).
		Select(defaultApplicationSelect).
		Order("a.apply_time DESC").
		Order("a.app_id DESC")
	if filter.PageSize > 0 {
		q = q.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var rows []models.DefaultApplicationRow
	if err := q.Scan(&rows).Error; err != nil {
		r.logger.Errorw("failed to list default applications", "error", err)
		return nil, 0, fmt.Errorf("failed to list default applications: %w", err)
	}

	summaries := make([]*defaultapp.Summary, 0, len(rows))
	for i := range rows {
		s, err := r.mapper.DefaultRowToSummary(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		summaries = append(summaries, s)
	}

	return summaries, total, nil
}

func (r *DefaultApplicationRepository) ApprovedAuditTimes(ctx context.Context) ([]time.Time, error) {
	var times []time.Time
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Model(&models.DefaultApplicationModel{}).
		Where("audit_status = ? AND audit_time IS NOT NULL", review.StatusApproved.String()).
		Pluck("audit_time", &times).Error
	if err != nil {
		r.logger.Errorw("failed to load approved audit times", "error", err)
		return nil, fmt.Errorf("failed to load approved audit times: %w", err)
	}

	return times, nil
}
