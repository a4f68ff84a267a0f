package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"weiyue/internal/domain/customer"
	"weiyue/internal/infrastructure/persistence/mappers"
	"weiyue/internal/infrastructure/persistence/models"
	"weiyue/internal/shared/db"
	"weiyue/internal/shared/logger"
)

type CustomerRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewCustomerRepository(db *gorm.DB, logger logger.Interface) *CustomerRepository {
	return &CustomerRepository{db: db, logger: logger}
}

func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*customer.Customer, error) {
	var model models.CustomerModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("customer_id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get customer", "customer_id", id, "error", err)
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return mappers.CustomerToDomain(&model), nil
}

func (r *CustomerRepository) List(ctx context.Context, filter customer.Filter) ([]*customer.Customer, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.CustomerModel{})

	if filter.Name != "" {
		query = query.Where("customer_name LIKE ?", "%"+filter.Name+"%")
	}
	if filter.Defaulted != nil {
		query = query.Where("is_default = ?", *filter.Defaulted)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count customers", "error", err)
		return nil, 0, fmt.Errorf("failed to count customers: %w", err)
	}

	if filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var rows []models.CustomerModel
	if err := query.Order("customer_id ASC").Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list customers", "error", err)
		return nil, 0, fmt.Errorf("failed to list customers: %w", err)
	}

	return mappers.CustomersToDomain(rows), total, nil
}

func (r *CustomerRepository) ListDefaulted(ctx context.Context) ([]*customer.Customer, error) {
	var rows []models.CustomerModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("is_default = ?", true).Order("customer_id ASC").Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list defaulted customers", "error", err)
		return nil, fmt.Errorf("failed to list defaulted customers: %w", err)
	}

	return mappers.CustomersToDomain(rows), nil
}

func (r *CustomerRepository) SetDefaulted(ctx context.Context, id string, defaulted bool, at time.Time) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.CustomerModel{}).
		Where("customer_id = ?", id).
		Updates(map[string]interface{}{
			"is_default":  defaulted,
			"update_time": at,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update customer default flag", "customer_id", id, "error", result.Error)
		return 0, fmt.Errorf("failed to update customer default flag: %w", result.Error)
	}

	return result.RowsAffected, nil
}

func (r *CustomerRepository) Upsert(ctx context.Context, c *customer.Customer) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(mappers.CustomerToModel(c)).Error; err != nil {
		return fmt.Errorf("failed to upsert customer %s: %w", c.ID(), err)
	}
	return nil
}
