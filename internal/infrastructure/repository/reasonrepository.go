package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"weiyue/internal/domain/reason"
	"weiyue/internal/infrastructure/persistence/mappers"
	"weiyue/internal/infrastructure/persistence/models"
	"weiyue/internal/shared/db"
	"weiyue/internal/shared/logger"
)

// reasonTable describes where one reason kind is stored.
type reasonTable struct {
	name          string
	idColumn      string
	contentColumn string
}

var reasonTables = map[reason.Kind]reasonTable{
	reason.KindDefault:  {name: "t_default_reason", idColumn: "reason_id", contentColumn: "reason_content"},
	reason.KindRecovery: {name: "t_recovery_reason", idColumn: "recovery_id", contentColumn: "recovery_content"},
}

// ReasonRepository serves both reason tables, selected by kind.
type ReasonRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewReasonRepository(db *gorm.DB, logger logger.Interface) *ReasonRepository {
	return &ReasonRepository{db: db, logger: logger}
}

func (r *ReasonRepository) table(kind reason.Kind) (reasonTable, error) {
	t, ok := reasonTables[kind]
	if !ok {
		return reasonTable{}, fmt.Errorf("unknown reason kind: %s", kind)
	}
	return t, nil
}

func (r *ReasonRepository) query(ctx context.Context, t reasonTable) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db).
		Table(t.name).
		Select(fmt.Sprintf("%s AS id, %s AS content, is_enabled, create_time, update_time", t.idColumn, t.contentColumn))
}

func (r *ReasonRepository) ListEnabled(ctx context.Context, kind reason.Kind) ([]*reason.Reason, error) {
	return r.list(ctx, kind, true)
}

func (r *ReasonRepository) ListAll(ctx context.Context, kind reason.Kind) ([]*reason.Reason, error) {
	return r.list(ctx, kind, false)
}

func (r *ReasonRepository) list(ctx context.Context, kind reason.Kind, enabledOnly bool) ([]*reason.Reason, error) {
	t, err := r.table(kind)
	if err != nil {
		return nil, err
	}

	q := r.query(ctx, t)
	if enabledOnly {
		q = q.Where("is_enabled = ?", true)
	}

	var rows []models.ReasonRow
	if err := q.Order("create_time DESC").Order(t.idColumn + " DESC").Scan(&rows).Error; err != nil {
		r.logger.Errorw("failed to list reasons", "kind", kind, "error", err)
		return nil, fmt.Errorf("failed to list %s reasons: %w", kind, err)
	}

	return mappers.ReasonRowsToDomain(kind, rows), nil
}

func (r *ReasonRepository) GetByID(ctx context.Context, kind reason.Kind, id string) (*reason.Reason, error) {
	t, err := r.table(kind)
	if err != nil {
		return nil, err
	}

	var row models.ReasonRow
	if err := r.query(ctx, t).Where(t.idColumn+" = ?", id).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get reason", "kind", kind, "id", id, "error", err)
		return nil, fmt.Errorf("failed to get %s reason: %w", kind, err)
	}

	return mappers.ReasonRowToDomain(kind, &row), nil
}

func (r *ReasonRepository) Create(ctx context.Context, rs *reason.Reason) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(mappers.ReasonToModel(rs)).Error; err != nil {
		return fmt.Errorf("failed to create %s reason: %w", rs.Kind(), err)
	}
	return nil
}

func (r *ReasonRepository) Update(ctx context.Context, kind reason.Kind, id string, p reason.Patch, updatedAt time.Time) (int64, error) {
	t, err := r.table(kind)
	if err != nil {
		return 0, err
	}

	values := map[string]interface{}{"update_time": updatedAt}
	if p.Content != nil {
		values[t.contentColumn] = *p.Content
	}
	if p.Enabled != nil {
		values["is_enabled"] = *p.Enabled
	}

	result := db.GetTxFromContext(ctx, r.db).Table(t.name).Where(t.idColumn+" = ?", id).Updates(values)
	if result.Error != nil {
		r.logger.Errorw("failed to update reason", "kind", kind, "id", id, "error", result.Error)
		return 0, fmt.Errorf("failed to update %s reason: %w", kind, result.Error)
	}

	return result.RowsAffected, nil
}
