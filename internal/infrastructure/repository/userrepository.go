package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"weiyue/internal/domain/user"
	"weiyue/internal/infrastructure/persistence/mappers"
	"weiyue/internal/infrastructure/persistence/models"
	"weiyue/internal/shared/db"
	apperrors "weiyue/internal/shared/errors"
	"weiyue/internal/shared/logger"
)

type UserRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewUserRepository(db *gorm.DB, logger logger.Interface) *UserRepository {
	return &UserRepository{db: db, logger: logger}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(mappers.UserToModel(u)).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("username already exists")
		}
		r.logger.Errorw("failed to create user", "username", u.Username(), "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	return r.getBy(ctx, "user_id", id)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	return r.getBy(ctx, "user_name", username)
}

func (r *UserRepository) getBy(ctx context.Context, column, value string) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where(column+" = ?", value).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get user", column, value, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return mappers.UserToDomain(&model), nil
}

func (r *UserRepository) Upsert(ctx context.Context, u *user.User) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(mappers.UserToModel(u)).Error; err != nil {
		return fmt.Errorf("failed to upsert user %s: %w", u.Username(), err)
	}
	return nil
}
