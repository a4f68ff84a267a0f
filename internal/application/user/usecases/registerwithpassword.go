package usecases

import (
	"context"
	"strings"
	"time"

	"weiyue/internal/application/user/dto"
	"weiyue/internal/domain/user"
	"weiyue/internal/shared/biztime"
	"weiyue/internal/shared/errors"
	"weiyue/internal/shared/id"
	"weiyue/internal/shared/logger"
)

type RegisterWithPasswordCommand struct {
	Username   string
	Password   string
	RealName   string
	Department string
	Role       string
	Phone      string
	Email      string
}

type RegisterWithPasswordUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	logger         logger.Interface
	newID          func() string
	now            func() time.Time
}

func NewRegisterWithPasswordUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	logger logger.Interface,
) *RegisterWithPasswordUseCase {
	return &RegisterWithPasswordUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		logger:         logger,
		newID:          id.NewUserID,
		now:            biztime.NowUTC,
	}
}

func (uc *RegisterWithPasswordUseCase) Execute(ctx context.Context, cmd RegisterWithPasswordCommand) (*dto.UserResponse, error) {
	username := strings.TrimSpace(cmd.Username)
	existing, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		uc.logger.Errorw("failed to check username existence", "error", err)
		return nil, errors.NewInternalError("failed to check username")
	}
	if existing != nil {
		return nil, errors.NewConflictError("username already exists")
	}

	newUser, err := user.NewUser(uc.newID(), username, cmd.Password, user.Profile{
		RealName:   strings.TrimSpace(cmd.RealName),
		Department: strings.TrimSpace(cmd.Department),
		Role:       strings.TrimSpace(cmd.Role),
		Phone:      strings.TrimSpace(cmd.Phone),
		Email:      strings.TrimSpace(cmd.Email),
	}, uc.passwordHasher, uc.now())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, errors.NewInternalError("failed to create user")
	}

	uc.logger.Infow("user registered successfully", "user_id", newUser.ID())
	return dto.ToUserResponse(newUser), nil
}
