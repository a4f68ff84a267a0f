package usecases

import (
	"context"
	"strings"

	"weiyue/internal/application/user/dto"
	"weiyue/internal/domain/user"
	"weiyue/internal/infrastructure/auth"
	"weiyue/internal/shared/errors"
	"weiyue/internal/shared/logger"
)

type JWTService interface {
	Generate(userID, username, role string) (*auth.Token, error)
}

type LoginWithPasswordCommand struct {
	Username string
	Password string
}

type LoginWithPasswordUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	jwtService     JWTService
	logger         logger.Interface
}

func NewLoginWithPasswordUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	jwtService JWTService,
	logger logger.Interface,
) *LoginWithPasswordUseCase {
	return &LoginWithPasswordUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		jwtService:     jwtService,
		logger:         logger,
	}
}

func (uc *LoginWithPasswordUseCase) Execute(ctx context.Context, cmd LoginWithPasswordCommand) (*dto.LoginResponse, error) {
	username := strings.TrimSpace(cmd.Username)
	if username == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("username and password are required")
	}

	existingUser, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		uc.logger.Errorw("failed to get user by username", "error", err)
		return nil, errors.NewInternalError("failed to get user")
	}

	// Same message for unknown user and wrong password.
	if existingUser == nil {
		return nil, errors.NewUnauthorizedError("invalid username or password")
	}
	if err := existingUser.VerifyPassword(cmd.Password, uc.passwordHasher); err != nil {
		uc.logger.Warnw("password mismatch", "user_id", existingUser.ID())
		return nil, errors.NewUnauthorizedError("invalid username or password")
	}

	token, err := uc.jwtService.Generate(existingUser.ID(), existingUser.Username(), existingUser.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue access token", "user_id", existingUser.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue access token")
	}

	uc.logger.Infow("user logged in successfully", "user_id", existingUser.ID())

	return &dto.LoginResponse{
		User:        dto.ToUserResponse(existingUser),
		AccessToken: token.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   token.ExpiresIn,
	}, nil
}
