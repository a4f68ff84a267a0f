// Package user provides login, registration and user lookup.
package user

import (
	"context"

	"weiyue/internal/application/user/dto"
	"weiyue/internal/application/user/usecases"
	domainUser "weiyue/internal/domain/user"
	"weiyue/internal/shared/logger"
)

// Service is the application service that orchestrates user use cases.
type Service struct {
	loginUC    *usecases.LoginWithPasswordUseCase
	registerUC *usecases.RegisterWithPasswordUseCase
	getUserUC  *usecases.GetUserUseCase
}

func NewService(
	userRepo domainUser.Repository,
	passwordHasher domainUser.PasswordHasher,
	jwtService usecases.JWTService,
	logger logger.Interface,
) *Service {
	return &Service{
		loginUC:    usecases.NewLoginWithPasswordUseCase(userRepo, passwordHasher, jwtService, logger),
		registerUC: usecases.NewRegisterWithPasswordUseCase(userRepo, passwordHasher, logger),
		getUserUC:  usecases.NewGetUserUseCase(userRepo, logger),
	}
}

func (s *Service) Login(ctx context.Context, cmd usecases.LoginWithPasswordCommand) (*dto.LoginResponse, error) {
	return s.loginUC.Execute(ctx, cmd)
}

func (s *Service) Register(ctx context.Context, cmd usecases.RegisterWithPasswordCommand) (*dto.UserResponse, error) {
	return s.registerUC.Execute(ctx, cmd)
}

func (s *Service) Get(ctx context.Context, userID string) (*dto.UserResponse, error) {
	return s.getUserUC.ExecuteByID(ctx, userID)
}
