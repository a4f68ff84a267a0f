package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weiyue/internal/infrastructure/auth"
	apperrors "weiyue/internal/shared/errors"
	"weiyue/internal/shared/logger"
)

func TestLoginWithPasswordUseCase_Execute(t *testing.T) {
	t.Run("valid credentials issue a bearer token", func(t *testing.T) {
		repo := newMockUserRepository()
		seedUser(repo, "USER00000001", "zhangsan", "secret", "auditor")
		var gotRole string
		jwt := &mockJWTService{GenerateFunc: func(userID, username, role string) (*auth.Token, error) {
			gotRole = role
			return &auth.Token{AccessToken: "abc", ExpiresIn: 600}, nil
		}}
		uc := NewLoginWithPasswordUseCase(repo, prefixHasher{}, jwt, logger.NewDiscard())

		resp, err := uc.Execute(context.Background(), LoginWithPasswordCommand{Username: " zhangsan ", Password: "secret"})

		require.NoError(t, err)
		assert.Equal(t, "abc", resp.AccessToken)
		assert.Equal(t, "Bearer", resp.TokenType)
		assert.Equal(t, int64(600), resp.ExpiresIn)
		assert.Equal(t, "USER00000001", resp.User.UserID)
		assert.Equal(t, "auditor", gotRole)
	})

	t.Run("unknown user and wrong password look the same", func(t *testing.T) {
		repo := newMockUserRepository()
		seedUser(repo, "USER00000001", "zhangsan", "secret", "")
		uc := NewLoginWithPasswordUseCase(repo, prefixHasher{}, &mockJWTService{}, logger.NewDiscard())

		_, errUnknown := uc.Execute(context.Background(), LoginWithPasswordCommand{Username: "lisi", Password: "secret"})
		_, errWrong := uc.Execute(context.Background(), LoginWithPasswordCommand{Username: "zhangsan", Password: "nope"})

		for _, err := range []error{errUnknown, errWrong} {
			appErr := apperrors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, apperrors.ErrorTypeUnauthorized, appErr.Type)
			assert.Equal(t, "invalid username or password", appErr.Message)
		}
	})

	t.Run("missing fields are a validation error", func(t *testing.T) {
		uc := NewLoginWithPasswordUseCase(newMockUserRepository(), prefixHasher{}, &mockJWTService{}, logger.NewDiscard())

		_, err := uc.Execute(context.Background(), LoginWithPasswordCommand{Username: "zhangsan"})

		assert.True(t, apperrors.IsValidationError(err))
	})

	t.Run("repository failure is internal", func(t *testing.T) {
		repo := newMockUserRepository()
		repo.getErr = errors.New("connection refused")
		uc := NewLoginWithPasswordUseCase(repo, prefixHasher{}, &mockJWTService{}, logger.NewDiscard())

		_, err := uc.Execute(context.Background(), LoginWithPasswordCommand{Username: "zhangsan", Password: "x"})

		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrorTypeInternal, appErr.Type)
	})
}
