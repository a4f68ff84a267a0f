package mappers

import (
	"weiyue/internal/domain/user"
	"weiyue/internal/infrastructure/persistence/models"
)

func UserToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		UserID:     u.ID(),
		UserName:   u.Username(),
		RealName:   u.RealName(),
		Department: u.Department(),
		Role:       u.Role(),
		Password:   u.PasswordHash(),
		Phone:      u.Phone(),
		Email:      u.Email(),
		CreateTime: u.CreatedAt(),
		UpdateTime: u.UpdatedAt(),
	}
}

func UserToDomain(m *models.UserModel) *user.User {
	if m == nil {
		return nil
	}
	return user.ReconstructUser(
		m.UserID,
		m.UserName,
		m.Password,
		user.Profile{
			RealName:   m.RealName,
			Department: m.Department,
			Role:       m.Role,
			Phone:      m.Phone,
			Email:      m.Email,
		},
		m.CreateTime,
		m.UpdateTime,
	)
}
