package dto

import (
	"time"

	"weiyue/internal/domain/user"
)

// UserResponse never carries the password hash.
type UserResponse struct {
	UserID     string    `json:"user_id"`
	Username   string    `json:"user_name"`
	RealName   string    `json:"real_name"`
	Department string    `json:"department"`
	Role       string    `json:"role"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email"`
	CreatedAt  time.Time `json:"create_time"`
}

type LoginResponse struct {
	User        *UserResponse `json:"user"`
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
	ExpiresIn   int64         `json:"expires_in"`
}

func ToUserResponse(u *user.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		UserID:     u.ID(),
		Username:   u.Username(),
		RealName:   u.RealName(),
		Department: u.Department(),
		Role:       u.Role(),
		Phone:      u.Phone(),
		Email:      u.Email(),
		CreatedAt:  u.CreatedAt(),
	}
}
