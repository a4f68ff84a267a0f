// Package user models the staff accounts that apply for and audit applications.
package user

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// PasswordHasher hashes and verifies login passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// User is a staff account. Role is free text; no permissions hang off it.
type User struct {
	id           string
	username     string
	realName     string
	department   string
	role         string
	passwordHash string
	phone        string
	email        string
	createdAt    time.Time
	updatedAt    time.Time
}

// Profile carries the optional descriptive fields of a user.
type Profile struct {
	RealName   string
	Department string
	Role       string
	Phone      string
	Email      string
}

func NewUser(id, username, password string, profile Profile, hasher PasswordHasher, now time.Time) (*User, error) {
	username = strings.TrimSpace(username)
	if id == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if len(username) > 50 {
		return nil, fmt.Errorf("username exceeds maximum length of 50 characters")
	}
	if password == "" {
		return nil, fmt.Errorf("password is required")
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	return &User{
		id:           id,
		username:     username,
		realName:     profile.RealName,
		department:   profile.Department,
		role:         profile.Role,
		passwordHash: hash,
		phone:        profile.Phone,
		email:        profile.Email,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(id, username, passwordHash string, profile Profile, createdAt, updatedAt time.Time) *User {
	return &User{
		id:           id,
		username:     username,
		realName:     profile.RealName,
		department:   profile.Department,
		role:         profile.Role,
		passwordHash: passwordHash,
		phone:        profile.Phone,
		email:        profile.Email,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() string           { return u.id }
func (u *User) Username() string     { return u.username }
func (u *User) RealName() string     { return u.realName }
func (u *User) Department() string   { return u.department }
func (u *User) Role() string         { return u.role }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Phone() string        { return u.phone }
func (u *User) Email() string        { return u.email }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// DisplayName prefers the real name over the login name.
func (u *User) DisplayName() string {
	if u.realName != "" {
		return u.realName
	}
	return u.username
}

func (u *User) Profile() Profile {
	return Profile{
		RealName:   u.realName,
		Department: u.department,
		Role:       u.role,
		Phone:      u.phone,
		Email:      u.email,
	}
}

func (u *User) VerifyPassword(password string, hasher PasswordHasher) error {
	if u.passwordHash == "" {
		return fmt.Errorf("user has no password set")
	}
	if err := hasher.Verify(password, u.passwordHash); err != nil {
		return fmt.Errorf("invalid password")
	}
	return nil
}

type Repository interface {
	Create(ctx context.Context, u *User) error
	// GetByID returns nil, nil when the user does not exist.
	GetByID(ctx context.Context, id string) (*User, error)
	// GetByUsername returns nil, nil when the user does not exist.
	GetByUsername(ctx context.Context, username string) (*User, error)
	// Upsert inserts or replaces a user row.
	Upsert(ctx context.Context, u *User) error
}
