package auth

import (
	"crypto/md5"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"weiyue/internal/domain/user"
)

const (
	SchemeMD5    = "md5"
	SchemeBcrypt = "bcrypt"
)

// NewPasswordHasher returns the hasher for the configured scheme.
func NewPasswordHasher(scheme string, bcryptCost int) (user.PasswordHasher, error) {
	switch scheme {
	case SchemeMD5, "":
		return NewMD5PasswordHasher(), nil
	case SchemeBcrypt:
		return NewBcryptPasswordHasher(bcryptCost), nil
	default:
		return nil, fmt.Errorf("unsupported password scheme: %s", scheme)
	}
}

// MD5PasswordHasher stores the unsalted hex MD5 digest. It matches the hashes
// already present in t_user_info and is weak; prefer bcrypt for new deployments.
type MD5PasswordHasher struct{}

func NewMD5PasswordHasher() *MD5PasswordHasher {
	return &MD5PasswordHasher{}
}

func (h *MD5PasswordHasher) Hash(password string) (string, error) {
	sum := md5.Sum([]byte(password))
	return hex.EncodeToString(sum[:]), nil
}

func (h *MD5PasswordHasher) Verify(password, hash string) error {
	want, _ := h.Hash(password)
	if subtle.ConstantTimeCompare([]byte(want), []byte(strings.ToLower(hash))) != 1 {
		return fmt.Errorf("password verification failed")
	}
	return nil
}

type BcryptPasswordHasher struct {
	cost int
}

func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHasher{cost: cost}
}

func (h *BcryptPasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to generate password hash: %w", err)
	}
	return string(hash), nil
}

func (h *BcryptPasswordHasher) Verify(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return fmt.Errorf("password verification failed")
	}
	return nil
}
