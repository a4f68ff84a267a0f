package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"weiyue/internal/domain/user"
	"weiyue/internal/infrastructure/auth"
)

type mockUserRepository struct {
	users         map[string]*user.User
	getErr        error
	createErr     error
	createdUserID string
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: make(map[string]*user.User)}
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.users[u.ID()] = u
	m.createdUserID = u.ID()
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.users[id], nil
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	for _, u := range m.users {
		if u.Username() == username {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepository) Upsert(ctx context.Context, u *user.User) error {
	m.users[u.ID()] = u
	return nil
}

// prefixHasher stores "hashed:" + password.
type prefixHasher struct{}

func (prefixHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (prefixHasher) Verify(password, hash string) error {
	if strings.TrimPrefix(hash, "hashed:") != password {
		return errors.New("password mismatch")
	}
	return nil
}

type mockJWTService struct {
	GenerateFunc func(userID, username, role string) (*auth.Token, error)
}

func (m *mockJWTService) Generate(userID, username, role string) (*auth.Token, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, username, role)
	}
	return &auth.Token{AccessToken: "token-" + userID, ExpiresIn: 3600}, nil
}

var fixedNow = time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

func seedUser(repo *mockUserRepository, id, username, password, role string) *user.User {
	u, err := user.NewUser(id, username, password, user.Profile{RealName: "张三", Role: role}, prefixHasher{}, fixedNow)
	if err != nil {
		panic(err)
	}
	repo.users[id] = u
	return u
}
