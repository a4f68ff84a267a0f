package user

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type plainHasher struct {
	hashErr error
}

func (h plainHasher) Hash(password string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}
	return "h:" + password, nil
}

func (h plainHasher) Verify(password, hash string) error {
	if "h:"+password != hash {
		return errors.New("mismatch")
	}
	return nil
}

func TestNewUser(t *testing.T) {
	now := time.Now().UTC()

	t.Run("valid", func(t *testing.T) {
		u, err := NewUser("USER0A1B2C3D", " zhangsan ", "secret", Profile{RealName: "张三", Role: "auditor"}, plainHasher{}, now)
		require.NoError(t, err)
		assert.Equal(t, "zhangsan", u.Username())
		assert.Equal(t, "h:secret", u.PasswordHash())
		assert.Equal(t, "张三", u.DisplayName())
		assert.Equal(t, "auditor", u.Profile().Role)
	})

	t.Run("missing username", func(t *testing.T) {
		_, err := NewUser("USER0A1B2C3D", "  ", "secret", Profile{}, plainHasher{}, now)
		assert.Error(t, err)
	})

	t.Run("missing password", func(t *testing.T) {
		_, err := NewUser("USER0A1B2C3D", "lisi", "", Profile{}, plainHasher{}, now)
		assert.Error(t, err)
	})

	t.Run("hash failure", func(t *testing.T) {
		_, err := NewUser("USER0A1B2C3D", "lisi", "pw", Profile{}, plainHasher{hashErr: errors.New("boom")}, now)
		assert.ErrorContains(t, err, "failed to hash password")
	})
}

func TestUser_VerifyPassword(t *testing.T) {
	u := ReconstructUser("USER1", "wangwu", "h:pw", Profile{}, time.Now(), time.Now())

	assert.NoError(t, u.VerifyPassword("pw", plainHasher{}))
	assert.Error(t, u.VerifyPassword("wrong", plainHasher{}))
	assert.Equal(t, "wangwu", u.DisplayName())

	empty := ReconstructUser("USER2", "x", "", Profile{}, time.Now(), time.Now())
	assert.Error(t, empty.VerifyPassword("", plainHasher{}))
}
