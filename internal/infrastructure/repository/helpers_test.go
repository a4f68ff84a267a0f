package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"weiyue/internal/domain/customer"
	"weiyue/internal/domain/user"
	"weiyue/internal/infrastructure/persistence/models"
	"weiyue/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)

	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(models.All()...))
	return database
}

type plainHasher struct{}

func (plainHasher) Hash(p string) (string, error) { return "h:" + p, nil }
func (plainHasher) Verify(p, h string) error {
	if "h:"+p != h {
		return errors.New("password mismatch")
	}
	return nil
}

func seedCustomer(t *testing.T, database *gorm.DB, id, name string) {
	t.Helper()
	repo := NewCustomerRepository(database, logger.NewDiscard())
	c := customer.NewCustomer(id, name, "BBB", "制造业", "华东", time.Now().UTC())
	require.NoError(t, repo.Upsert(context.Background(), c))
}

func seedUser(t *testing.T, database *gorm.DB, id, username, realName string) {
	t.Helper()
	repo := NewUserRepository(database, logger.NewDiscard())
	u, err := user.NewUser(id, username, "pw", user.Profile{RealName: realName}, plainHasher{}, time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), u))
}
