package db

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockGateway(t *testing.T) (*Gateway, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)

	return NewGateway(gdb), mock
}

func markDefaulted(ctx context.Context, g *Gateway) error {
	return g.Conn(ctx).Exec("UPDATE t_customer_info SET is_default = ? WHERE customer_id = ?", true, "C001").Error
}

func TestGateway_Run_CommitsOnSuccess(t *testing.T) {
	g, mock := newMockGateway(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE t_customer_info").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := g.Run(context.Background(), func(ctx context.Context) error {
		return markDefaulted(ctx, g)
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGateway_Run_RollsBackOnStatementError(t *testing.T) {
	g, mock := newMockGateway(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE t_customer_info").WillReturnError(errors.New("connection lost"))
	mock.ExpectRollback()

	err := g.Run(context.Background(), func(ctx context.Context) error {
		return markDefaulted(ctx, g)
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection lost")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGateway_Run_RollsBackOnCallbackError(t *testing.T) {
	g, mock := newMockGateway(t)
	sentinel := errors.New("validation failed after write")

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE t_customer_info").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	err := g.Run(context.Background(), func(ctx context.Context) error {
		if err := markDefaulted(ctx, g); err != nil {
			return err
		}
		return sentinel
	})

	assert.ErrorIs(t, err, sentinel)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGateway_Run_RollsBackOnPanic(t *testing.T) {
	g, mock := newMockGateway(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = g.Run(context.Background(), func(ctx context.Context) error {
			panic("boom")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGateway_Run_NestedJoinsOuterTransaction(t *testing.T) {
	g, mock := newMockGateway(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE t_customer_info").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE t_customer_info").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := g.Run(context.Background(), func(ctx context.Context) error {
		if err := markDefaulted(ctx, g); err != nil {
			return err
		}
		return g.Run(ctx, func(inner context.Context) error {
			return markDefaulted(inner, g)
		})
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGateway_Run_BeginFailure(t *testing.T) {
	g, mock := newMockGateway(t)

	mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

	called := false
	err := g.Run(context.Background(), func(ctx context.Context) error {
		called = true
		return nil
	})

	require.Error(t, err)
	assert.False(t, called)
	assert.NoError(t, mock.ExpectationsWereMet())
}
