package customer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainCustomer "weiyue/internal/domain/customer"
	apperrors "weiyue/internal/shared/errors"
	"weiyue/internal/shared/logger"
)

type mockCustomerRepository struct {
	GetByIDFunc       func(ctx context.Context, id string) (*domainCustomer.Customer, error)
	ListFunc          func(ctx context.Context, filter domainCustomer.Filter) ([]*domainCustomer.Customer, int64, error)
	ListDefaultedFunc func(ctx context.Context) ([]*domainCustomer.Customer, error)
}

func (m *mockCustomerRepository) GetByID(ctx context.Context, id string) (*domainCustomer.Customer, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockCustomerRepository) List(ctx context.Context, filter domainCustomer.Filter) ([]*domainCustomer.Customer, int64, error) {
	return m.ListFunc(ctx, filter)
}

func (m *mockCustomerRepository) ListDefaulted(ctx context.Context) ([]*domainCustomer.Customer, error) {
	return m.ListDefaultedFunc(ctx)
}

func (m *mockCustomerRepository) SetDefaulted(ctx context.Context, id string, defaulted bool, at time.Time) (int64, error) {
	return 0, errors.New("not implemented")
}

func (m *mockCustomerRepository) Upsert(ctx context.Context, c *domainCustomer.Customer) error {
	return errors.New("not implemented")
}

var created = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestService_Get(t *testing.T) {
	repo := &mockCustomerRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*domainCustomer.Customer, error) {
			if id == "C1" {
				return domainCustomer.ReconstructCustomer("C1", "华东制造", "BBB", "制造业", "华东", true, created, created), nil
			}
			return nil, nil
		},
	}
	svc := NewService(repo, logger.NewDiscard())

	got, err := svc.Get(context.Background(), "C1")
	require.NoError(t, err)
	assert.Equal(t, "华东制造", got.CustomerName)
	assert.True(t, got.IsDefault)

	_, err = svc.Get(context.Background(), "C2")
	assert.True(t, apperrors.IsNotFoundError(err))

	_, err = svc.Get(context.Background(), " ")
	assert.True(t, apperrors.IsValidationError(err))
}

func TestService_List(t *testing.T) {
	var gotFilter domainCustomer.Filter
	repo := &mockCustomerRepository{
		ListFunc: func(ctx context.Context, filter domainCustomer.Filter) ([]*domainCustomer.Customer, int64, error) {
			gotFilter = filter
			return []*domainCustomer.Customer{
				domainCustomer.ReconstructCustomer("C1", "华东制造", "", "", "", false, created, created),
			}, 41, nil
		},
	}
	svc := NewService(repo, logger.NewDiscard())

	res, err := svc.List(context.Background(), ListQuery{Name: " 华东 ", PageSize: 500})

	require.NoError(t, err)
	assert.Equal(t, "华东", gotFilter.Name)
	assert.Equal(t, 1, gotFilter.Page)
	assert.Equal(t, maxPageSize, gotFilter.PageSize)
	assert.Equal(t, int64(41), res.Total)
	assert.Len(t, res.Customers, 1)
}

func TestService_ListDefaulted(t *testing.T) {
	t.Run("empty list is not nil", func(t *testing.T) {
		repo := &mockCustomerRepository{
			ListDefaultedFunc: func(ctx context.Context) ([]*domainCustomer.Customer, error) { return nil, nil },
		}
		got, err := NewService(repo, logger.NewDiscard()).ListDefaulted(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("repository failure is internal", func(t *testing.T) {
		repo := &mockCustomerRepository{
			ListDefaultedFunc: func(ctx context.Context) ([]*domainCustomer.Customer, error) {
				return nil, errors.New("boom")
			},
		}
		_, err := NewService(repo, logger.NewDiscard()).ListDefaulted(context.Background())
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrorTypeInternal, appErr.Type)
	})
}
