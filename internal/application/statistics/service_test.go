package statistics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weiyue/internal/domain/customer"
	"weiyue/internal/infrastructure/cache"
	apperrors "weiyue/internal/shared/errors"
	"weiyue/internal/shared/logger"
)

type stubCustomers struct {
	customer.Repository
	defaulted []*customer.Customer
	err       error
	calls     int
}

func (s *stubCustomers) ListDefaulted(ctx context.Context) ([]*customer.Customer, error) {
	s.calls++
	return s.defaulted, s.err
}

type stubApprovals struct {
	times []time.Time
	err   error
}

func (s *stubApprovals) ApprovedAuditTimes(ctx context.Context) ([]time.Time, error) {
	return s.times, s.err
}

func defaultedCustomer(id, industry, region string) *customer.Customer {
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return customer.ReconstructCustomer(id, id, "", industry, region, true, at, at)
}

func TestService_Overview(t *testing.T) {
	customers := &stubCustomers{defaulted: []*customer.Customer{
		defaultedCustomer("C1", "制造业", "华东"),
		defaultedCustomer("C2", "制造业", "华北"),
		defaultedCustomer("C3", "地产", "华东"),
		defaultedCustomer("C4", "", "华东"),
		defaultedCustomer("C5", "金融", "西南"),
		defaultedCustomer("C6", "金融", "西南"),
	}}
	approvals := &stubApprovals{times: []time.Time{
		// 2024-03-31 20:00 UTC is already April in Asia/Shanghai.
		time.Date(2024, 3, 31, 20, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 10, 2, 0, 0, 0, time.UTC),
		time.Date(2024, 4, 2, 2, 0, 0, 0, time.UTC),
	}}
	svc := NewService(customers, approvals, cache.NoopStatisticsCache{}, logger.NewDiscard())

	got, err := svc.Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []Share{
		{Name: "制造业", Count: 2, Percentage: 33.33},
		{Name: "金融", Count: 2, Percentage: 33.33},
		{Name: "地产", Count: 1, Percentage: 16.67},
		{Name: "未分类", Count: 1, Percentage: 16.67},
	}, got.Industry)
	assert.Equal(t, []Share{
		{Name: "华东", Count: 3, Percentage: 50},
		{Name: "西南", Count: 2, Percentage: 33.33},
		{Name: "华北", Count: 1, Percentage: 16.67},
	}, got.Region)
	assert.Equal(t, []TrendPoint{
		{Date: "2024-03", Count: 1},
		{Date: "2024-04", Count: 2},
	}, got.Trend)
}

func TestService_Overview_Empty(t *testing.T) {
	svc := NewService(&stubCustomers{}, &stubApprovals{}, cache.NoopStatisticsCache{}, logger.NewDiscard())

	got, err := svc.Overview(context.Background())

	require.NoError(t, err)
	assert.Empty(t, got.Industry)
	assert.Empty(t, got.Region)
	assert.Empty(t, got.Trend)
}

func TestService_Overview_RepositoryFailure(t *testing.T) {
	svc := NewService(&stubCustomers{err: errors.New("db down")}, &stubApprovals{}, cache.NoopStatisticsCache{}, logger.NewDiscard())

	_, err := svc.Overview(context.Background())

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeInternal, appErr.Type)
}

func TestService_Overview_Cached(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	customers := &stubCustomers{defaulted: []*customer.Customer{defaultedCustomer("C1", "制造业", "华东")}}
	svc := NewService(customers, &stubApprovals{}, cache.NewRedisStatisticsCache(client, time.Minute), logger.NewDiscard())
	ctx := context.Background()

	first, err := svc.Overview(ctx)
	require.NoError(t, err)
	second, err := svc.Overview(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, customers.calls)

	require.NoError(t, svc.Invalidate(ctx))
	_, err = svc.Overview(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, customers.calls)
}
