package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})
	return mr, client
}

func TestRedisStatisticsCache(t *testing.T) {
	mr, client := setupTestRedis(t)
	c := NewRedisStatisticsCache(client, time.Minute)
	ctx := context.Background()

	_, ok, err := c.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, []byte(`{"trend":[]}`)))

	payload, ok, err := c.Get(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"trend":[]}`, string(payload))

	mr.FastForward(2 * time.Minute)
	_, ok, err = c.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, []byte(`{}`)))
	require.NoError(t, c.Invalidate(ctx))
	_, ok, err = c.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStatisticsCache_ServerDown(t *testing.T) {
	mr, client := setupTestRedis(t)
	c := NewRedisStatisticsCache(client, time.Minute)
	mr.Close()

	_, _, err := c.Get(context.Background())
	assert.Error(t, err)
}

func TestNoopStatisticsCache(t *testing.T) {
	var c StatisticsCache = NoopStatisticsCache{}
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, []byte("x")))
	_, ok, err := c.Get(ctx)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, c.Invalidate(ctx))
}
