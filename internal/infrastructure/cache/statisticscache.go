package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const statisticsOverviewKey = "weiyue:statistics:overview"

// StatisticsCache stores the serialised statistics overview.
type StatisticsCache interface {
	// Get returns the cached payload; ok is false on a miss.
	Get(ctx context.Context) (payload []byte, ok bool, err error)
	Set(ctx context.Context, payload []byte) error
	Invalidate(ctx context.Context) error
}

type RedisStatisticsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStatisticsCache(client *redis.Client, ttl time.Duration) *RedisStatisticsCache {
	return &RedisStatisticsCache{client: client, ttl: ttl}
}

func (c *RedisStatisticsCache) Get(ctx context.Context) ([]byte, bool, error) {
	payload, err := c.client.Get(ctx, statisticsOverviewKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read statistics cache: %w", err)
	}
	return payload, true, nil
}

func (c *RedisStatisticsCache) Set(ctx context.Context, payload []byte) error {
	if err := c.client.Set(ctx, statisticsOverviewKey, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write statistics cache: %w", err)
	}
	return nil
}

func (c *RedisStatisticsCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, statisticsOverviewKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate statistics cache: %w", err)
	}
	return nil
}

// NoopStatisticsCache always misses. It is used when Redis is disabled.
type NoopStatisticsCache struct{}

func (NoopStatisticsCache) Get(context.Context) ([]byte, bool, error) { return nil, false, nil }
func (NoopStatisticsCache) Set(context.Context, []byte) error         { return nil }
func (NoopStatisticsCache) Invalidate(context.Context) error          { return nil }
