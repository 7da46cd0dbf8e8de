package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/finance-tracker/planner/internal/application/adapter"
	"github.com/finance-tracker/planner/internal/domain/entity"
)

// RedisInsightCache stores generated insights in Redis with a fixed TTL.
type RedisInsightCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisInsightCache creates a new Redis-backed insight cache.
func NewRedisInsightCache(client *redis.Client, ttl time.Duration) *RedisInsightCache {
	return &RedisInsightCache{client: client, ttl: ttl}
}

var _ adapter.InsightCache = (*RedisInsightCache)(nil)

// Get returns the cached insight, or nil on a miss.
func (c *RedisInsightCache) Get(ctx context.Context, key string) (*entity.AIInsight, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cached insight: %w", err)
	}

	var insight entity.AIInsight
	if err := json.Unmarshal(raw, &insight); err != nil {
		// A corrupt entry behaves like a miss and is overwritten on the next Set.
		return nil, nil
	}
	return &insight, nil
}

// Set stores an insight under key.
func (c *RedisInsightCache) Set(ctx context.Context, key string, insight *entity.AIInsight) error {
	raw, err := json.Marshal(insight)
	if err != nil {
		return fmt.Errorf("failed to encode insight: %w", err)
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache insight: %w", err)
	}
	return nil
}
