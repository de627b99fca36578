package rediscache

import (
	"context"
	"errors"
	"time"

	"github.com/gdugdh24/mpit2026-discovery/internal/domain"
	"github.com/redis/go-redis/v9"
)

const categoryKeyPrefix = "discovery:event_category:"

// CategoryCache stores event classifications in Redis.
type CategoryCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCategoryCache(client *redis.Client, ttl time.Duration) *CategoryCache {
	return &CategoryCache{client: client, ttl: ttl}
}

func (c *CategoryCache) Get(ctx context.Context, key string) (domain.Category, bool, error) {
	val, err := c.client.Get(ctx, categoryKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return domain.Category(val), true, nil
}

func (c *CategoryCache) Set(ctx context.Context, key string, category domain.Category) error {
	return c.client.Set(ctx, categoryKeyPrefix+key, string(category), c.ttl).Err()
}
