package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/ridelabs/drivescore/internal/pkg/constants"
	"github.com/ridelabs/drivescore/internal/pkg/database"
	"github.com/ridelabs/drivescore/internal/pkg/models"
	"github.com/ridelabs/drivescore/services/roadclass"
)

// redisCache is a classification cache backed by Redis. TTL expiry is
// delegated to Redis key expiration, so there is no lazy-expiry bookkeeping
// and the memory bound holds across process restarts.
type redisCache struct {
	redisClient *database.RedisClient
	ttl         time.Duration
}

// NewRedisCache creates a Redis-backed classification cache
func NewRedisCache(redisClient *database.RedisClient, ttl time.Duration) roadclass.ClassificationCache {
	return &redisCache{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// Get returns the cached classification if the key has not expired
func (c *redisCache) Get(ctx context.Context, key string) (bool, bool, error) {
	value, err := c.redisClient.Get(ctx, fmt.Sprintf(constants.KeyRoadClass, key))
	if err == redis.Nil {
		if _, err := c.redisClient.Incr(ctx, constants.KeyRoadClassMisses); err != nil {
			return false, false, fmt.Errorf("failed to count cache miss: %w", err)
		}
		return false, false, nil
	}
	if err != nil {
		return false, false, fmt.Errorf("failed to read classification cache: %w", err)
	}

	if _, err := c.redisClient.Incr(ctx, constants.KeyRoadClassHits); err != nil {
		return false, false, fmt.Errorf("failed to count cache hit: %w", err)
	}
	return value == "1", true, nil
}

// Put stores a classification with the configured TTL
func (c *redisCache) Put(ctx context.Context, key string, onRoad bool) error {
	value := "0"
	if onRoad {
		value = "1"
	}
	if err := c.redisClient.Set(ctx, fmt.Sprintf(constants.KeyRoadClass, key), value, c.ttl); err != nil {
		return fmt.Errorf("failed to store classification: %w", err)
	}
	return nil
}

// Clear drops all cached classifications and both counters
func (c *redisCache) Clear(ctx context.Context) error {
	keys, err := c.redisClient.Keys(ctx, fmt.Sprintf(constants.KeyRoadClass, "*"))
	if err != nil {
		return fmt.Errorf("failed to list classification keys: %w", err)
	}

	keys = append(keys, constants.KeyRoadClassHits, constants.KeyRoadClassMisses)
	if err := c.redisClient.Delete(ctx, keys...); err != nil {
		return fmt.Errorf("failed to clear classification cache: %w", err)
	}
	return nil
}

// Stats reports entry count and the hit/miss counters
func (c *redisCache) Stats(ctx context.Context) (models.CacheStats, error) {
	keys, err := c.redisClient.Keys(ctx, fmt.Sprintf(constants.KeyRoadClass, "*"))
	if err != nil {
		return models.CacheStats{}, fmt.Errorf("failed to list classification keys: %w", err)
	}

	hits, err := c.counter(ctx, constants.KeyRoadClassHits)
	if err != nil {
		return models.CacheStats{}, err
	}
	misses, err := c.counter(ctx, constants.KeyRoadClassMisses)
	if err != nil {
		return models.CacheStats{}, err
	}

	stats := models.CacheStats{
		Entries: len(keys),
		Hits:    hits,
		Misses:  misses,
	}
	if total := hits + misses; total > 0 {
		stats.HitRate = float64(hits) / float64(total)
	}
	return stats, nil
}

func (c *redisCache) counter(ctx context.Context, key string) (int64, error) {
	value, err := c.redisClient.Get(ctx, key)
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read counter %s: %w", key, err)
	}

	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid counter value for %s: %w", key, err)
	}
	return n, nil
}
