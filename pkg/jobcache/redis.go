package jobcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/clipframe/clipframe/pkg/models"
	"github.com/redis/go-redis/v9"
)

// RedisAPI is the subset of the go-redis client used by the cache.
type RedisAPI interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// RedisCache implements Cache on Redis with a per-entry TTL.
type RedisCache struct {
	Client RedisAPI
	TTL    time.Duration
}

// NewRedisCache creates a new RedisCache.
func NewRedisCache(client RedisAPI, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

// Make sure we conform to the interface
var _ Cache = (*RedisCache)(nil)

func cacheKey(jobID string) string {
	return "job:" + jobID
}

// Put stores the job snapshot under its id.
func (c *RedisCache) Put(ctx context.Context, job *models.Job) error {
	body, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job for cache: %w", err)
	}

	if err := c.Client.Set(ctx, cacheKey(job.Id), body, c.TTL).Err(); err != nil {
		return fmt.Errorf("failed to write job to cache: %w", err)
	}

	return nil
}

// Get retrieves the job snapshot, or ErrCacheMiss if it is absent or expired.
func (c *RedisCache) Get(ctx context.Context, jobID string) (*models.Job, error) {
	body, err := c.Client.Get(ctx, cacheKey(jobID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to read job from cache: %w", err)
	}

	var job models.Job
	if err := json.Unmarshal(body, &job); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached job: %w", err)
	}

	return &job, nil
}
