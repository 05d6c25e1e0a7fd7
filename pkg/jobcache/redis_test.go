package jobcache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/clipframe/clipframe/pkg/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

// fakeRedis returns canned commands without a live server.
type fakeRedis struct {
	setErr  error
	getBody string
	getErr  error

	lastKey string
	lastTTL time.Duration
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	f.lastKey = key
	f.lastTTL = expiration
	cmd := redis.NewStatusCmd(ctx)
	if f.setErr != nil {
		cmd.SetErr(f.setErr)
	}
	return cmd
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	f.lastKey = key
	cmd := redis.NewStringCmd(ctx)
	if f.getErr != nil {
		cmd.SetErr(f.getErr)
	} else {
		cmd.SetVal(f.getBody)
	}
	return cmd
}

func TestRedisCachePut(t *testing.T) {
	job := &models.Job{Id: "job-1", AccountId: "acct-1", Status: models.PROCESSING, Progress: 40}

	t.Run("Success", func(t *testing.T) {
		client := &fakeRedis{}
		cache := NewRedisCache(client, 10*time.Minute)

		err := cache.Put(context.Background(), job)

		assert.NoError(t, err)
		assert.Equal(t, "job:job-1", client.lastKey)
		assert.Equal(t, 10*time.Minute, client.lastTTL)
	})

	t.Run("Redis Error", func(t *testing.T) {
		client := &fakeRedis{setErr: errors.New("connection refused")}
		cache := NewRedisCache(client, 10*time.Minute)

		err := cache.Put(context.Background(), job)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to write job to cache")
	})
}

func TestRedisCacheGet(t *testing.T) {
	job := &models.Job{Id: "job-1", AccountId: "acct-1", Status: models.COMPLETE, Progress: 100}
	body, _ := json.Marshal(job)

	t.Run("Hit", func(t *testing.T) {
		client := &fakeRedis{getBody: string(body)}
		cache := NewRedisCache(client, 10*time.Minute)

		cached, err := cache.Get(context.Background(), "job-1")

		assert.NoError(t, err)
		assert.Equal(t, models.COMPLETE, cached.Status)
		assert.Equal(t, int32(100), cached.Progress)
	})

	t.Run("Miss", func(t *testing.T) {
		client := &fakeRedis{getErr: redis.Nil}
		cache := NewRedisCache(client, 10*time.Minute)

		_, err := cache.Get(context.Background(), "job-1")

		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("Redis Error", func(t *testing.T) {
		client := &fakeRedis{getErr: errors.New("connection refused")}
		cache := NewRedisCache(client, 10*time.Minute)

		_, err := cache.Get(context.Background(), "job-1")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read job from cache")
	})
}
