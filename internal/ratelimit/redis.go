package ratelimit

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

//go:embed token_bucket.lua
var tokenBucketScript string

// RedisLimiter runs the same whole-second token bucket as MemoryLimiter
// inside Redis, so multiple instances share one set of buckets. Eviction is
// handled by per-key TTLs instead of a sweep goroutine.
type RedisLimiter struct {
	client    *redis.Client
	limit     int
	scriptSHA string
}

// NewRedisLimiter loads the bucket script and verifies connectivity.
func NewRedisLimiter(client *redis.Client, limit int) (*RedisLimiter, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	sha, err := client.ScriptLoad(ctx, tokenBucketScript).Result()
	if err != nil {
		return nil, fmt.Errorf("load token bucket script: %w", err)
	}

	return &RedisLimiter{client: client, limit: limit, scriptSHA: sha}, nil
}

// Allow admits or rejects one request for key.
func (r *RedisLimiter) Allow(ctx context.Context, key string) (bool, Info, error) {
	now := time.Now()

	result, err := r.client.EvalSha(ctx, r.scriptSHA,
		[]string{"ratelimit:" + key},
		r.limit,
		now.Unix(),
	).Result()
	if err != nil {
		return false, Info{}, fmt.Errorf("eval token bucket script: %w", err)
	}

	values, ok := result.([]interface{})
	if !ok || len(values) != 2 {
		return false, Info{}, fmt.Errorf("unexpected script response: %v", result)
	}
	allowedVal, _ := values[0].(int64)
	remaining, _ := values[1].(int64)

	info := Info{
		Limit:     r.limit,
		Remaining: int(remaining),
		ResetAt:   now.Add(time.Duration(int64(r.limit)-remaining) * time.Second),
	}
	allowed := allowedVal == 1
	if !allowed {
		info.RetryAfter = time.Second
	}
	return allowed, info, nil
}

// Close releases the Redis client.
func (r *RedisLimiter) Close() {
	r.client.Close()
}
