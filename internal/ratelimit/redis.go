package ratelimit

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "faucet:ratelimit:"

// Redis is the shared backend used for multi-instance coordination.
type Redis struct {
	client *redis.Client
	window time.Duration
}

func NewRedis(client *redis.Client, window time.Duration) *Redis {
	return &Redis{client: client, window: window}
}

// allow performs the check-then-set as a single SET NX PX, so concurrent
// requests for the same key race on one atomic operation. The value is the
// grant timestamp in epoch milliseconds; expiry evicts the entry after the
// window.
func (r *Redis) allow(ctx context.Context, key string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	return r.client.SetNX(ctx, redisKeyPrefix+key, time.Now().UnixMilli(), r.window).Result()
}

// Allow implements Limiter for standalone use. Backend errors fail open;
// wrap with Fallback to degrade to the in-memory limiter instead.
func (r *Redis) Allow(ctx context.Context, key string) bool {
	allowed, err := r.allow(ctx, key)
	if err != nil {
		return true
	}
	return allowed
}

var _ Limiter = (*Redis)(nil)
