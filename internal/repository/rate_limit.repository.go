package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimitRepository counts hits per key in fixed windows so limits hold
// across every instance sharing the same redis.
type RateLimitRepository interface {
	// Hit records one request for key and returns the count in the
	// current window.
	Hit(ctx context.Context, key string, window time.Duration) (int64, error)
}

type redisRateLimitRepositoryHandler struct {
	Client *redis.Client
}

func NewRedisRateLimitRepository(addr, password string) RateLimitRepository {
	return redisRateLimitRepositoryHandler{
		Client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
	}
}

func (h redisRateLimitRepositoryHandler) Hit(ctx context.Context, key string, window time.Duration) (int64, error) {
	bucket := time.Now().UTC().Truncate(window).Unix()
	redisKey := fmt.Sprintf("ratelimit:%s:%d", key, bucket)

	pipe := h.Client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to record rate limit hit: %w", err)
	}

	return incr.Val(), nil
}
