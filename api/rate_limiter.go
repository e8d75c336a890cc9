package api

import (
	"context"
	"sync"
	"time"

	"profitcalc/internal/logger"
	"profitcalc/internal/repository"

	"github.com/gin-gonic/gin"
)

const (
	bucketCleanupThreshold = 1 * time.Hour
	cleanupInterval        = 30 * time.Minute

	tooManyRequestsMessage = "Too many requests. Please wait a moment and try again."
)

type RateLimiter interface {
	Allow(ctx context.Context, key string) bool
}

type clientBucket struct {
	tokens     int
	lastRefill time.Time
}

// MemoryRateLimiter gives each client capacity requests per window. Buckets
// live in process, so the limit is per instance.
type MemoryRateLimiter struct {
	mu          sync.Mutex
	capacity    int
	window      time.Duration
	clients     map[string]*clientBucket
	stopCleanup chan struct{}
	stopOnce    sync.Once
	now         func() time.Time
}

func NewMemoryRateLimiter(capacity int, window time.Duration) *MemoryRateLimiter {
	rl := &MemoryRateLimiter{
		capacity:    capacity,
		window:      window,
		clients:     make(map[string]*clientBucket),
		stopCleanup: make(chan struct{}),
		now:         time.Now,
	}
	go rl.cleanupLoop()
	return rl
}

func (r *MemoryRateLimiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.cleanup()
		case <-r.stopCleanup:
			return
		}
	}
}

func (r *MemoryRateLimiter) cleanup() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for key, bucket := range r.clients {
		if now.Sub(bucket.lastRefill) > bucketCleanupThreshold {
			delete(r.clients, key)
		}
	}
}

func (r *MemoryRateLimiter) Stop() {
	r.stopOnce.Do(func() {
		close(r.stopCleanup)
	})
}

func (r *MemoryRateLimiter) Allow(_ context.Context, key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	bucket, exists := r.clients[key]

	if !exists {
		r.clients[key] = &clientBucket{
			tokens:     r.capacity - 1,
			lastRefill: now,
		}
		return true
	}

	if now.Sub(bucket.lastRefill) >= r.window {
		bucket.tokens = r.capacity
		bucket.lastRefill = now
	}

	if bucket.tokens <= 0 {
		return false
	}

	bucket.tokens--
	return true
}

// redisRateLimiter shares fixed windows across instances. When redis is
// unreachable requests are let through.
type redisRateLimiter struct {
	RateLimitRepository repository.RateLimitRepository
	Limit               int
	Window              time.Duration
}

func NewRedisRateLimiter(rateLimitRepository repository.RateLimitRepository, limit int, window time.Duration) RateLimiter {
	return redisRateLimiter{
		RateLimitRepository: rateLimitRepository,
		Limit:               limit,
		Window:              window,
	}
}

func (r redisRateLimiter) Allow(ctx context.Context, key string) bool {
	count, err := r.RateLimitRepository.Hit(ctx, key, r.Window)
	if err != nil {
		logger.FromContext(ctx).Warnw("rate limit check failed", "key", key, "error", err)
		return true
	}
	return count <= int64(r.Limit)
}

func rateLimitMiddleware(limiter RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			return
		}
		if !limiter.Allow(c.Request.Context(), c.ClientIP()) {
			c.AbortWithStatusJSON(429, gin.H{
				"error": tooManyRequestsMessage,
			})
			return
		}
	}
}
