package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"loyalty-server/internal/observability"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Window is the sliding window every limit is counted over
const Window = time.Minute

// RateLimitResult represents the result of a rate limit check
type RateLimitResult struct {
	Allowed      bool      `json:"allowed"`
	Limit        int       `json:"limit"`
	Remaining    int       `json:"remaining"`
	ResetAt      time.Time `json:"reset_at"`
	RetryAfterMs int       `json:"retry_after_ms,omitempty"`
}

// Limiter counts requests per key over Window
type Limiter interface {
	Allow(ctx context.Context, key string, limit int) (RateLimitResult, error)
}

// RedisLimiter is a sliding window over a sorted set of request timestamps, shared by every instance
type RedisLimiter struct {
	client *redis.Client
	now    func() time.Time
}

func NewRedisLimiter(client *redis.Client) *RedisLimiter {
	return &RedisLimiter{client: client, now: time.Now}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string, limit int) (RateLimitResult, error) {
	key = "rl:" + key
	now := l.now()
	windowStartMs := now.Add(-Window).UnixMilli()

	pipe := l.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStartMs, 10))
	count := pipe.ZCard(ctx, key)
	oldest := pipe.ZRangeWithScores(ctx, key, 0, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return RateLimitResult{}, fmt.Errorf("failed to read rate limit window: %w", err)
	}

	if int(count.Val()) >= limit {
		resetAt := now.Add(Window)
		if entries := oldest.Val(); len(entries) > 0 {
			resetAt = time.UnixMilli(int64(entries[0].Score)).Add(Window)
		}
		return denied(now, limit, resetAt), nil
	}

	// members must be unique even when two requests share a millisecond
	pipe = l.client.TxPipeline()
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now.UnixMilli()), Member: uuid.New().String()})
	pipe.Expire(ctx, key, 2*Window)
	if _, err := pipe.Exec(ctx); err != nil {
		return RateLimitResult{}, fmt.Errorf("failed to record request: %w", err)
	}

	return RateLimitResult{
		Allowed:   true,
		Limit:     limit,
		Remaining: limit - int(count.Val()) - 1,
		ResetAt:   now.Add(Window),
	}, nil
}

// MemoryLimiter keeps the same sliding window in process memory for single-instance deployments
type MemoryLimiter struct {
	mu       sync.Mutex
	requests map[string][]time.Time
	now      func() time.Time
}

func NewMemoryLimiter() *MemoryLimiter {
	return &MemoryLimiter{requests: make(map[string][]time.Time), now: time.Now}
}

func (l *MemoryLimiter) Allow(ctx context.Context, key string, limit int) (RateLimitResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	windowStart := now.Add(-Window)
	kept := l.requests[key][:0]
	for _, ts := range l.requests[key] {
		if ts.After(windowStart) {
			kept = append(kept, ts)
		}
	}

	if len(kept) >= limit {
		l.requests[key] = kept
		return denied(now, limit, kept[0].Add(Window)), nil
	}

	l.requests[key] = append(kept, now)
	return RateLimitResult{
		Allowed:   true,
		Limit:     limit,
		Remaining: limit - len(kept) - 1,
		ResetAt:   now.Add(Window),
	}, nil
}

func denied(now time.Time, limit int, resetAt time.Time) RateLimitResult {
	retryAfter := resetAt.Sub(now)
	if retryAfter < 0 {
		retryAfter = 0
	}
	return RateLimitResult{
		Allowed:      false,
		Limit:        limit,
		Remaining:    0,
		ResetAt:      resetAt,
		RetryAfterMs: int(retryAfter.Milliseconds()),
	}
}

// Service applies a per-business request limit
type Service struct {
	limiter Limiter
	limit   int
	logger  *observability.Logger
}

// NewService creates a new rate limiting service. A limit of zero or less disables limiting.
func NewService(limiter Limiter, limit int, logger *observability.Logger) *Service {
	return &Service{
		limiter: limiter,
		limit:   limit,
		logger:  logger,
	}
}

// CheckRateLimit counts one request for businessID
func (s *Service) CheckRateLimit(ctx context.Context, businessID string) (RateLimitResult, error) {
	if s.limit <= 0 {
		return RateLimitResult{Allowed: true}, nil
	}
	return s.limiter.Allow(ctx, "business:"+businessID, s.limit)
}
