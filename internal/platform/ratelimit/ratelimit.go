// Package ratelimit counts requests per client in fixed windows.
package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const (
	DefaultMax    = 30
	DefaultWindow = time.Minute
)

type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}

type bucket struct {
	count   int
	resetAt time.Time
}

// Memory is a single-process limiter. Expired buckets are swept lazily,
// at most once per window.
type Memory struct {
	max    int
	window time.Duration
	now    func() time.Time

	mu        sync.Mutex
	buckets   map[string]*bucket
	nextSweep time.Time
}

func NewMemory(max int, window time.Duration, now func() time.Time) *Memory {
	if max <= 0 {
		max = DefaultMax
	}
	if window <= 0 {
		window = DefaultWindow
	}
	if now == nil {
		now = time.Now
	}
	return &Memory{max: max, window: window, now: now, buckets: map[string]*bucket{}}
}

func (m *Memory) Allow(_ context.Context, key string) (Decision, error) {
	now := m.now()
	m.mu.Lock()
	defer m.mu.Unlock()

	if !now.Before(m.nextSweep) {
		for k, b := range m.buckets {
			if !now.Before(b.resetAt) {
				delete(m.buckets, k)
			}
		}
		m.nextSweep = now.Add(m.window)
	}

	b, ok := m.buckets[key]
	if !ok || !now.Before(b.resetAt) {
		b = &bucket{resetAt: now.Add(m.window)}
		m.buckets[key] = b
	}
	b.count++
	return decide(b.count, m.max, b.resetAt.Sub(now)), nil
}

// Len reports tracked clients.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.buckets)
}

const redisKeyPrefix = "ratelimit:"

// Redis shares counters between instances with INCR and a window expiry.
type Redis struct {
	rdb    goredis.UniversalClient
	max    int
	window time.Duration
}

func NewRedis(rdb goredis.UniversalClient, max int, window time.Duration) *Redis {
	if max <= 0 {
		max = DefaultMax
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &Redis{rdb: rdb, max: max, window: window}
}

func (r *Redis) Allow(ctx context.Context, key string) (Decision, error) {
	k := redisKeyPrefix + key
	var (
		incr *goredis.IntCmd
		ttl  *goredis.DurationCmd
	)
	_, err := r.rdb.TxPipelined(ctx, func(p goredis.Pipeliner) error {
		incr = p.Incr(ctx, k)
		p.ExpireNX(ctx, k, r.window)
		ttl = p.PTTL(ctx, k)
		return nil
	})
	if err != nil {
		return Decision{}, fmt.Errorf("rate limit %s: %w", key, err)
	}
	left := ttl.Val()
	if left <= 0 {
		left = r.window
	}
	return decide(int(incr.Val()), r.max, left), nil
}

func decide(count, max int, left time.Duration) Decision {
	d := Decision{Allowed: count <= max, Limit: max, Remaining: max - count}
	if d.Remaining < 0 {
		d.Remaining = 0
	}
	if !d.Allowed {
		d.RetryAfter = left
	}
	return d
}
