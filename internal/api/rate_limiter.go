package api

import (
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

const (
	bucketCleanupThreshold = 1 * time.Hour
	cleanupSchedule        = "@every 30m"
)

type clientBucket struct {
	tokens     int
	lastRefill time.Time
}

// RateLimiter hands each client capacity requests per refill window
type RateLimiter struct {
	mu        sync.Mutex
	capacity  int
	refillDur time.Duration
	clients   map[string]*clientBucket
	now       func() time.Time
	scheduler *cron.Cron
	stopOnce  sync.Once
}

// NewRateLimiter starts a limiter and its scheduled cleanup of idle clients.
// Call Stop when done.
func NewRateLimiter(capacity int, refillDur time.Duration) *RateLimiter {
	rl := &RateLimiter{
		capacity:  capacity,
		refillDur: refillDur,
		clients:   make(map[string]*clientBucket),
		now:       time.Now,
		scheduler: cron.New(),
	}
	if _, err := rl.scheduler.AddFunc(cleanupSchedule, rl.cleanup); err != nil {
		panic(err) // constant schedule
	}
	rl.scheduler.Start()
	return rl
}

func (r *RateLimiter) cleanup() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for ip, bucket := range r.clients {
		if now.Sub(bucket.lastRefill) > bucketCleanupThreshold {
			delete(r.clients, ip)
		}
	}
}

// Stop halts the cleanup schedule. Safe to call more than once.
func (r *RateLimiter) Stop() {
	r.stopOnce.Do(func() { <-r.scheduler.Stop().Done() })
}

// Allow spends one token for the client if it has any left
func (r *RateLimiter) Allow(client string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	bucket, exists := r.clients[client]
	if !exists {
		r.clients[client] = &clientBucket{tokens: r.capacity - 1, lastRefill: now}
		return r.capacity > 0
	}

	if now.Sub(bucket.lastRefill) >= r.refillDur {
		bucket.tokens = r.capacity
		bucket.lastRefill = now
	}
	if bucket.tokens <= 0 {
		return false
	}
	bucket.tokens--
	return true
}
