package ratelimiter

import (
	"context"
	"sync"
	"time"
)

// bucketState holds a single token bucket.
type bucketState struct {
	tokens     int
	lastRefill time.Time
}

// MemoryStore implements Store using in-process storage. It suits workloads
// with a small, fixed key set; there is no eviction.
type MemoryStore struct {
	mu      sync.Mutex
	buckets map[string]*bucketState
}

// NewMemoryStore creates a new in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{buckets: make(map[string]*bucketState)}
}

// ConsumeTokens attempts to consume tokens from the bucket.
func (ms *MemoryStore) ConsumeTokens(ctx context.Context, key string, tokens int, config Config) (int, time.Time, error) {
	if err := ctx.Err(); err != nil {
		return 0, time.Time{}, err
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := time.Now()
	b, exists := ms.buckets[key]
	if !exists {
		b = &bucketState{
			tokens:     config.Capacity,
			lastRefill: now,
		}
		ms.buckets[key] = b
	}

	// Add tokens for every full refill interval that has elapsed, capped at
	// bucket capacity. lastRefill advances to the current time to avoid
	// drift accumulating over long idle periods.
	elapsed := now.Sub(b.lastRefill)
	intervals := int(elapsed / config.RefillInterval)
	if intervals > 0 {
		b.tokens = min(b.tokens+intervals*config.RefillRate, config.Capacity)
		b.lastRefill = now
	}

	resetAt := b.lastRefill.Add(config.RefillInterval)

	// A denied attempt leaves the count untouched; otherwise callers
	// polling for a free token would burn the tokens the next refill adds
	// and starve the bucket.
	if b.tokens < tokens {
		return -1, resetAt, nil
	}

	b.tokens -= tokens
	return b.tokens, resetAt, nil
}

// Reset clears the bucket for the given key.
func (ms *MemoryStore) Reset(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()
	delete(ms.buckets, key)
	return nil
}
