package ratelimiter_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactrelay/pkg/ratelimiter"
)

func TestNewBucket(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		config  ratelimiter.Config
		wantErr bool
	}{
		{
			name:   "valid config",
			config: ratelimiter.Config{Capacity: 5, RefillRate: 5, RefillInterval: 20 * time.Second},
		},
		{
			name:    "zero capacity",
			config:  ratelimiter.Config{Capacity: 0, RefillRate: 5, RefillInterval: time.Second},
			wantErr: true,
		},
		{
			name:    "zero refill rate",
			config:  ratelimiter.Config{Capacity: 5, RefillRate: 0, RefillInterval: time.Second},
			wantErr: true,
		},
		{
			name:    "zero refill interval",
			config:  ratelimiter.Config{Capacity: 5, RefillRate: 5},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ratelimiter.NewBucket(ratelimiter.NewMemoryStore(), tt.config)
			if tt.wantErr {
				assert.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestBucketAllow(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("allows up to capacity", func(t *testing.T) {
		t.Parallel()

		bucket, err := ratelimiter.NewBucket(ratelimiter.NewMemoryStore(), ratelimiter.Config{
			Capacity:       5,
			RefillRate:     5,
			RefillInterval: 20 * time.Second,
		})
		require.NoError(t, err)

		for i := 0; i < 5; i++ {
			res, err := bucket.Allow(ctx, "smtp")
			require.NoError(t, err)
			assert.True(t, res.Allowed(), "request %d should be allowed", i)
		}

		res, err := bucket.Allow(ctx, "smtp")
		require.NoError(t, err)
		assert.False(t, res.Allowed())
		assert.Positive(t, res.RetryAfter())
	})

	t.Run("keys are independent", func(t *testing.T) {
		t.Parallel()

		bucket, err := ratelimiter.NewBucket(ratelimiter.NewMemoryStore(), ratelimiter.Config{
			Capacity:       1,
			RefillRate:     1,
			RefillInterval: time.Minute,
		})
		require.NoError(t, err)

		res, err := bucket.Allow(ctx, "a")
		require.NoError(t, err)
		assert.True(t, res.Allowed())

		res, err = bucket.Allow(ctx, "a")
		require.NoError(t, err)
		assert.False(t, res.Allowed())

		res, err = bucket.Allow(ctx, "b")
		require.NoError(t, err)
		assert.True(t, res.Allowed())
	})

	t.Run("refills after interval", func(t *testing.T) {
		t.Parallel()

		bucket, err := ratelimiter.NewBucket(ratelimiter.NewMemoryStore(), ratelimiter.Config{
			Capacity:       2,
			RefillRate:     2,
			RefillInterval: 50 * time.Millisecond,
		})
		require.NoError(t, err)

		for n := 0; n < 2; n++ {
			res, err := bucket.Allow(ctx, "smtp")
			require.NoError(t, err)
			require.True(t, res.Allowed())
		}

		res, err := bucket.Allow(ctx, "smtp")
		require.NoError(t, err)
		require.False(t, res.Allowed())

		time.Sleep(60 * time.Millisecond)

		res, err = bucket.Allow(ctx, "smtp")
		require.NoError(t, err)
		assert.True(t, res.Allowed())
	})

	t.Run("denied attempts do not consume tokens", func(t *testing.T) {
		t.Parallel()

		bucket, err := ratelimiter.NewBucket(ratelimiter.NewMemoryStore(), ratelimiter.Config{
			Capacity:       2,
			RefillRate:     2,
			RefillInterval: 50 * time.Millisecond,
		})
		require.NoError(t, err)

		for n := 0; n < 2; n++ {
			res, err := bucket.Allow(ctx, "smtp")
			require.NoError(t, err)
			require.True(t, res.Allowed())
		}

		// Repeated denied polls must leave the bucket untouched.
		for n := 0; n < 5; n++ {
			res, err := bucket.Allow(ctx, "smtp")
			require.NoError(t, err)
			require.False(t, res.Allowed())
		}

		time.Sleep(60 * time.Millisecond)

		// The refill admits the full rate, not the rate minus denied polls.
		for i := 0; i < 2; i++ {
			res, err := bucket.Allow(ctx, "smtp")
			require.NoError(t, err)
			assert.True(t, res.Allowed(), "request %d after refill should be allowed", i)
		}

		res, err := bucket.Allow(ctx, "smtp")
		require.NoError(t, err)
		assert.False(t, res.Allowed())
	})

	t.Run("reset restores capacity", func(t *testing.T) {
		t.Parallel()

		bucket, err := ratelimiter.NewBucket(ratelimiter.NewMemoryStore(), ratelimiter.Config{
			Capacity:       1,
			RefillRate:     1,
			RefillInterval: time.Minute,
		})
		require.NoError(t, err)

		res, err := bucket.Allow(ctx, "smtp")
		require.NoError(t, err)
		require.True(t, res.Allowed())

		require.NoError(t, bucket.Reset(ctx, "smtp"))

		res, err = bucket.Allow(ctx, "smtp")
		require.NoError(t, err)
		assert.True(t, res.Allowed())
	})
}

func TestBucketWait(t *testing.T) {
	t.Parallel()

	t.Run("waits for refill", func(t *testing.T) {
		t.Parallel()

		bucket, err := ratelimiter.NewBucket(ratelimiter.NewMemoryStore(), ratelimiter.Config{
			Capacity:       1,
			RefillRate:     1,
			RefillInterval: 50 * time.Millisecond,
		})
		require.NoError(t, err)

		ctx := context.Background()
		require.NoError(t, bucket.Wait(ctx, "smtp"))

		start := time.Now()
		require.NoError(t, bucket.Wait(ctx, "smtp"))
		assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		bucket, err := ratelimiter.NewBucket(ratelimiter.NewMemoryStore(), ratelimiter.Config{
			Capacity:       1,
			RefillRate:     1,
			RefillInterval: time.Hour,
		})
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		require.NoError(t, bucket.Wait(ctx, "smtp"))
		err = bucket.Wait(ctx, "smtp")
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
