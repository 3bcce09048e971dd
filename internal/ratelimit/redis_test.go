package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisLimiter(t *testing.T, window time.Duration, max int) (*RedisLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisLimiter(client, window, max), mr
}

func TestRedisLimiterAllowsUpToMax(t *testing.T) {
	l, _ := newRedisLimiter(t, time.Hour, 10)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		require.NoError(t, l.Allow(ctx, "1.2.3.4"), "attempt %d", i+1)
	}
	assert.ErrorIs(t, l.Allow(ctx, "1.2.3.4"), ErrLimited)

	// 其他来源各有各的计数器
	assert.NoError(t, l.Allow(ctx, "5.6.7.8"))
}

func TestRedisLimiterWindowExpiry(t *testing.T) {
	l, mr := newRedisLimiter(t, time.Hour, 2)
	ctx := context.Background()

	require.NoError(t, l.Allow(ctx, "a"))
	require.NoError(t, l.Allow(ctx, "a"))
	require.ErrorIs(t, l.Allow(ctx, "a"), ErrLimited)

	// TTL 锚定在首次尝试，后续尝试不续期（EXPIRE NX）
	mr.FastForward(30 * time.Minute)
	require.ErrorIs(t, l.Allow(ctx, "a"), ErrLimited)

	mr.FastForward(31 * time.Minute)
	require.NoError(t, l.Allow(ctx, "a"))
	require.NoError(t, l.Allow(ctx, "a"))
	assert.ErrorIs(t, l.Allow(ctx, "a"), ErrLimited)
}

func TestRedisLimiterRejectedAttemptStillCounts(t *testing.T) {
	l, mr := newRedisLimiter(t, time.Hour, 1)
	ctx := context.Background()

	require.NoError(t, l.Allow(ctx, "a"))
	require.ErrorIs(t, l.Allow(ctx, "a"), ErrLimited)
	require.ErrorIs(t, l.Allow(ctx, "a"), ErrLimited)

	got, err := mr.Get("ratelimit:submit:a")
	require.NoError(t, err)
	assert.Equal(t, "3", got)
}
