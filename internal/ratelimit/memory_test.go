package ratelimit

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(window time.Duration, max int) (*MemoryLimiter, *time.Time) {
	l := NewMemoryLimiter(window, max)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }
	return l, &now
}

func TestMemoryLimiterAllowsUpToMax(t *testing.T) {
	l, _ := newTestLimiter(time.Hour, 10)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		require.NoError(t, l.Allow(ctx, "1.2.3.4"), "attempt %d", i+1)
	}
	assert.ErrorIs(t, l.Allow(ctx, "1.2.3.4"), ErrLimited)
}

func TestMemoryLimiterOriginsAreIndependent(t *testing.T) {
	l, _ := newTestLimiter(time.Hour, 2)
	ctx := context.Background()

	require.NoError(t, l.Allow(ctx, "a"))
	require.NoError(t, l.Allow(ctx, "a"))
	require.ErrorIs(t, l.Allow(ctx, "a"), ErrLimited)

	// 另一个来源不受影响
	assert.NoError(t, l.Allow(ctx, "b"))
}

func TestMemoryLimiterWindowRollsFromFirstAttempt(t *testing.T) {
	l, now := newTestLimiter(time.Hour, 2)
	ctx := context.Background()

	require.NoError(t, l.Allow(ctx, "a"))
	require.NoError(t, l.Allow(ctx, "a"))
	require.ErrorIs(t, l.Allow(ctx, "a"), ErrLimited)

	// 窗口内的任何时刻都不会提前放行
	*now = now.Add(30 * time.Minute)
	require.ErrorIs(t, l.Allow(ctx, "a"), ErrLimited)

	// 过期后的第一次尝试重开窗口，计数回到 1
	*now = now.Add(31 * time.Minute)
	require.NoError(t, l.Allow(ctx, "a"))
	require.NoError(t, l.Allow(ctx, "a"))
	assert.ErrorIs(t, l.Allow(ctx, "a"), ErrLimited)
}

func TestMemoryLimiterRejectedAttemptStillCounts(t *testing.T) {
	l, _ := newTestLimiter(time.Hour, 1)
	ctx := context.Background()

	require.NoError(t, l.Allow(ctx, "a"))
	require.ErrorIs(t, l.Allow(ctx, "a"), ErrLimited)
	require.ErrorIs(t, l.Allow(ctx, "a"), ErrLimited)

	// 被拒绝的尝试也计入：计数已到 3 而不是停在上限
	l.mu.Lock()
	got := l.entries["a"].count
	l.mu.Unlock()
	assert.Equal(t, 3, got)
}

func TestOriginKey(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/v1/advice", nil)
	r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	r.Header.Set("X-Real-IP", "198.51.100.2")
	assert.Equal(t, "203.0.113.7", OriginKey(r))

	r.Header.Del("X-Forwarded-For")
	assert.Equal(t, "198.51.100.2", OriginKey(r))

	r.Header.Del("X-Real-IP")
	assert.Equal(t, "127.0.0.1", OriginKey(r))
}
