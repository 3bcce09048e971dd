package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter 用 INCR + EXPIRE NX 实现带滚动过期的原子有界计数器，
// 多进程部署时共享同一份窗口状态。语义与 MemoryLimiter 一致：窗口从
// key 诞生（首次尝试）起算，过期后下一次尝试重开窗口，超额的尝试也
// 已经计入。
type RedisLimiter struct {
	client *redis.Client
	window time.Duration
	max    int
}

func NewRedisLimiter(client *redis.Client, window time.Duration, max int) *RedisLimiter {
	if window <= 0 {
		window = DefaultWindow
	}
	if max <= 0 {
		max = DefaultMax
	}
	return &RedisLimiter{client: client, window: window, max: max}
}

func (l *RedisLimiter) Allow(ctx context.Context, originKey string) error {
	key := fmt.Sprintf("ratelimit:submit:%s", originKey)

	pipe := l.client.Pipeline()
	incr := pipe.Incr(ctx, key)
	// NX：只在 key 新建时设置 TTL，保持「从首次尝试起算」的窗口语义
	pipe.ExpireNX(ctx, key, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return err
	}

	if incr.Val() > int64(l.max) {
		return ErrLimited
	}
	return nil
}
