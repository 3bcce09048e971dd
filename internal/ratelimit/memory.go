package ratelimit

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	count       int
	windowStart time.Time
}

// MemoryLimiter 进程内存限流器。状态只活在当前进程里：不落盘、不跨
// 实例共享，重启即清零。多进程部署请改用 RedisLimiter。
type MemoryLimiter struct {
	mu      sync.Mutex
	entries map[string]*entry
	window  time.Duration
	max     int
	now     func() time.Time
}

func NewMemoryLimiter(window time.Duration, max int) *MemoryLimiter {
	if window <= 0 {
		window = DefaultWindow
	}
	if max <= 0 {
		max = DefaultMax
	}
	return &MemoryLimiter{
		entries: make(map[string]*entry),
		window:  window,
		max:     max,
		now:     time.Now,
	}
}

// Allow 对同一 key 的读-改-写必须是一个临界区，否则并发请求会绕过上限。
func (l *MemoryLimiter) Allow(_ context.Context, originKey string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	e, ok := l.entries[originKey]
	if !ok || now.Sub(e.windowStart) > l.window {
		// 新来源，或窗口已过期：从这次尝试重新起算
		l.entries[originKey] = &entry{count: 1, windowStart: now}
		return nil
	}
	e.count++
	if e.count > l.max {
		return ErrLimited
	}
	return nil
}
