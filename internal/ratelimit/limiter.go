package ratelimit

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"
)

// 提交限流默认参数：单一来源每小时最多 10 次
const (
	DefaultWindow = time.Hour
	DefaultMax    = 10
)

// ErrLimited 来源在当前窗口内超额
var ErrLimited = errors.New("rate limit exceeded")

// Limiter 按来源 key 限制提交次数。窗口是滚动的：从过期后的第一次
// 尝试重新起算，而不是对齐固定的时钟边界。被拒绝的那次尝试同样计数
// （刻意为之：连续重试不会让窗口提前放行）。
type Limiter interface {
	// Allow 记录一次尝试。超额返回 ErrLimited，其余错误视为后端故障。
	Allow(ctx context.Context, originKey string) error
}

// OriginKey 从转发头推导来源标识：X-Forwarded-For 首项 → X-Real-IP →
// 固定回退值。服务固定部署在反向代理之后，不读 RemoteAddr。
func OriginKey(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	return "127.0.0.1"
}
