// Package ratelimiter はクライアント単位のリクエスト頻度制限を提供します。
package ratelimiter

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// 保持するキー数の上限。超えた場合はマップを作り直します。
const maxKeys = 10000

// Limiter はキー単位でリクエストを許可するかを判定します。
type Limiter interface {
	Allow(key string) bool
}

// RateLimiter はキー（クライアントIPなど）ごとにトークンバケットを保持します。
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

var _ Limiter = (*RateLimiter)(nil)

// NewRateLimiter は1分あたりperMinute回、最大burst回まで連続で許可するRateLimiterを生成します。
func NewRateLimiter(perMinute, burst int) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Every(time.Minute / time.Duration(max(perMinute, 1))),
		burst:    burst,
	}
}

// Allow はkeyのリクエストを1件消費し、上限内であればtrueを返します。
func (rl *RateLimiter) Allow(key string) bool {
	return rl.limiterFor(key).Allow()
}

func (rl *RateLimiter) limiterFor(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	l, ok := rl.limiters[key]
	if !ok {
		if len(rl.limiters) >= maxKeys {
			rl.limiters = make(map[string]*rate.Limiter)
		}
		l = rate.NewLimiter(rl.limit, rl.burst)
		rl.limiters[key] = l
	}
	return l
}

// Middleware はクライアントIPをキーに頻度制限を行うginミドルウェアを返します。
// 上限を超えた場合は429を返します。
func Middleware(l Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if !l.Allow(key) {
			slog.Warn("rate limit exceeded", "remote_addr", key, "path", c.FullPath())
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "too many requests"})
			return
		}
		c.Next()
	}
}
