package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zt15864126114/mksxk/internal/error/code"
	"github.com/zt15864126114/mksxk/internal/error/response"
)

// 简单的令牌桶限流器
type TokenBucket struct {
	rate       float64   // 每秒填充的令牌数
	capacity   int       // 桶的容量
	tokens     float64   // 当前令牌数
	lastRefill time.Time // 上次填充时间
	mu         sync.Mutex
}

// NewTokenBucket 创建新的令牌桶限流器
func NewTokenBucket(rate float64, capacity int) *TokenBucket {
	return &TokenBucket{
		rate:       rate,
		capacity:   capacity,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// Allow 尝试获取令牌
func (tb *TokenBucket) Allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill).Seconds()
	tb.lastRefill = now

	tb.tokens += elapsed * tb.rate
	if tb.tokens > float64(tb.capacity) {
		tb.tokens = float64(tb.capacity)
	}

	if tb.tokens >= 1 {
		tb.tokens--
		return true
	}
	return false
}

// RateLimiterConfig 限流器配置
type RateLimiterConfig struct {
	Rate  float64 // 每秒允许的请求数
	Burst int     // 允许的突发请求数
}

// DefaultRateLimiterConfig 默认限流器配置，用于公开的留言提交接口
var DefaultRateLimiterConfig = RateLimiterConfig{
	Rate:  1,
	Burst: 5,
}

var (
	ipLimiters   = make(map[string]*TokenBucket)
	ipLimitersMu sync.RWMutex
)

// 获取IP限流器
func getIPLimiter(ip string, cfg RateLimiterConfig) *TokenBucket {
	ipLimitersMu.RLock()
	limiter, exists := ipLimiters[ip]
	ipLimitersMu.RUnlock()

	if !exists {
		limiter = NewTokenBucket(cfg.Rate, cfg.Burst)
		ipLimitersMu.Lock()
		ipLimiters[ip] = limiter
		ipLimitersMu.Unlock()
	}
	return limiter
}

// RateLimitByIP 按客户端IP限流，超限返回429
func RateLimitByIP(cfg RateLimiterConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		limiter := getIPLimiter(c.ClientIP(), cfg)
		if !limiter.Allow() {
			response.Fail(c, code.ErrTooManyRequests)
			c.Abort()
			return
		}
		c.Next()
	}
}
