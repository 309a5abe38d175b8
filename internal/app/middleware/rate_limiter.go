package middleware

import (
	"sync"
	"time"

	"atendimento-http-service/internal/error/code"
	"atendimento-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// TokenBucket is a simple token-bucket limiter
type TokenBucket struct {
	rate       float64 // tokens refilled per second
	capacity   int
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

// NewTokenBucket creates a bucket starting full
func NewTokenBucket(rate float64, capacity int) *TokenBucket {
	return &TokenBucket{
		rate:       rate,
		capacity:   capacity,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// Allow tries to take one token
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

var (
	ipLimiters     = make(map[string]*TokenBucket)
	ipLimitersMu   sync.RWMutex
	pathLimiters   = make(map[string]*TokenBucket)
	pathLimitersMu sync.RWMutex
)

// RateLimiterConfig configures a rate-limiting middleware
type RateLimiterConfig struct {
	Rate       float64       // requests allowed per second
	Burst      int           // burst size
	ExpiryTime time.Duration // limiter lifetime
	LimitType  string        // "ip", "path", "combined"
	KeyFunc    func(*gin.Context) string
}

// DefaultRateLimiterConfig is used when no config is passed
var DefaultRateLimiterConfig = RateLimiterConfig{
	Rate:       1,
	Burst:      5,
	ExpiryTime: 1 * time.Hour,
	LimitType:  "ip",
	KeyFunc:    nil,
}

func getIPLimiter(ip string, cfg RateLimiterConfig) *TokenBucket {
	ipLimitersMu.RLock()
	limiter, exists := ipLimiters[ip]
	ipLimitersMu.RUnlock()

	if !exists {
		limiter = NewTokenBucket(cfg.Rate, cfg.Burst)
		ipLimitersMu.Lock()
		ipLimiters[ip] = limiter
		ipLimitersMu.Unlock()

		if cfg.ExpiryTime > 0 {
			go func() {
				time.Sleep(cfg.ExpiryTime)
				ipLimitersMu.Lock()
				delete(ipLimiters, ip)
				ipLimitersMu.Unlock()
			}()
		}
	}

	return limiter
}

func getPathLimiter(path string, cfg RateLimiterConfig) *TokenBucket {
	pathLimitersMu.RLock()
	limiter, exists := pathLimiters[path]
	pathLimitersMu.RUnlock()

	if !exists {
		limiter = NewTokenBucket(cfg.Rate, cfg.Burst)
		pathLimitersMu.Lock()
		pathLimiters[path] = limiter
		pathLimitersMu.Unlock()
	}

	return limiter
}

// RateLimiter creates the rate-limiting middleware
func RateLimiter(config ...RateLimiterConfig) gin.HandlerFunc {
	var cfg RateLimiterConfig
	if len(config) > 0 {
		cfg = config[0]
	} else {
		cfg = DefaultRateLimiterConfig
	}

	if cfg.Rate <= 0 {
		cfg.Rate = DefaultRateLimiterConfig.Rate
	}
	if cfg.Burst <= 0 {
		cfg.Burst = DefaultRateLimiterConfig.Burst
	}
	if cfg.LimitType == "" {
		cfg.LimitType = DefaultRateLimiterConfig.LimitType
	}

	return func(c *gin.Context) {
		var limiter *TokenBucket

		switch cfg.LimitType {
		case "ip":
			limiter = getIPLimiter(c.ClientIP(), cfg)
		case "path":
			limiter = getPathLimiter(c.Request.URL.Path, cfg)
		case "combined":
			key := c.ClientIP() + ":" + c.Request.URL.Path
			limiter = getIPLimiter(key, cfg)
		default:
			if cfg.KeyFunc != nil {
				limiter = getIPLimiter(cfg.KeyFunc(c), cfg)
			} else {
				limiter = getIPLimiter(c.ClientIP(), cfg)
			}
		}

		if !limiter.Allow() {
			response.FailWithMessage(c, code.ErrTooManyRequests, "Muitas requisições, tente novamente em instantes", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

// IPRateLimiter limits by client IP
func IPRateLimiter(rate float64, burst int) gin.HandlerFunc {
	return RateLimiter(RateLimiterConfig{
		Rate:      rate,
		Burst:     burst,
		LimitType: "ip",
	})
}

// PathRateLimiter limits by request path
func PathRateLimiter(rate float64, burst int) gin.HandlerFunc {
	return RateLimiter(RateLimiterConfig{
		Rate:      rate,
		Burst:     burst,
		LimitType: "path",
	})
}

// CombinedRateLimiter limits by IP and path together
func CombinedRateLimiter(rate float64, burst int) gin.HandlerFunc {
	return RateLimiter(RateLimiterConfig{
		Rate:      rate,
		Burst:     burst,
		LimitType: "combined",
	})
}
