package middleware

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"carebrief/config"
	"carebrief/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// rateLimiterStore holds a map of IP addresses to their rate limiters.
// Used when Redis is not available; counters then live per process.
type rateLimiterStore struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
}

var limiterStore = &rateLimiterStore{
	limiters: make(map[string]*rate.Limiter),
}

// getLimiter returns the rate limiter for a given IP, creating one if it doesn't exist.
func (s *rateLimiterStore) getLimiter(ip string, perMin int) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMin)), perMin)
		s.limiters[ip] = limiter
	}
	return limiter
}

// allowRedis counts the request in a per-IP fixed one-minute window.
func allowRedis(c *gin.Context, ip string, perMin int) (bool, error) {
	client := utils.GetCacheClient()
	window := time.Now().Unix() / 60
	key := fmt.Sprintf("rl:%s:%d", ip, window)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 500*time.Millisecond)
	defer cancel()

	count, err := client.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		client.Expire(ctx, key, time.Minute)
	}
	return count <= int64(perMin), nil
}

// RateLimitMiddleware limits requests per IP address. Counters are shared via
// Redis when configured, otherwise kept in-process.
func RateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger()
		ip := getClientIP(c)
		perMin := config.AppConfig.MaxRequestsPerMin
		if perMin <= 0 {
			perMin = 100
		}

		allowed := true
		if utils.GetCacheClient() != nil {
			ok, err := allowRedis(c, ip, perMin)
			if err != nil {
				// Redis hiccup: fall back to the in-process limiter.
				logger.Warn("Rate limit counter unavailable", zap.Error(err))
				ok = limiterStore.getLimiter(ip, perMin).Allow()
			}
			allowed = ok
		} else {
			allowed = limiterStore.getLimiter(ip, perMin).Allow()
		}

		if !allowed {
			logger.Warn("Rate limit exceeded", zap.String("ip", ip))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded. Try again later."})
			return
		}
		c.Next()
	}
}
