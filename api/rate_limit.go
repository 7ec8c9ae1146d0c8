package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type limiterStore struct {
	mu       sync.Mutex
	limiters *cache.Cache
	limit    rate.Limit
	burst    int
}

// get returns the limiter of ip and pushes its expiry back, so only
// clients idle for a whole expiry period are forgotten.
func (s *limiterStore) get(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, found := s.limiters.Get(ip)

	if !found {
		limiter = rate.NewLimiter(s.limit, s.burst)
	}

	s.limiters.Set(ip, limiter, cache.DefaultExpiration)

	return limiter.(*rate.Limiter)
}

// RateLimit allows each client IP perMinute requests per minute, all of
// which may be spent at once.
func RateLimit(perMinute int, logger *zap.Logger) gin.HandlerFunc {
	return RateLimitWithExpiry(perMinute, time.Minute, 5*time.Minute, logger)
}

// RateLimitWithExpiry is RateLimit with explicit expiry and cleanup
// intervals for idle client entries.
func RateLimitWithExpiry(perMinute int, expiry, cleanup time.Duration, logger *zap.Logger) gin.HandlerFunc {
	store := &limiterStore{
		limiters: cache.New(expiry, cleanup),
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    perMinute,
	}

	return func(c *gin.Context) {
		ip := c.ClientIP()

		if !store.get(ip).Allow() {
			logger.Warn("rate limit exceeded", zap.String("ip", ip), zap.String("path", c.FullPath()))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests, try again later"})
			return
		}

		c.Next()
	}
}
