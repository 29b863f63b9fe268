package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/Henrique42/mercado-api/internal/dto"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// rateEntry tracks request counts per IP within a sliding window.
type rateEntry struct {
	count     int
	windowEnd time.Time
	mu        sync.Mutex
}

var (
	rateMap   = make(map[string]*rateEntry)
	rateMapMu sync.Mutex
)

// RateLimiter returns a general-purpose sliding-window rate limiter keyed by
// client IP.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		rateMapMu.Lock()
		entry, exists := rateMap[ip]
		if !exists {
			entry = &rateEntry{}
			rateMap[ip] = entry
		}
		rateMapMu.Unlock()

		entry.mu.Lock()
		defer entry.mu.Unlock()

		now := time.Now()
		if now.After(entry.windowEnd) {
			entry.count = 0
			entry.windowEnd = now.Add(window)
		}

		entry.count++
		if entry.count > limit {
			c.Header("Retry-After", entry.windowEnd.Format(time.RFC1123))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.Error("Muitas solicitações. Tente novamente em instantes."))
			return
		}
		c.Next()
	}
}

// Expired entries are purged periodically so IPs that never return do not
// accumulate forever.

const purgeInterval = 5 * time.Minute

func init() {
	go purgeExpiredEntries()
}

func purgeExpiredEntries() {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()

	for range ticker.C {
		purgeExpired(time.Now())
	}
}

func purgeExpired(now time.Time) {
	rateMapMu.Lock()
	purged := 0
	for ip, entry := range rateMap {
		entry.mu.Lock()
		if now.After(entry.windowEnd) {
			delete(rateMap, ip)
			purged++
		}
		entry.mu.Unlock()
	}
	// Length must be read while the lock is still held.
	remaining := len(rateMap)
	rateMapMu.Unlock()

	if purged > 0 {
		log.Debug().
			Int("entries_purged", purged).
			Int("entries_remaining", remaining).
			Msg("rate limiter map purged")
	}
}
