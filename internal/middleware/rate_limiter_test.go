package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newLimitedEngine(limit int, window time.Duration) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimiter(limit, window))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func hit(r *gin.Engine, ip string) int {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = ip + ":1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	r := newLimitedEngine(3, time.Minute)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, hit(r, "10.0.0.1"))
	}
	assert.Equal(t, http.StatusTooManyRequests, hit(r, "10.0.0.1"))

	// Other IPs get their own window.
	assert.Equal(t, http.StatusOK, hit(r, "10.0.0.2"))
}

func TestRateLimiter_WindowResets(t *testing.T) {
	r := newLimitedEngine(1, 20*time.Millisecond)

	assert.Equal(t, http.StatusOK, hit(r, "10.0.1.1"))
	assert.Equal(t, http.StatusTooManyRequests, hit(r, "10.0.1.1"))

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, http.StatusOK, hit(r, "10.0.1.1"))
}

// Purging must be safe to run while handlers are counting requests; run both
// concurrently so the race detector can see any unsynchronized access.
func TestRateLimiter_PurgeConcurrentWithRequests(t *testing.T) {
	r := newLimitedEngine(1000, 10*time.Millisecond)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				hit(r, "10.0.2.1")
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 50; j++ {
			purgeExpired(time.Now())
		}
	}()
	wg.Wait()

	// Once the window lapses the entry is eligible for purge.
	time.Sleep(20 * time.Millisecond)
	purgeExpired(time.Now())

	rateMapMu.Lock()
	_, exists := rateMap["10.0.2.1"]
	rateMapMu.Unlock()
	assert.False(t, exists)
}
