package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func TestNewRateLimiter(t *testing.T) {
	tests := []struct {
		name  string
		rate  rate.Limit
		burst int
		ttl   time.Duration
	}{
		{name: "standard configuration", rate: 5, burst: 10, ttl: 3 * time.Minute},
		{name: "strict configuration", rate: 1, burst: 1, ttl: time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl := NewRateLimiter(tt.rate, tt.burst, tt.ttl, zap.NewNop())
			defer rl.Close()

			assert.Equal(t, tt.rate, rl.rate)
			assert.Equal(t, tt.burst, rl.burst)
			assert.Equal(t, tt.ttl, rl.ttl)
			assert.NotNil(t, rl.visitors)
		})
	}
}

func TestGetVisitor(t *testing.T) {
	rl := NewRateLimiter(100, 200, 3*time.Minute, zap.NewNop())
	defer rl.Close()

	limiter1 := rl.getVisitor("192.168.1.1")
	assert.NotNil(t, limiter1)
	assert.Same(t, limiter1, rl.getVisitor("192.168.1.1"))
	assert.NotSame(t, limiter1, rl.getVisitor("192.168.1.2"))
}

func TestRateLimiterMiddleware(t *testing.T) {
	rl := NewRateLimiter(1, 1, time.Minute, zap.NewNop())
	defer rl.Close()

	handler := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.1:12345"

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"code":"U0018","message":"Rate limit exceeded"}`, w.Body.String())

	other := httptest.NewRequest(http.MethodGet, "/", nil)
	other.RemoteAddr = "192.168.1.2:12345"
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, other)
	assert.Equal(t, http.StatusOK, w.Code, "limits are per client")
}

func TestRateLimiterMiddleware_AddressWithoutPort(t *testing.T) {
	rl := NewRateLimiter(1, 1, time.Minute, zap.NewNop())
	defer rl.Close()

	handler := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1"

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiterMiddleware_EmptyAddress(t *testing.T) {
	rl := NewRateLimiter(1, 1, time.Minute, zap.NewNop())
	defer rl.Close()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = ""

	w := httptest.NewRecorder()
	rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})).ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestEvictStale(t *testing.T) {
	rl := NewRateLimiter(1, 1, 200*time.Millisecond, zap.NewNop())
	defer rl.Close()

	rl.getVisitor("192.168.1.1")

	rl.evictStale(time.Now())
	rl.mu.Lock()
	_, exists := rl.visitors["192.168.1.1"]
	rl.mu.Unlock()
	assert.True(t, exists, "fresh visitors are kept")

	rl.evictStale(time.Now().Add(time.Second))
	rl.mu.Lock()
	_, exists = rl.visitors["192.168.1.1"]
	rl.mu.Unlock()
	assert.False(t, exists, "stale visitors are evicted")
}

func TestClose_Idempotent(t *testing.T) {
	rl := NewRateLimiter(1, 1, time.Minute, zap.NewNop())
	rl.Close()
	assert.NotPanics(t, rl.Close)
}

func TestConcurrentAccess(t *testing.T) {
	rl := NewRateLimiter(100, 200, time.Minute, zap.NewNop())
	defer rl.Close()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rl.getVisitor("192.168.1.1")
		}()
	}
	wg.Wait()

	rl.mu.Lock()
	count := len(rl.visitors)
	rl.mu.Unlock()
	assert.Equal(t, 1, count)
}
