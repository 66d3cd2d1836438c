package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestLimiter(rate int, window time.Duration) (*RateLimiter, *time.Time) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	rl := NewRateLimiter(rate, window, logger)

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }
	return rl, &now
}

func TestRateLimiter_Allow(t *testing.T) {
	t.Run("requests within limit are allowed", func(t *testing.T) {
		rl, _ := newTestLimiter(5, time.Minute)
		defer rl.Stop()

		for i := 0; i < 5; i++ {
			assert.True(t, rl.Allow("192.168.1.1"), "request %d", i+1)
		}
		assert.False(t, rl.Allow("192.168.1.1"))
	})

	t.Run("different keys are tracked separately", func(t *testing.T) {
		rl, _ := newTestLimiter(1, time.Minute)
		defer rl.Stop()

		assert.True(t, rl.Allow("10.0.0.1"))
		assert.False(t, rl.Allow("10.0.0.1"))
		assert.True(t, rl.Allow("10.0.0.2"))
	})

	t.Run("tokens refill after window", func(t *testing.T) {
		rl, now := newTestLimiter(2, time.Minute)
		defer rl.Stop()

		assert.True(t, rl.Allow("k"))
		assert.True(t, rl.Allow("k"))
		assert.False(t, rl.Allow("k"))

		*now = now.Add(time.Minute)
		assert.True(t, rl.Allow("k"))
	})

	t.Run("old buckets are cleaned up", func(t *testing.T) {
		rl, now := newTestLimiter(2, time.Minute)
		defer rl.Stop()

		rl.Allow("stale")
		*now = now.Add(3 * time.Minute)
		rl.cleanupOldBuckets()

		rl.mu.RLock()
		_, exists := rl.buckets["stale"]
		rl.mu.RUnlock()
		assert.False(t, exists)
	})

	t.Run("stop is idempotent", func(t *testing.T) {
		rl, _ := newTestLimiter(1, time.Minute)
		rl.Stop()
		rl.Stop()
	})
}

func TestRateLimiter_Middleware(t *testing.T) {
	rl, _ := newTestLimiter(2, time.Minute)
	defer rl.Stop()

	handler := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// Разные порты одного клиента попадают в один bucket
	codes := make([]int, 0, 3)
	for _, addr := range []string{"192.168.1.1:1000", "192.168.1.1:1001", "192.168.1.1:1002"} {
		req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		codes = append(codes, w.Code)

		if w.Code == http.StatusTooManyRequests {
			assert.Equal(t, "60", w.Header().Get("Retry-After"))
			assert.JSONEq(t, `{"error":"rate limit exceeded, please try again later"}`, w.Body.String())
		}
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		headers    map[string]string
		name       string
		remoteAddr string
		expected   string
	}{
		{
			name:       "remote addr without port",
			remoteAddr: "192.168.1.1:12345",
			expected:   "192.168.1.1",
		},
		{
			name:       "first X-Forwarded-For entry",
			remoteAddr: "10.0.0.1:1",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.1, 10.0.0.2"},
			expected:   "203.0.113.1",
		},
		{
			name:       "X-Real-IP",
			remoteAddr: "10.0.0.1:1",
			headers:    map[string]string{"X-Real-IP": "203.0.113.7"},
			expected:   "203.0.113.7",
		},
		{
			name:       "remote addr without port stays as is",
			remoteAddr: "unix",
			expected:   "unix",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.expected, getClientIP(req))
		})
	}
}
