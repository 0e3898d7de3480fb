package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type limiterClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *limiterClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *limiterClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestLimiter(rps int) (*RateLimiter, *limiterClock) {
	clock := &limiterClock{now: time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)}
	rl := NewRateLimiter(rps)
	rl.now = clock.Now
	return rl, clock
}

func hit(e *echo.Echo, rl *RateLimiter, ip string) int {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/history/transactions", nil)
	req.RemoteAddr = ip + ":12345"
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = rl.Middleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)
	return rec.Code
}

func TestRateLimiter_BurstThenReject(t *testing.T) {
	e := echo.New()
	rl, _ := newTestLimiter(5)

	for i := 0; i < 10; i++ {
		require.Equal(t, http.StatusOK, hit(e, rl, "192.168.1.100"), "request %d", i)
	}
	assert.Equal(t, http.StatusTooManyRequests, hit(e, rl, "192.168.1.100"))
}

func TestRateLimiter_Refills(t *testing.T) {
	e := echo.New()
	rl, clock := newTestLimiter(1)

	assert.Equal(t, http.StatusOK, hit(e, rl, "10.0.0.1"))
	assert.Equal(t, http.StatusOK, hit(e, rl, "10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, hit(e, rl, "10.0.0.1"))

	clock.Advance(time.Second)
	assert.Equal(t, http.StatusOK, hit(e, rl, "10.0.0.1"))
}

func TestRateLimiter_SeparateBucketsPerIP(t *testing.T) {
	e := echo.New()
	rl, _ := newTestLimiter(1)

	assert.Equal(t, http.StatusOK, hit(e, rl, "10.0.0.1"))
	assert.Equal(t, http.StatusOK, hit(e, rl, "10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, hit(e, rl, "10.0.0.1"))
	assert.Equal(t, http.StatusOK, hit(e, rl, "10.0.0.2"))
}

func TestRateLimiter_RejectionBody(t *testing.T) {
	e := echo.New()
	rl, _ := newTestLimiter(1)
	rl.burst = 0

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, rl.Middleware()(func(c echo.Context) error { return nil })(c))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "SYSTEM_006")
}

func TestRateLimiter_CleanupEvictsIdleVisitors(t *testing.T) {
	e := echo.New()
	rl, clock := newTestLimiter(5)

	hit(e, rl, "10.0.0.1")
	clock.Advance(2 * time.Minute)
	hit(e, rl, "10.0.0.2")
	clock.Advance(2 * time.Minute)

	assert.Equal(t, 1, rl.cleanup())
	assert.Equal(t, 1, rl.size())
}

func TestRateLimiter_RunStopsWithContext(t *testing.T) {
	rl, _ := newTestLimiter(5)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		rl.Run(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRateLimiter_Concurrent(t *testing.T) {
	e := echo.New()
	rl, _ := newTestLimiter(50)

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if hit(e, rl, "10.0.0.9") == http.StatusOK {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	// Time is frozen, so exactly the burst gets through.
	assert.Equal(t, 100, allowed)
}
