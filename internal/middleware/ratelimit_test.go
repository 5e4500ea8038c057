package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticket-booking/internal/config"
)

// Redis being down must never block traffic: with a nil client both the
// limiter and the cache have to be transparent pass-throughs.
func TestRateLimitNilClientPassesThrough(t *testing.T) {
	cfg := config.RateLimitConfig{
		Enabled:        true,
		Capacity:       1,
		RefillTokens:   1,
		RefillInterval: time.Second,
		TTL:            time.Minute,
	}
	mw := RateLimit(cfg, nil)

	e := echo.New()
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		reached := false
		h := mw(func(c echo.Context) error {
			reached = true
			return c.NoContent(http.StatusOK)
		})
		if err := h(c); err != nil {
			t.Fatalf("request %d: handler error: %v", i, err)
		}
		if !reached {
			t.Fatalf("request %d blocked despite nil redis client", i)
		}
	}
}

func TestResponseCacheNilClientPassesThrough(t *testing.T) {
	cfg := config.CacheConfig{
		Enabled:      true,
		Methods:      map[string]bool{"GET": true},
		TTL:          time.Minute,
		Prefix:       "cache",
		MaxBodyBytes: 1 << 20,
	}
	mw := ResponseCache(cfg, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	h := mw(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	})
	if err := h(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !reached {
		t.Fatal("handler not reached despite nil redis client")
	}
	if rec.Header().Get("X-Cache") == "HIT" {
		t.Error("got a cache hit from a nil client")
	}
}
