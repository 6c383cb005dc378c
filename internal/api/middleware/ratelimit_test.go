package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type stubLimiter struct {
	allowed    bool
	retryAfter time.Duration
	err        error
}

func (l *stubLimiter) Allow(_ context.Context, _ string) (bool, time.Duration, error) {
	return l.allowed, l.retryAfter, l.err
}

func rateLimitRequest(t *testing.T, limiter *stubLimiter) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := RateLimit(limiter, zerolog.Nop())(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, called
}

func TestRateLimit_AllowsUnderLimit(t *testing.T) {
	rec, called := rateLimitRequest(t, &stubLimiter{allowed: true})
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRateLimit_RejectsWithRetryAfter(t *testing.T) {
	rec, called := rateLimitRequest(t, &stubLimiter{allowed: false, retryAfter: 42 * time.Second})
	if called {
		t.Fatalf("next should not be called")
	}
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	if got := rec.Header().Get("Retry-After"); got != "42" {
		t.Fatalf("expected Retry-After 42, got %q", got)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["retry_after"] != float64(42) {
		t.Fatalf("expected retry_after 42 in body, got %v", body["retry_after"])
	}
}

func TestRateLimit_RetryAfterFloorsAtOneSecond(t *testing.T) {
	rec, _ := rateLimitRequest(t, &stubLimiter{allowed: false, retryAfter: 200 * time.Millisecond})
	if got := rec.Header().Get("Retry-After"); got != "1" {
		t.Fatalf("expected Retry-After 1, got %q", got)
	}
}

func TestRateLimit_FailsOpenOnLimiterError(t *testing.T) {
	rec, called := rateLimitRequest(t, &stubLimiter{err: errors.New("redis down")})
	if !called {
		t.Fatalf("expected request to pass through when limiter errors")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
