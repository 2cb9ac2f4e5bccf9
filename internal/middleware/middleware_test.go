package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"smart-task-analyzer/pkg/log"
)

// Mock logger for testing
type mockLogger struct {
	warnings int
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     { m.warnings++ }
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   { m.warnings++ }
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, log.RequestIDFrom(c.Request.Context()))
	})
	return r
}

func TestRequestID(t *testing.T) {
	mw := New(&mockLogger{}, Config{})
	r := newEngine(mw.RequestID())

	t.Run("generates an id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		id := w.Header().Get(RequestIDHeader)
		if id == "" {
			t.Fatal("expected a generated request id")
		}
		if w.Body.String() != id {
			t.Errorf("context id %q does not match header %q", w.Body.String(), id)
		}
	})

	t.Run("keeps the caller id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		r.ServeHTTP(w, req)

		if got := w.Header().Get(RequestIDHeader); got != "abc-123" {
			t.Errorf("expected abc-123, got %q", got)
		}
		if w.Body.String() != "abc-123" {
			t.Errorf("expected context id abc-123, got %q", w.Body.String())
		}
	})
}

func TestRateLimit(t *testing.T) {
	t.Run("disabled passes everything", func(t *testing.T) {
		mw := New(&mockLogger{}, Config{RateLimitEnabled: false, RequestsPerMin: 1})
		r := newEngine(mw.RateLimit())

		for i := 0; i < 20; i++ {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
			if w.Code != http.StatusOK {
				t.Fatalf("request %d: expected 200, got %d", i, w.Code)
			}
		}
	})

	t.Run("rejects after the burst", func(t *testing.T) {
		l := &mockLogger{}
		mw := New(l, Config{RateLimitEnabled: true, RequestsPerMin: 20})
		r := newEngine(mw.RateLimit())

		var limited int
		for i := 0; i < 10; i++ {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
			if w.Code == http.StatusTooManyRequests {
				limited++
			}
		}

		if limited == 0 {
			t.Error("expected some requests to be rate limited")
		}
		if l.warnings != limited {
			t.Errorf("expected %d warnings, got %d", limited, l.warnings)
		}
	})

	t.Run("clients are limited separately", func(t *testing.T) {
		mw := New(&mockLogger{}, Config{RateLimitEnabled: true, RequestsPerMin: 10})
		r := newEngine(mw.RateLimit())

		for _, addr := range []string{"10.0.0.1:1000", "10.0.0.2:1000"} {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.RemoteAddr = addr
			r.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				t.Errorf("%s: expected 200, got %d", addr, w.Code)
			}
		}
	})
}

func TestLogger(t *testing.T) {
	l := &mockLogger{}
	mw := New(l, Config{})
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.Logger())
	r.GET("/bad", func(c *gin.Context) { c.Status(http.StatusBadRequest) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bad", nil))

	if l.warnings != 1 {
		t.Errorf("expected a warning for a 400, got %d", l.warnings)
	}
}
