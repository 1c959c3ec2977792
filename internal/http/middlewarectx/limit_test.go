package middlewarectx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func okHandler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("success")); err != nil {
			t.Errorf("failed to write response: %v", err)
		}
	})
}

func requestForSession(id string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/sessions/"+id+"/messages", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	l := NewRateLimiter(0.001, 2, "id")
	h := l.Middleware(newNoopLogger())(okHandler(t))

	for range 2 {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, requestForSession("s1"))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "success", w.Body.String())
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, requestForSession("s1"))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"status":"Error","error":"too many requests"}`, w.Body.String())
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
}

func TestRateLimiter_KeysAreIndependent(t *testing.T) {
	l := NewRateLimiter(0.001, 1, "id")
	h := l.Middleware(newNoopLogger())(okHandler(t))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, requestForSession("s1"))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, requestForSession("s2"))
	assert.Equal(t, http.StatusOK, w.Code, "other session has its own bucket")

	w = httptest.NewRecorder()
	h.ServeHTTP(w, requestForSession("s1"))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestRateLimiter_Forget(t *testing.T) {
	l := NewRateLimiter(0.001, 1, "id")
	h := l.Middleware(newNoopLogger())(okHandler(t))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, requestForSession("s1"))
	assert.Equal(t, http.StatusOK, w.Code)

	l.Forget("s1")

	w = httptest.NewRecorder()
	h.ServeHTTP(w, requestForSession("s1"))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiter_FallsBackToRemoteAddr(t *testing.T) {
	l := NewRateLimiter(0.001, 1, "id")
	h := l.Middleware(newNoopLogger())(okHandler(t))

	var handlerCalls int
	counting := l.Middleware(newNoopLogger())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		handlerCalls++
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.RemoteAddr = "10.0.0.1:5555"

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req.RemoteAddr = "10.0.0.1:6666"
	w = httptest.NewRecorder()
	counting.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code, "same host shares the limiter")
	assert.Zero(t, handlerCalls)
}

func TestRateLimiter_UnknownKeysLeaveNoEntries(t *testing.T) {
	known := map[string]bool{"s1": true}
	l := NewRateLimiter(0.001, 1, "id", WithKnownKeys(func(key string) bool { return known[key] }))

	var handlerCalls int
	h := l.Middleware(newNoopLogger())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		handlerCalls++
		w.WriteHeader(http.StatusNotFound)
	}))

	for i := range 100 {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, requestForSession(fmt.Sprintf("unknown-%d", i)))
		assert.Equal(t, http.StatusNotFound, w.Code, "unknown session reaches the handler")
	}
	assert.Equal(t, 100, handlerCalls)
	assert.Zero(t, l.Len())

	w := httptest.NewRecorder()
	h.ServeHTTP(w, requestForSession("s1"))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 1, l.Len())

	w = httptest.NewRecorder()
	h.ServeHTTP(w, requestForSession("s1"))
	assert.Equal(t, http.StatusTooManyRequests, w.Code, "known session is still limited")
}

func TestRateLimiter_EvictsIdleEntries(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	l := NewRateLimiter(0.001, 1, "id",
		WithIdleTTL(time.Minute),
		WithClock(func() time.Time { return now }),
	)
	h := l.Middleware(newNoopLogger())(okHandler(t))

	for _, id := range []string{"s1", "s2", "s3"} {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, requestForSession(id))
		require.Equal(t, http.StatusOK, w.Code)
	}
	require.Equal(t, 3, l.Len())

	now = now.Add(30 * time.Second)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, requestForSession("s3"))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, 3, l.Len(), "nothing is idle yet")

	now = now.Add(45 * time.Second)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, requestForSession("s4"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, l.Len(), "s1 and s2 are evicted, s3 and s4 stay")

	w = httptest.NewRecorder()
	h.ServeHTTP(w, requestForSession("s1"))
	assert.Equal(t, http.StatusOK, w.Code, "evicted key gets a fresh bucket")
}
