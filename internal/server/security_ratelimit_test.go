package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimitMiddleware(t *testing.T) {
	const limit = 5
	guard := NewClientGuard(limit)
	now := time.Now()
	guard.now = func() time.Time { return now }

	handler := RateLimitMiddleware(nil, guard)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("GET", "/api/v1/session", nil)
		req.RemoteAddr = ip + ":1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	ip := "192.168.1.100"
	for i := range limit {
		assert.Equal(t, http.StatusOK, send(ip).Code, "request %d", i)
	}

	rec := send(ip)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, RetryAfterSeconds, rec.Header().Get(HeaderRetryAfter))
	assert.Equal(t, limit+1, guard.Requests(ip))

	// Other clients keep their own budget
	assert.Equal(t, http.StatusOK, send("192.168.1.101").Code)

	// The client's window closes and a new one opens
	now = now.Add(ClientWindow)
	assert.Equal(t, http.StatusOK, send(ip).Code)
	assert.Equal(t, 1, guard.Requests(ip))
}

func TestClientGuard_FailedAuthSharesWindow(t *testing.T) {
	guard := NewClientGuard(10)
	for range FailedAuthAlertCount + 1 {
		guard.FailedAuth("10.0.0.9")
	}
	assert.Zero(t, guard.Requests("10.0.0.9"))
	assert.True(t, guard.Allow("10.0.0.9"))
	assert.Equal(t, 1, guard.Requests("10.0.0.9"))
}

func TestClientGuard_UnknownClient(t *testing.T) {
	assert.Zero(t, NewClientGuard(1).Requests("203.0.113.1"))
}
