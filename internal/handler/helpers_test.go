package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DogDaycare_Go/internal/config"
	"github.com/osse101/DogDaycare_Go/internal/daycare"
	"github.com/osse101/DogDaycare_Go/internal/database/memory"
	"github.com/osse101/DogDaycare_Go/internal/event"
	"github.com/osse101/DogDaycare_Go/internal/testing/randtest"
)

// newTestService returns a daycare service with the default session and
// no random game events
func newTestService(t *testing.T) daycare.Service {
	t.Helper()
	svc := daycare.NewService(memory.NewSessionStore(), event.NewMemoryBus(), config.DefaultBalance(), randtest.Fixed{F: 0.99})
	svc.Restore(context.Background())
	return svc
}

// doJSON runs h against a request carrying body encoded as JSON
func doJSON(t *testing.T, h http.HandlerFunc, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		if s, ok := body.(string); ok {
			r = bytes.NewBufferString(s)
		} else {
			b, err := json.Marshal(body)
			require.NoError(t, err)
			r = bytes.NewReader(b)
		}
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// withURLParam attaches a chi route parameter to the request
func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
