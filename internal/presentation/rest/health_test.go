package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvm55/Covey/internal/presentation/rest"
)

func newMux(checks map[string]rest.Check, metrics http.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	rest.NewHealthHandler("underwriting-service", checks, metrics, logger).RegisterRoutes(mux)
	return mux
}

func get(t *testing.T, mux http.Handler, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	var body map[string]any
	if rec.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func TestLiveness(t *testing.T) {
	rec, body := get(t, newMux(nil, nil), "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "underwriting-service", body["service"])
}

func TestReadiness(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("dial tcp: connection refused") }

	t.Run("all checks pass", func(t *testing.T) {
		rec, body := get(t, newMux(map[string]rest.Check{"postgres": ok, "redis": ok}, nil), "/readyz")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ready", body["status"])
	})

	t.Run("a failing check", func(t *testing.T) {
		rec, body := get(t, newMux(map[string]rest.Check{"postgres": ok, "redis": down}, nil), "/readyz")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "not ready", body["status"])
		checks := body["checks"].(map[string]any)
		assert.Equal(t, "ok", checks["postgres"])
		assert.Contains(t, checks["redis"], "connection refused")
	})
}

func TestMetricsRoute(t *testing.T) {
	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "covey_underwriting_runs_total 3\n")
	})

	rec, _ := get(t, newMux(nil, metrics), "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "covey_underwriting_runs_total 3")

	rec, _ = get(t, newMux(nil, nil), "/metrics")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
