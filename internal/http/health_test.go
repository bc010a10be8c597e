package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pantry-service/internal/circuitbreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type checkerFunc func(ctx context.Context) error

func (f checkerFunc) Check(ctx context.Context) error { return f(ctx) }

func openBreaker(t *testing.T) *circuitbreaker.CircuitBreaker {
	t.Helper()
	cb := circuitbreaker.New(circuitbreaker.Config{FailureThreshold: 1, SuccessThreshold: 1, Timeout: time.Hour, Name: "logs"})
	_ = cb.Execute(context.Background(), func() error { return errors.New("no primary") })
	require.True(t, cb.IsOpen())
	return cb
}

type readiness struct {
	Status  string            `json:"status"`
	Storage string            `json:"storage"`
	Checks  map[string]string `json:"checks"`
}

func TestHealthHandler_Readiness(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		setup          func(*testing.T, *HealthHandler)
		expectedStatus int
		expected       readiness
	}{
		{
			name:           "in-memory inventory without dependencies",
			setup:          func(*testing.T, *HealthHandler) {},
			expectedStatus: http.StatusOK,
			expected:       readiness{Status: "ok", Storage: "memory", Checks: map[string]string{}},
		},
		{
			name: "mongodb reachable and breakers closed",
			setup: func(_ *testing.T, h *HealthHandler) {
				h.SetStorage("mongodb")
				h.RegisterChecker("mongodb", checkerFunc(func(context.Context) error { return nil }))
				h.RegisterCircuitBreaker("mongodb_packages", circuitbreaker.New(circuitbreaker.DefaultConfig()))
			},
			expectedStatus: http.StatusOK,
			expected: readiness{Status: "ok", Storage: "mongodb", Checks: map[string]string{
				"mongodb":                  "ok",
				"mongodb_packages_circuit": "closed",
			}},
		},
		{
			name: "mongodb ping fails",
			setup: func(_ *testing.T, h *HealthHandler) {
				h.SetStorage("mongodb")
				h.RegisterChecker("mongodb", checkerFunc(func(context.Context) error { return errors.New("ping timeout") }))
			},
			expectedStatus: http.StatusServiceUnavailable,
			expected: readiness{Status: "unavailable", Storage: "mongodb", Checks: map[string]string{
				"mongodb": "ping timeout",
			}},
		},
		{
			name: "open packages breaker is unready",
			setup: func(t *testing.T, h *HealthHandler) {
				h.RegisterCircuitBreaker("mongodb_packages", openBreaker(t))
			},
			expectedStatus: http.StatusServiceUnavailable,
			expected: readiness{Status: "unavailable", Storage: "memory", Checks: map[string]string{
				"mongodb_packages_circuit": "open",
			}},
		},
		{
			name: "open audit log breaker only degrades",
			setup: func(t *testing.T, h *HealthHandler) {
				h.RegisterCircuitBreaker("mongodb_packages", circuitbreaker.New(circuitbreaker.DefaultConfig()))
				h.RegisterCircuitBreaker("mongodb_logs", openBreaker(t), Optional())
			},
			expectedStatus: http.StatusOK,
			expected: readiness{Status: "degraded", Storage: "memory", Checks: map[string]string{
				"mongodb_packages_circuit": "closed",
				"mongodb_logs_circuit":     "open",
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			handler := NewHealthHandler()
			tt.setup(t, handler)
			handler.Register(router)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			var got readiness
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestHealthHandler_ChecksRunConcurrentlyWithDeadline(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewHealthHandler()

	started := make(chan struct{}, 2)
	slow := checkerFunc(func(ctx context.Context) error {
		started <- struct{}{}
		_, hasDeadline := ctx.Deadline()
		if !hasDeadline {
			return errors.New("no deadline")
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(100 * time.Millisecond):
			return nil
		}
	})
	handler.RegisterChecker("mongodb", slow)
	handler.RegisterChecker("nutrition_llm", slow, Optional())

	router := gin.New()
	handler.Register(router)

	begin := time.Now()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Len(t, started, 2)
	assert.Less(t, time.Since(begin), 190*time.Millisecond)
}

func TestHealthHandler_Liveness(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewHealthHandler()
	handler.RegisterChecker("mongodb", checkerFunc(func(context.Context) error { return errors.New("down") }))
	handler.Register(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
