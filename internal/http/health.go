package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pantry-service/internal/circuitbreaker"
	"golang.org/x/sync/errgroup"
)

// readinessTimeout bounds each dependency check.
const readinessTimeout = 2 * time.Second

// HealthChecker checks one dependency of the service.
type HealthChecker interface {
	Check(ctx context.Context) error
}

type dependency struct {
	checker  HealthChecker
	breaker  *circuitbreaker.CircuitBreaker
	optional bool
}

// DependencyOption tunes how a dependency affects readiness.
type DependencyOption func(*dependency)

// Optional marks a dependency whose failure degrades the service without making it unready,
// such as the audit log collection.
func Optional() DependencyOption {
	return func(d *dependency) { d.optional = true }
}

// HealthHandler serves the liveness and readiness endpoints.
type HealthHandler struct {
	mu           sync.RWMutex
	dependencies map[string]*dependency
	storage      string
}

// NewHealthHandler creates a HealthHandler reporting in-memory storage until told otherwise.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{
		dependencies: make(map[string]*dependency),
		storage:      "memory",
	}
}

// SetStorage names the inventory storage shown by readiness, e.g. "mongodb".
func (h *HealthHandler) SetStorage(name string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.storage = name
}

// RegisterChecker registers a dependency checked on every readiness request.
func (h *HealthHandler) RegisterChecker(name string, checker HealthChecker, opts ...DependencyOption) {
	h.register(name, &dependency{checker: checker}, opts)
}

// RegisterCircuitBreaker reports a repository's breaker; an open breaker fails readiness.
func (h *HealthHandler) RegisterCircuitBreaker(name string, cb *circuitbreaker.CircuitBreaker, opts ...DependencyOption) {
	h.register(name+"_circuit", &dependency{breaker: cb}, opts)
}

func (h *HealthHandler) register(name string, d *dependency, opts []DependencyOption) {
	for _, opt := range opts {
		opt(d)
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dependencies[name] = d
}

// Register registers health endpoints on the router.
func (h *HealthHandler) Register(router *gin.Engine) {
	router.GET("/healthz", h.Liveness)
	router.GET("/readyz", h.Readiness)
}

// Liveness handles the liveness endpoint.
// @Summary     Liveness check
// @Description Returns OK while the process serves requests.
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]string "Service is alive"
// @Router      /healthz [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles the readiness endpoint.
// @Summary     Readiness check
// @Description Checks every dependency concurrently. A failing required dependency answers 503 "unavailable"; a failing optional one keeps 200 with status "degraded".
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]interface{} "Service is ready"
// @Failure     503 {object} map[string]interface{} "Service is not ready"
// @Router      /readyz [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	h.mu.RLock()
	storage := h.storage
	deps := make(map[string]*dependency, len(h.dependencies))
	for name, d := range h.dependencies {
		deps[name] = d
	}
	h.mu.RUnlock()

	var (
		mu     sync.Mutex
		checks = make(map[string]string, len(deps))
		failed struct{ required, optional bool }
	)
	g, ctx := errgroup.WithContext(c.Request.Context())
	for name, d := range deps {
		g.Go(func() error {
			result, healthy := d.status(ctx)
			mu.Lock()
			defer mu.Unlock()
			checks[name] = result
			if !healthy {
				if d.optional {
					failed.optional = true
				} else {
					failed.required = true
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	status, code := "ok", http.StatusOK
	switch {
	case failed.required:
		status, code = "unavailable", http.StatusServiceUnavailable
	case failed.optional:
		status = "degraded"
	}
	c.JSON(code, gin.H{
		"status":  status,
		"storage": storage,
		"checks":  checks,
	})
}

func (d *dependency) status(ctx context.Context) (string, bool) {
	if d.breaker != nil {
		stats := d.breaker.GetStats()
		return stats.State, stats.IsHealthy
	}
	ctx, cancel := context.WithTimeout(ctx, readinessTimeout)
	defer cancel()
	if err := d.checker.Check(ctx); err != nil {
		return err.Error(), false
	}
	return "ok", true
}
