// Package metrics provides Prometheus metrics collection for the pantry service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// InventoryOperationsTotal counts inventory mutations by operation and outcome.
	InventoryOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_operations_total",
			Help: "Total number of inventory operations",
		},
		[]string{"operation", "status"},
	)

	// InventoryOperationDuration tracks plan plus apply time per operation.
	InventoryOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inventory_operation_duration_seconds",
			Help:    "Inventory operation duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
		[]string{"operation"},
	)

	// InventoryConflictsTotal counts optimistic concurrency conflicts seen while applying diffs.
	InventoryConflictsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_conflicts_total",
			Help: "Total number of concurrency conflicts while applying inventory diffs",
		},
		[]string{"operation"},
	)

	// InventoryInvariantViolationsTotal counts planned diffs that failed conservation checks.
	InventoryInvariantViolationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_invariant_violations_total",
			Help: "Total number of planned diffs rejected by invariant checks",
		},
		[]string{"operation"},
	)

	// CircuitBreakerState is 0 when closed, 1 when open and 2 when half-open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Current circuit breaker state (0 closed, 1 open, 2 half-open)",
		},
		[]string{"name"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordInventoryOperation records the duration and outcome of an inventory operation.
func RecordInventoryOperation(operation string, duration time.Duration, status string) {
	InventoryOperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
	InventoryOperationsTotal.WithLabelValues(operation, status).Inc()
}

// RecordConflict records a concurrency conflict for operation.
func RecordConflict(operation string) {
	InventoryConflictsTotal.WithLabelValues(operation).Inc()
}

// RecordInvariantViolation records a rejected diff for operation.
func RecordInvariantViolation(operation string) {
	InventoryInvariantViolationsTotal.WithLabelValues(operation).Inc()
}

// SetCircuitBreakerState publishes the state of the named circuit breaker.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
