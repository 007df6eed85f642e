package middleware

import (
	"sync"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis command failures by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "clipstream_redis_errors_total",
		Help: "Total number of Redis command errors",
	}, []string{"command"})

	// CascadeFailures counts best-effort cascade steps that failed after a
	// primary delete succeeded. These are logged, never surfaced to callers.
	CascadeFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "clipstream_cascade_failures_total",
		Help: "Total number of failed cascade cleanup steps by entity and step",
	}, []string{"entity", "step"})

	// ViewIncrements counts first-watch view increments.
	ViewIncrements = promauto.NewCounter(prometheus.CounterOpts{
		Name: "clipstream_view_increments_total",
		Help: "Total number of video view increments",
	})
)

var (
	promOnce sync.Once
	promInst *fiberprometheus.FiberPrometheus
)

// InitMetrics creates the Prometheus middleware for the given service name.
// The underlying collectors register against the default registry, so the
// instance is created once and shared.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		promInst = fiberprometheus.New(serviceName)
	})
	return promInst
}

// MetricsMiddleware wires the Prometheus middleware into the app.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
