package middleware

import (
	"sync"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
)

// RedisErrors counts failed Redis commands by command name.
var RedisErrors = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "inkwell_redis_errors_total",
		Help: "Total number of failed Redis commands.",
	},
	[]string{"command"},
)

func init() {
	prometheus.MustRegister(RedisErrors)
}

var (
	promOnce     sync.Once
	promInstance *fiberprometheus.FiberPrometheus
)

// InitMetrics creates the Prometheus middleware for the given service name.
// The instance is shared; the default registry rejects duplicate collectors.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		promInstance = fiberprometheus.New(serviceName)
	})
	return promInstance
}

// MetricsMiddleware returns the request-instrumenting handler for the Prometheus middleware.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
