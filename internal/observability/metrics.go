// Package observability provides Prometheus metrics and OpenTelemetry tracing.
package observability

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CacheHits counts cache-aside lookups served from Redis, by key prefix.
	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_cache_hits_total",
		Help: "Total number of cache lookups served from Redis",
	}, []string{"key"})

	// CacheMisses counts cache-aside lookups that fell through to the database.
	CacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_cache_misses_total",
		Help: "Total number of cache lookups that missed",
	}, []string{"key"})

	// DatabaseQueryLatency records query latency by SQL operation.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "inkwell_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
)

// RecordCacheHit increments the hit counter for the key's prefix.
func RecordCacheHit(key string) {
	CacheHits.WithLabelValues(keyPrefix(key)).Inc()
}

// RecordCacheMiss increments the miss counter for the key's prefix.
func RecordCacheMiss(key string) {
	CacheMisses.WithLabelValues(keyPrefix(key)).Inc()
}

// ObserveQuery records latency for one SQL statement. The operation label is
// derived from the statement's leading keyword to keep cardinality low.
func ObserveQuery(sql string, elapsed time.Duration) {
	DatabaseQueryLatency.WithLabelValues(sqlOperation(sql)).Observe(elapsed.Seconds())
}

func sqlOperation(sql string) string {
	fields := strings.Fields(sql)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}

// keyPrefix collapses keys like "post:42" into "post" so counter labels
// stay bounded.
func keyPrefix(key string) string {
	if i := strings.IndexByte(key, ':'); i > 0 {
		return key[:i]
	}
	return key
}
