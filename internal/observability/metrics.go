// Package observability provides Prometheus collectors and OpenTelemetry
// tracer setup for the application.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ideaboard_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ideaboard_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// IdeasCreated counts successfully created ideas.
	IdeasCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ideaboard_ideas_created_total",
		Help: "Total number of ideas created",
	})

	// RolesCreated counts successfully created collaboration roles.
	RolesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ideaboard_roles_created_total",
		Help: "Total number of roles created",
	})

	// ApplicationsSubmitted counts successfully submitted role applications.
	ApplicationsSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ideaboard_applications_submitted_total",
		Help: "Total number of role applications submitted",
	})
)

// ObserveQuery records the latency of a database query, e.g. via defer:
//
//	defer ObserveQuery("select", "ideas", time.Now())
func ObserveQuery(operation, table string, start time.Time) {
	DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
}
