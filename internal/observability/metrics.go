// Package observability provides Prometheus metrics and OpenTelemetry
// tracing for the application.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// FeedPagesServed counts feed pages served by filter mode.
	FeedPagesServed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_feed_pages_served_total",
		Help: "Total number of feed pages served by filter mode",
	}, []string{"mode"})

	// FeedResolveLatency records feed resolution latency by filter mode.
	FeedResolveLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ripple_feed_resolve_latency_seconds",
		Help:    "Feed resolution latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"mode"})

	// TogglesApplied counts relationship toggles by kind ("follow", "like")
	// and the direction the toggle resolved to ("on", "off").
	TogglesApplied = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_toggles_applied_total",
		Help: "Total number of follow/like toggles applied",
	}, []string{"kind", "direction"})

	// PostsCreated counts posts created.
	PostsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ripple_posts_created_total",
		Help: "Total number of posts created",
	})
)

// ObserveFeedResolve records a served feed page and its latency.
func ObserveFeedResolve(mode string, start time.Time) {
	FeedPagesServed.WithLabelValues(mode).Inc()
	FeedResolveLatency.WithLabelValues(mode).Observe(time.Since(start).Seconds())
}

// ObserveToggle records a resolved toggle direction.
func ObserveToggle(kind string, on bool) {
	direction := "off"
	if on {
		direction = "on"
	}
	TogglesApplied.WithLabelValues(kind, direction).Inc()
}
