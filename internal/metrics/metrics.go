// Package metrics exposes Prometheus instruments for the HTTP surface and
// the data-source chain.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests counts completed requests by method, route and status.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "turfnest_http_requests_total",
		Help: "Completed HTTP requests.",
	}, []string{"method", "path", "status"})

	// HTTPDuration observes request latency by route.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "turfnest_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	// SourceFallbacks counts catalogue reads that fell through to a
	// non-primary provider.
	SourceFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "turfnest_source_fallbacks_total",
		Help: "Catalogue reads served by a fallback data source.",
	}, []string{"collection"})

	// LocalOnlyBookings counts bookings that reached only the local mirror.
	LocalOnlyBookings = promauto.NewCounter(prometheus.CounterOpts{
		Name: "turfnest_local_only_bookings_total",
		Help: "Bookings persisted only in the local mirror.",
	})
)
