// Package metrics exposes Prometheus collectors for HTTP traffic and the
// application workflow.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "weiyue"

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		},
		[]string{"method", "route"},
	)

	applicationsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "applications",
			Name:      "created_total",
			Help:      "Applications submitted, by kind.",
		},
		[]string{"kind"},
	)

	applicationsAudited = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "applications",
			Name:      "audited_total",
			Help:      "Applications audited, by kind and decision.",
		},
		[]string{"kind", "decision"},
	)
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		applicationsCreated,
		applicationsAudited,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// ObserveHTTP records one handled request.
func ObserveHTTP(method, route, status string, seconds float64) {
	httpRequests.WithLabelValues(method, route, status).Inc()
	httpDuration.WithLabelValues(method, route).Observe(seconds)
}

// ApplicationCreated counts a submitted application of kind "default" or "recovery".
func ApplicationCreated(kind string) {
	applicationsCreated.WithLabelValues(kind).Inc()
}

// ApplicationAudited counts an audit decision.
func ApplicationAudited(kind, decision string) {
	applicationsAudited.WithLabelValues(kind, decision).Inc()
}

// LifecycleRecorder adapts the package counters to the lifecycle use cases.
type LifecycleRecorder struct{}

func (LifecycleRecorder) ApplicationCreated(kind string)           { ApplicationCreated(kind) }
func (LifecycleRecorder) ApplicationAudited(kind, decision string) { ApplicationAudited(kind, decision) }
