package middleware

import (
	"net/http"
	"strconv"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/opendap-go/varselect/pkg/guard"
)

// MetricsConfig configures the Prometheus metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "varselect").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for request duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "varselect",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the Prometheus collectors.
type Metrics struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	submissionsTotal *prometheus.CounterVec
}

// NewMetrics creates and registers the collectors. It panics if they are
// already registered on the chosen registry.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests served",
			ConstLabels: config.ConstLabels,
		}, []string{"method", "status"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"method"}),

		submissionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "guard_submissions_total",
			Help:        "Total number of guarded form submissions by outcome",
			ConstLabels: config.ConstLabels,
		}, []string{"outcome"}),
	}
}

// Handler records request count and duration for every request.
func (m *Metrics) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.requestDuration.WithLabelValues(r.Method).Observe(time.Since(start).Seconds())
		m.requestsTotal.WithLabelValues(r.Method, strconv.Itoa(status)).Inc()
	})
}

// GuardObserver returns a guard.Observer that counts outcomes.
func (m *Metrics) GuardObserver() guard.Observer {
	return func(o guard.Outcome) {
		m.submissionsTotal.WithLabelValues(o.String()).Inc()
	}
}
