// Package metrics exposes Prometheus collectors for HTTP traffic and quote lifecycle counters.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"insurance/config"
	"insurance/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

// Metrics owns a private registry so parallel tests never collide on registration.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	quotesCreated       *prometheus.CounterVec
	quoteTransitions    *prometheus.CounterVec
	quoteRejections     *prometheus.CounterVec
	customersRegistered prometheus.Counter
}

// Params holds dependencies for Metrics, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
}

// New registers every collector under the configured namespace.
func New(params Params) *Metrics {
	namespace := "insurance"
	if params.Config != nil && params.Config.Metrics != nil && params.Config.Metrics.Namespace != "" {
		namespace = params.Config.Metrics.Namespace
	}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		quotesCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quotes_created_total",
			Help:      "Quotes created, by policy type",
		}, []string{"policy_type"}),
		quoteTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quote_transitions_total",
			Help:      "Committed quote status transitions",
		}, []string{"from", "to"}),
		quoteRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quote_rejections_total",
			Help:      "Quote operations rejected, by operation and error code",
		}, []string{"operation", "reason"}),
		customersRegistered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "customers_registered_total",
			Help:      "Customers registered",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.quotesCreated,
		m.quoteTransitions,
		m.quoteRejections,
		m.customersRegistered,
	)

	return m
}

// NewRecorder exposes m to the use case layer.
func NewRecorder(m *Metrics) service.MetricsRecorder {
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveHTTPRequest records one served request. path is the route template, not the raw URL.
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, elapsed time.Duration) {
	statusStr := strconv.Itoa(status)
	m.httpRequests.WithLabelValues(method, path, statusStr).Inc()
	m.httpDuration.WithLabelValues(method, path, statusStr).Observe(elapsed.Seconds())
}

func (m *Metrics) QuoteCreated(policyType string) {
	m.quotesCreated.WithLabelValues(policyType).Inc()
}

func (m *Metrics) QuoteTransitioned(from, to string) {
	m.quoteTransitions.WithLabelValues(from, to).Inc()
}

func (m *Metrics) QuoteRejected(operation, reason string) {
	m.quoteRejections.WithLabelValues(operation, reason).Inc()
}

func (m *Metrics) CustomerRegistered() {
	m.customersRegistered.Inc()
}
