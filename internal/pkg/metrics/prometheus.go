// Package metrics holds the prometheus collectors of the booking service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all prometheus metrics. Collectors are registered on a private
// registry so several instances can coexist (tests, multiple servers).
type Metrics struct {
	Registry *prometheus.Registry

	OrdersCreated     prometheus.Counter
	OrdersCancelled   prometheus.Counter
	Reassignments     *prometheus.CounterVec
	SelectorExhausted *prometheus.CounterVec
	LoginFailures     prometheus.Counter
	IntegrityFaults   *prometheus.CounterVec
	RequestDuration   *prometheus.HistogramVec
}

// NewMetrics creates and registers the collectors under namespace.
func NewMetrics(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		OrdersCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_created_total",
			Help:      "The total number of orders created",
		}),
		OrdersCancelled: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_cancelled_total",
			Help:      "The total number of orders removed by cancellation",
		}),
		Reassignments: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reassignments_total",
			Help:      "The total number of order resource reassignments",
		}, []string{"resource"}),
		SelectorExhausted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "selector_exhausted_total",
			Help:      "Selections that found no eligible candidate",
		}, []string{"resource"}),
		LoginFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "login_failures_total",
			Help:      "The total number of failed credential verifications",
		}),
		IntegrityFaults: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "integrity_faults_total",
			Help:      "Foreign keys found pointing at missing rows",
		}, []string{"attachment"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Time taken to serve HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),
	}
}

// Handler exposes the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}
