package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the application collectors on their own registry
type Metrics struct {
	registry           *prometheus.Registry
	QuantsCreated      prometheus.Counter
	ValidationFailures *prometheus.CounterVec
	SearchRequests     *prometheus.CounterVec
}

// New registers the collectors plus the Go and process collectors
func New() *Metrics {
	registry := prometheus.NewRegistry()
	m := &Metrics{
		registry: registry,
		QuantsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quanti",
			Name:      "quants_created_total",
			Help:      "Number of quants saved.",
		}),
		ValidationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quanti",
			Name:      "quant_validation_failures_total",
			Help:      "Quant form failures by field and kind.",
		}, []string{"field", "kind"}),
		SearchRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quanti",
			Name:      "sequencescape_searches_total",
			Help:      "Sequencescape searches by search name and outcome.",
		}, []string{"search", "outcome"}),
	}
	registry.MustRegister(
		m.QuantsCreated,
		m.ValidationFailures,
		m.SearchRequests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveValidationFailure counts one failed field
func (m *Metrics) ObserveValidationFailure(field, kind string) {
	m.ValidationFailures.WithLabelValues(field, kind).Inc()
}

// ObserveSearch counts one Sequencescape search
func (m *Metrics) ObserveSearch(search, outcome string) {
	m.SearchRequests.WithLabelValues(search, outcome).Inc()
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
