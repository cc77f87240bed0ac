package observability

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/mael/pkg/domain"
)

// Document outcome label values.
const (
	StatusConverted = "converted"
	StatusSkipped   = "skipped"
)

// Metrics records conversion activity.
type Metrics struct {
	registry  *prometheus.Registry
	documents *prometheus.CounterVec
	steps     prometheus.Counter
	duration  prometheus.Histogram
}

// NewMetrics creates the collectors and registers them in a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		documents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mael_documents_total",
				Help: "Total number of markdown documents processed, by outcome",
			},
			[]string{"status"},
		),
		steps: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mael_steps_total",
			Help: "Total number of step rows produced",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "mael_conversion_duration_seconds",
			Help:    "Duration of complete conversion runs",
			Buckets: prometheus.DefBuckets,
		}),
	}
	m.registry.MustRegister(m.documents, m.steps, m.duration)
	return m
}

// Hooks returns lifecycle hooks that feed the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnDocumentParsed: func(_ context.Context, e *domain.DocumentEvent) {
			m.documents.WithLabelValues(StatusConverted).Inc()
			m.steps.Add(float64(e.Steps))
		},
		OnDocumentSkipped: func(_ context.Context, _ *domain.DocumentEvent) {
			m.documents.WithLabelValues(StatusSkipped).Inc()
		},
		OnOutputSaved: func(_ context.Context, e *domain.OutputEvent) {
			m.duration.Observe(e.Duration.Seconds())
		},
	}
}

// Gatherer exposes the underlying registry.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// Handler serves the metrics in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// WriteTextfile dumps the current values for the node exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	return nil
}
