package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/turtacn/certgen/pkg/constants"
)

// Metrics manages the Prometheus metrics of a single certgen run. A private
// registry is used so that only these series end up in the textfile.
type Metrics struct {
	registry *prometheus.Registry

	Operations       *prometheus.CounterVec
	OperationLatency *prometheus.HistogramVec
	ArtifactBytes    *prometheus.CounterVec
}

// NewMetrics creates and registers the metrics under namespace.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "certgen"
	}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "operations_total",
				Help:      "Total number of certificate material operations.",
			},
			[]string{"operation", "result"},
		),
		OperationLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "operation_duration_seconds",
				Help:      "Duration of certificate material operations.",
				Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"operation"},
		),
		ArtifactBytes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "artifact_bytes_total",
				Help:      "Bytes written per artifact kind.",
			},
			[]string{"artifact"},
		),
	}

	m.registry.MustRegister(m.Operations, m.OperationLatency, m.ArtifactBytes)
	return m
}

// RecordOperation records the outcome and latency of an operation.
func (m *Metrics) RecordOperation(op constants.Operation, result constants.OperationResult, duration time.Duration) {
	m.Operations.WithLabelValues(string(op), string(result)).Inc()
	m.OperationLatency.WithLabelValues(string(op)).Observe(duration.Seconds())
}

// RecordArtifact records the size of a written artifact.
func (m *Metrics) RecordArtifact(artifact string, size int) {
	m.ArtifactBytes.WithLabelValues(artifact).Add(float64(size))
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes all series to path in the node-exporter textfile format.
// An empty path is a no-op.
func (m *Metrics) WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.registry)
}
