package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the building directory
type Metrics struct {
	operations      *prometheus.CounterVec
	operationTiming *prometheus.HistogramVec
	records         prometheus.Gauge
	events          *prometheus.CounterVec
	exports         *prometheus.CounterVec
}

// NewMetrics creates the directory metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		operations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "buildings_operations_total",
				Help: "Total number of directory operations by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		operationTiming: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "buildings_operation_duration_ms",
				Help:    "Duration of directory operations in milliseconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25},
			},
			[]string{"operation"},
		),
		records: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "buildings_records",
				Help: "Number of buildings currently held in the directory",
			},
		),
		events: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "buildings_change_events_total",
				Help: "Change events published to the feed by type and outcome",
			},
			[]string{"type", "outcome"},
		),
		exports: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "buildings_exports_total",
				Help: "Exports produced by format and outcome",
			},
			[]string{"format", "outcome"},
		),
	}
}

// ObserveOperation counts an operation and records how long it took.
func (m *Metrics) ObserveOperation(operation, outcome string, started time.Time) {
	m.operations.WithLabelValues(operation, outcome).Inc()
	m.operationTiming.WithLabelValues(operation).Observe(float64(time.Since(started).Microseconds()) / 1000.0)
}

// SetRecordCount sets the current collection size
func (m *Metrics) SetRecordCount(count int) {
	m.records.Set(float64(count))
}

// IncrementEvents counts a change event publish attempt
func (m *Metrics) IncrementEvents(eventType string, err error) {
	m.events.WithLabelValues(eventType, okOrError(err)).Inc()
}

// IncrementExports counts an export attempt
func (m *Metrics) IncrementExports(format string, err error) {
	m.exports.WithLabelValues(format, okOrError(err)).Inc()
}

func okOrError(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
