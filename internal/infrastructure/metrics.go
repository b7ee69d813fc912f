package infrastructure

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "djrc"

// RunMetrics collects the row counts of a single stage run.
// Each run owns its registry; nothing is served over HTTP.
type RunMetrics struct {
	registry *prometheus.Registry

	rows        *prometheus.GaugeVec
	nullCells   *prometheus.GaugeVec
	duration    prometheus.Gauge
	success     prometheus.Gauge
	lastRunTime prometheus.Gauge
}

// NewRunMetrics creates the collectors for stage
func NewRunMetrics(stage string) *RunMetrics {
	labels := prometheus.Labels{"stage": stage}

	m := &RunMetrics{
		registry: prometheus.NewRegistry(),
		rows: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   metricsNamespace,
			Name:        "rows",
			Help:        "Rows remaining after each pipeline step.",
			ConstLabels: labels,
		}, []string{"step"}),
		nullCells: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   metricsNamespace,
			Name:        "null_cells",
			Help:        "Numeric cells that were missing or unparseable, by column.",
			ConstLabels: labels,
		}, []string{"column"}),
		duration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   metricsNamespace,
			Name:        "run_duration_seconds",
			Help:        "Wall time of the last run.",
			ConstLabels: labels,
		}),
		success: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   metricsNamespace,
			Name:        "run_success",
			Help:        "1 if the last run completed, 0 otherwise.",
			ConstLabels: labels,
		}),
		lastRunTime: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   metricsNamespace,
			Name:        "last_run_timestamp_seconds",
			Help:        "Unix time the last run finished.",
			ConstLabels: labels,
		}),
	}

	m.registry.MustRegister(m.rows, m.nullCells, m.duration, m.success, m.lastRunTime)
	return m
}

// SetRows records the row count after step
func (m *RunMetrics) SetRows(step string, n int) {
	m.rows.WithLabelValues(step).Set(float64(n))
}

// SetNullCells records how many cells of column ended up null
func (m *RunMetrics) SetNullCells(column string, n int) {
	m.nullCells.WithLabelValues(column).Set(float64(n))
}

// Finish stamps the run outcome
func (m *RunMetrics) Finish(start time.Time, err error) {
	now := time.Now()
	m.duration.Set(now.Sub(start).Seconds())
	m.lastRunTime.Set(float64(now.Unix()))
	if err != nil {
		m.success.Set(0)
		return
	}
	m.success.Set(1)
}

// Gatherer exposes the run's registry
func (m *RunMetrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteTextfile writes the metrics in text exposition format for the
// node exporter textfile collector. An empty path is a no-op.
func (m *RunMetrics) WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.Gatherer())
}
