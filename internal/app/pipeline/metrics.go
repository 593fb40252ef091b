package pipeline

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Run outcomes recorded in summarizer_runs_total.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Metrics records pipeline activity.
type Metrics struct {
	runs          *prometheus.CounterVec
	stageDuration *prometheus.HistogramVec
	reportsSaved  prometheus.Counter
}

// NewMetrics creates the pipeline collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "summarizer_runs_total",
			Help: "Pipeline runs by outcome.",
		}, []string{"outcome"}),
		stageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "summarizer_stage_duration_seconds",
			Help:    "Time spent in each pipeline stage.",
			Buckets: []float64{0.01, 0.1, 0.5, 1, 5, 15, 30, 60, 120, 300, 600},
		}, []string{"stage"}),
		reportsSaved: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "summarizer_reports_saved_total",
			Help: "Reports written to the output directory.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.runs, m.stageDuration, m.reportsSaved)
	}
	return m
}

// RecordRun counts a finished run.
func (m *Metrics) RecordRun(outcome string) {
	m.runs.WithLabelValues(outcome).Inc()
}

// ObserveStage records how long stage took.
func (m *Metrics) ObserveStage(stage Stage, elapsed time.Duration) {
	m.stageDuration.WithLabelValues(string(stage)).Observe(elapsed.Seconds())
}

// RecordSave counts a saved report.
func (m *Metrics) RecordSave() {
	m.reportsSaved.Inc()
}
