// Package metrics exposes Prometheus instrumentation for match runs.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	channelsProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mapparr_channels_processed_total",
		Help: "Number of channels run through the matching engine.",
	})

	matches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mapparr_matches_total",
		Help: "Match outcomes by reference source.",
	}, []string{"source"})

	skipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mapparr_channels_skipped_total",
		Help: "Channels left unrenamed (no match or already standardized).",
	})

	runDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "mapparr_run_duration_seconds",
		Help:    "Wall time of a full process run.",
		Buckets: prometheus.DefBuckets,
	})
)

// Recorder implements the jobs metrics interface on the default registry.
type Recorder struct{}

// NewRecorder returns a process-wide recorder.
func NewRecorder() Recorder { return Recorder{} }

// RecordChannel counts one processed channel with its match source.
func (Recorder) RecordChannel(source string, renamed bool) {
	channelsProcessed.Inc()
	matches.WithLabelValues(source).Inc()
	if !renamed {
		skipped.Inc()
	}
}

// RecordRunDuration observes the wall time of a complete run.
func (Recorder) RecordRunDuration(seconds float64) {
	runDuration.Observe(seconds)
}
