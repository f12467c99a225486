package experiment

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "hyperwalk"
	subsystem        = "experiment"
)

var (
	trialsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: subsystem,
			Name:      "trials_total",
			Help:      "Total number of finished trials, by graph type and outcome",
		},
		[]string{"graph", "outcome"},
	)

	trialsRunning = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: subsystem,
			Name:      "trials_running",
			Help:      "Number of trials currently walking",
		},
	)

	coverTime = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: subsystem,
			Name:      "cover_time_steps",
			Help:      "Number of steps the completed trials needed to cover the graph",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 20),
		},
		[]string{"graph"},
	)

	experimentDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: subsystem,
			Name:      "duration_seconds",
			Help:      "Time taken to run all the trials of an experiment",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"graph"},
	)
)

const (
	outcomeCompleted = "completed"
	outcomeTruncated = "truncated"
)
