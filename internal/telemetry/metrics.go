package telemetry

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// SamplesTotal counts recorded samples by link state and reachability outcome
	SamplesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "netwatch",
			Name:      "samples_total",
			Help:      "Total number of samples recorded",
		},
		[]string{"link_state", "reachability"},
	)

	// ProbeErrors counts probe failures by stage (link read vs reachability)
	ProbeErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "netwatch",
			Name:      "probe_errors_total",
			Help:      "Total number of probe failures",
		},
		[]string{"stage"},
	)

	// DurableWriteErrors counts failed appends to the durable sample log
	DurableWriteErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "netwatch",
			Name:      "durable_write_errors_total",
			Help:      "Total number of failed durable log writes",
		},
	)

	// ProbeRTT observes successful reachability round-trip times in seconds
	ProbeRTT = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "netwatch",
			Name:      "probe_rtt_seconds",
			Help:      "Round-trip time of successful reachability probes",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
		},
	)

	// Ensure metrics are only registered once
	once sync.Once
)

// InitMetrics registers all metrics with the global Prometheus registry.
// This function is idempotent and can be called multiple times safely.
func InitMetrics() {
	once.Do(func() {
		// Register metrics, ignoring errors if already registered
		prometheus.DefaultRegisterer.Register(SamplesTotal)
		prometheus.DefaultRegisterer.Register(ProbeErrors)
		prometheus.DefaultRegisterer.Register(DurableWriteErrors)
		prometheus.DefaultRegisterer.Register(ProbeRTT)
	})
}
