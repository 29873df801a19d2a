package domain

import (
	"time"
)

// Summary is an aggregated snapshot of connectivity health derived from the
// sample window. Metrics that are undefined on the underlying data (empty
// window, no signal readings, no successful probes) are nil rather than zero.
type Summary struct {
	SampleCount          int      `json:"sample_count"`
	UptimePercent        *float64 `json:"uptime_percent"`
	LongestOutageSamples int      `json:"longest_outage_samples"`
	LongestOutageSeconds *float64 `json:"longest_outage_seconds"`
	AverageSignal        *float64 `json:"average_signal_dbm"`
	AveragePingMs        *float64 `json:"average_ping_ms"`

	GeneratedAt time.Time `json:"generated_at"`
}

// IsStale returns true if the summary is older than the given TTL.
func (s *Summary) IsStale(ttl time.Duration) bool {
	return time.Since(s.GeneratedAt) > ttl
}

// SessionInfo exposes process lifecycle timestamps. LastRunAt is nil on the
// first ever run (no prior shutdown marker found).
type SessionInfo struct {
	StartedAt time.Time  `json:"started_at"`
	LastRunAt *time.Time `json:"last_run_at,omitempty"`
}
