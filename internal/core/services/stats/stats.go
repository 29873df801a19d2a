package stats

import (
	"time"

	"github.com/lcalzada-xor/netwatch/internal/core/domain"
)

// UptimePercent returns the percentage of samples with a Reachable probe
// result, or nil for an empty sequence.
func UptimePercent(samples []domain.Sample) *float64 {
	if len(samples) == 0 {
		return nil
	}
	up := 0
	for _, s := range samples {
		if s.IsUp() {
			up++
		}
	}
	pct := 100 * float64(up) / float64(len(samples))
	return &pct
}

// LongestOutageStreak returns the length, in samples, of the longest run of
// consecutive non-Reachable samples. Unknown counts as down: a sample where
// we could not even read the link is not evidence of connectivity.
func LongestOutageStreak(samples []domain.Sample) int {
	longest, current := 0, 0
	for _, s := range samples {
		if s.IsUp() {
			current = 0
			continue
		}
		current++
		if current > longest {
			longest = current
		}
	}
	return longest
}

// AverageSignal returns the arithmetic mean of the signal readings that are
// present, ignoring samples without one. Nil when no readings exist.
func AverageSignal(samples []domain.Sample) *float64 {
	var total float64
	count := 0
	for _, s := range samples {
		if s.Signal != nil {
			total += float64(*s.Signal)
			count++
		}
	}
	if count == 0 {
		return nil
	}
	avg := total / float64(count)
	return &avg
}

// AveragePing returns the arithmetic mean of the round-trip times that are
// present. Nil when no successful probe exists in the sequence.
func AveragePing(samples []domain.Sample) *float64 {
	var total float64
	count := 0
	for _, s := range samples {
		if s.RTTMs != nil {
			total += *s.RTTMs
			count++
		}
	}
	if count == 0 {
		return nil
	}
	avg := total / float64(count)
	return &avg
}

// Summarize bundles the four health metrics over the given samples. The
// sampling interval is used to convert the outage streak from a sample count
// to wall-clock seconds; the conversion is nil exactly when the streak is
// undefined (empty input).
func Summarize(samples []domain.Sample, interval time.Duration) domain.Summary {
	summary := domain.Summary{
		SampleCount:   len(samples),
		UptimePercent: UptimePercent(samples),
		AverageSignal: AverageSignal(samples),
		AveragePingMs: AveragePing(samples),
		GeneratedAt:   time.Now(),
	}
	if len(samples) > 0 {
		streak := LongestOutageStreak(samples)
		summary.LongestOutageSamples = streak
		secs := float64(streak) * interval.Seconds()
		summary.LongestOutageSeconds = &secs
	}
	return summary
}
