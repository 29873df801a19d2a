package stats

import (
	"testing"
	"time"

	"github.com/lcalzada-xor/netwatch/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleWith(reach domain.Reachability) domain.Sample {
	return domain.Sample{Timestamp: time.Now(), LinkState: domain.LinkConnected, Reachability: reach}
}

func TestUptimePercent(t *testing.T) {
	tests := []struct {
		name     string
		reaches  []domain.Reachability
		expected float64
	}{
		{"all up", []domain.Reachability{domain.Reachable, domain.Reachable}, 100},
		{"all down", []domain.Reachability{domain.NotReachable, domain.ProbeError}, 0},
		{"half up", []domain.Reachability{domain.Reachable, domain.NotReachable}, 50},
		{"unknown counts as down", []domain.Reachability{domain.Reachable, domain.ReachUnknown, domain.Reachable, domain.Reachable}, 75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var samples []domain.Sample
			for _, r := range tt.reaches {
				samples = append(samples, sampleWith(r))
			}

			pct := UptimePercent(samples)
			require.NotNil(t, pct)
			assert.InDelta(t, tt.expected, *pct, 0.001)
			assert.GreaterOrEqual(t, *pct, 0.0)
			assert.LessOrEqual(t, *pct, 100.0)
		})
	}
}

func TestUptimePercent_Empty(t *testing.T) {
	assert.Nil(t, UptimePercent(nil))
	assert.Nil(t, UptimePercent([]domain.Sample{}))
}

func TestLongestOutageStreak(t *testing.T) {
	tests := []struct {
		name     string
		reaches  []domain.Reachability
		expected int
	}{
		{"empty", nil, 0},
		{"no outage", []domain.Reachability{domain.Reachable, domain.Reachable}, 0},
		{"middle run of two", []domain.Reachability{domain.Reachable, domain.NotReachable, domain.NotReachable, domain.Reachable}, 2},
		{"trailing outage", []domain.Reachability{domain.Reachable, domain.NotReachable, domain.Reachable, domain.NotReachable, domain.NotReachable, domain.NotReachable}, 3},
		{"mixed down states count together", []domain.Reachability{domain.NotReachable, domain.ProbeError, domain.ReachUnknown, domain.Reachable}, 3},
		{"all down", []domain.Reachability{domain.ProbeError, domain.ProbeError}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var samples []domain.Sample
			for _, r := range tt.reaches {
				samples = append(samples, sampleWith(r))
			}
			assert.Equal(t, tt.expected, LongestOutageStreak(samples))
		})
	}
}

func TestAverageSignal_IgnoresAbsent(t *testing.T) {
	s1, s3 := -40, -60
	samples := []domain.Sample{
		{Signal: &s1},
		{Signal: nil},
		{Signal: &s3},
	}

	avg := AverageSignal(samples)
	require.NotNil(t, avg)
	assert.InDelta(t, -50.0, *avg, 0.001)
}

func TestAverageSignal_NonePresent(t *testing.T) {
	samples := []domain.Sample{{}, {}}
	assert.Nil(t, AverageSignal(samples))
	assert.Nil(t, AverageSignal(nil))
}

func TestAveragePing(t *testing.T) {
	r1, r2 := 10.0, 30.0
	samples := []domain.Sample{
		{RTTMs: &r1},
		{RTTMs: nil},
		{RTTMs: &r2},
	}

	avg := AveragePing(samples)
	require.NotNil(t, avg)
	assert.InDelta(t, 20.0, *avg, 0.001)

	assert.Nil(t, AveragePing([]domain.Sample{{}}))
}

func TestSummarize(t *testing.T) {
	rtt := 20.0
	signal := -50
	samples := []domain.Sample{
		{LinkState: domain.LinkConnected, Reachability: domain.Reachable, Signal: &signal, RTTMs: &rtt},
		{LinkState: domain.LinkDisconnected, Reachability: domain.NotReachable},
		{LinkState: domain.LinkDisconnected, Reachability: domain.NotReachable},
		{LinkState: domain.LinkConnected, Reachability: domain.Reachable, Signal: &signal, RTTMs: &rtt},
	}

	summary := Summarize(samples, 5*time.Second)

	assert.Equal(t, 4, summary.SampleCount)
	require.NotNil(t, summary.UptimePercent)
	assert.InDelta(t, 50.0, *summary.UptimePercent, 0.001)
	assert.Equal(t, 2, summary.LongestOutageSamples)
	require.NotNil(t, summary.LongestOutageSeconds)
	assert.InDelta(t, 10.0, *summary.LongestOutageSeconds, 0.001)
	require.NotNil(t, summary.AverageSignal)
	assert.InDelta(t, -50.0, *summary.AverageSignal, 0.001)
	require.NotNil(t, summary.AveragePingMs)
	assert.InDelta(t, 20.0, *summary.AveragePingMs, 0.001)
	assert.False(t, summary.GeneratedAt.IsZero())
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil, 5*time.Second)

	// Every metric is nil on empty input, never a fault
	assert.Equal(t, 0, summary.SampleCount)
	assert.Nil(t, summary.UptimePercent)
	assert.Equal(t, 0, summary.LongestOutageSamples)
	assert.Nil(t, summary.LongestOutageSeconds)
	assert.Nil(t, summary.AverageSignal)
	assert.Nil(t, summary.AveragePingMs)
}
