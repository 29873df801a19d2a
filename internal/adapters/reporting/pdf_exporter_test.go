package reporting

import (
	"strings"
	"testing"
	"time"

	"github.com/lcalzada-xor/netwatch/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportHealthReport(t *testing.T) {
	uptime := 97.5
	outage := 15.0
	signal := -52.3
	ping := 18.4
	lastRun := time.Now().Add(-24 * time.Hour)

	summary := domain.Summary{
		SampleCount:          100,
		UptimePercent:        &uptime,
		LongestOutageSamples: 3,
		LongestOutageSeconds: &outage,
		AverageSignal:        &signal,
		AveragePingMs:        &ping,
		GeneratedAt:          time.Now(),
	}
	session := domain.SessionInfo{StartedAt: time.Now().Add(-time.Hour), LastRunAt: &lastRun}

	ssid := "HomeNet"
	sig := -55
	rtt := 20.0
	samples := []domain.Sample{
		{Timestamp: time.Now(), LinkState: domain.LinkConnected, SSID: &ssid, Signal: &sig, Reachability: domain.Reachable, RTTMs: &rtt},
		{Timestamp: time.Now(), LinkState: domain.LinkDisconnected, Reachability: domain.NotReachable},
	}

	exporter := NewPDFExporter()
	data, err := exporter.ExportHealthReport(summary, session, samples)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"), "output must be a PDF document")
}

func TestExportHealthReport_EmptyWindow(t *testing.T) {
	exporter := NewPDFExporter()

	// Nil metrics render as n/a, never panic
	data, err := exporter.ExportHealthReport(domain.Summary{GeneratedAt: time.Now()}, domain.SessionInfo{StartedAt: time.Now()}, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestFormatHelpers(t *testing.T) {
	v := 12.34
	assert.Equal(t, "12.3%", formatPct(&v))
	assert.Equal(t, "n/a", formatPct(nil))
	assert.Equal(t, "12.3 ms", formatUnit(&v, "ms"))
	assert.Equal(t, "n/a", formatUnit(nil, "ms"))

	secs := 25.0
	assert.Equal(t, "5 samples (25 s)", formatOutage(domain.Summary{LongestOutageSamples: 5, LongestOutageSeconds: &secs}))
	assert.Equal(t, "n/a", formatOutage(domain.Summary{}))
}
