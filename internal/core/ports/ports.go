package ports

import (
	"context"
	"time"

	"github.com/lcalzada-xor/netwatch/internal/core/domain"
)

// LinkStatus is the raw result of reading the wireless link.
type LinkStatus struct {
	State  domain.LinkState
	SSID   string
	Signal *int // dBm, nil when the driver does not report it
}

// ReachabilityResult is the raw result of probing the reference host.
type ReachabilityResult struct {
	Alive     bool
	LatencyMs *float64 // only meaningful when Alive
}

// Probe supplies the raw facts the sampler normalizes into samples.
// Both operations may fail independently; failures are recorded as sample
// state by the caller, never retried within a tick.
type Probe interface {
	ReadLinkState() (LinkStatus, error)
	ProbeReachability(ctx context.Context, host string, timeout time.Duration) (ReachabilityResult, error)
}

// Monitor is the read surface the serving layer consumes.
type Monitor interface {
	LatestSample() *domain.Sample
	WindowSamples() []domain.Sample
	ComputeSummary() domain.Summary
	ExportAllSamples() ([]domain.Sample, error)
	Session() domain.SessionInfo
}

// SampleBroadcaster receives every sample as it is appended. Implementations
// must not block the sampling tick.
type SampleBroadcaster interface {
	BroadcastSample(sample domain.Sample)
}
