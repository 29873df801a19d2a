package probe

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/lcalzada-xor/netwatch/internal/core/domain"
	"github.com/lcalzada-xor/netwatch/internal/core/ports"
)

// MockProbe simulates a mostly-healthy wireless link with occasional
// outages. Used in -mock mode and by tests that need a probe without
// hardware.
type MockProbe struct {
	ssid string
	rng  *rand.Rand
	mu   sync.Mutex

	// remaining ticks of the current simulated outage
	outageLeft int
}

// NewMockProbe creates a simulated probe. seed makes runs reproducible.
func NewMockProbe(seed int64) *MockProbe {
	return &MockProbe{
		ssid: "HomeNetwork",
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (p *MockProbe) ReadLinkState() (ports.LinkStatus, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	// ~2% chance to start a short outage
	if p.outageLeft == 0 && p.rng.Float64() < 0.02 {
		p.outageLeft = 1 + p.rng.Intn(4)
	}
	if p.outageLeft > 0 {
		p.outageLeft--
		return ports.LinkStatus{State: domain.LinkDisconnected}, nil
	}

	signal := -40 - p.rng.Intn(30)
	return ports.LinkStatus{
		State:  domain.LinkConnected,
		SSID:   p.ssid,
		Signal: &signal,
	}, nil
}

func (p *MockProbe) ProbeReachability(ctx context.Context, host string, timeout time.Duration) (ports.ReachabilityResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	latency := 5 + p.rng.Float64()*45
	return ports.ReachabilityResult{Alive: true, LatencyMs: &latency}, nil
}

// Ensure interface compliance
var _ ports.Probe = (*MockProbe)(nil)
