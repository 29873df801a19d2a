package monitor

import (
	"context"
	"log"
	"time"

	"github.com/lcalzada-xor/netwatch/internal/core/domain"
	"github.com/lcalzada-xor/netwatch/internal/core/ports"
	"github.com/lcalzada-xor/netwatch/internal/telemetry"
)

const (
	// DefaultInterval is the default spacing between sampling ticks.
	DefaultInterval = 5 * time.Second
	// DefaultProbeTimeout bounds the reachability probe so a hung probe
	// cannot push a tick past its interval.
	DefaultProbeTimeout = 2 * time.Second
)

// Sampler runs the periodic polling loop: each tick it reads the link,
// probes the reference host when a link is up, and appends the resulting
// sample to the store. Probe failures are captured as sample state and never
// abort the loop.
type Sampler struct {
	probe       ports.Probe
	store       *Store
	refHost     string
	interval    time.Duration
	timeout     time.Duration
	broadcaster ports.SampleBroadcaster
}

// NewSampler creates a sampler. interval <= 0 falls back to DefaultInterval.
func NewSampler(probe ports.Probe, store *Store, refHost string, interval time.Duration) *Sampler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Sampler{
		probe:    probe,
		store:    store,
		refHost:  refHost,
		interval: interval,
		timeout:  DefaultProbeTimeout,
	}
}

// SetBroadcaster registers a sink that receives every appended sample.
func (s *Sampler) SetBroadcaster(b ports.SampleBroadcaster) {
	s.broadcaster = b
}

// Interval returns the configured tick spacing.
func (s *Sampler) Interval() time.Duration {
	return s.interval
}

// Run executes the sampling loop until ctx is cancelled. The first tick
// fires immediately so the store is never empty for a full interval after
// startup.
func (s *Sampler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			log.Println("Sampler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick performs one observation and appends it.
func (s *Sampler) tick(ctx context.Context) {
	sample := s.observe(ctx)
	s.store.Append(sample)

	telemetry.SamplesTotal.WithLabelValues(string(sample.LinkState), string(sample.Reachability)).Inc()
	if sample.RTTMs != nil {
		telemetry.ProbeRTT.Observe(*sample.RTTMs / 1000)
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastSample(sample)
	}
}

func (s *Sampler) observe(ctx context.Context) domain.Sample {
	now := time.Now()

	link, err := s.probe.ReadLinkState()
	if err != nil {
		telemetry.ProbeErrors.WithLabelValues("link").Inc()
		log.Printf("Link read failed: %v", err)
		return domain.NewErrorSample(now)
	}

	switch link.State {
	case domain.LinkConnected:
		reach, rtt := s.probeReachability(ctx)
		return domain.NewConnectedSample(now, link.SSID, link.Signal, reach, rtt)
	case domain.LinkDisconnected:
		// No link, no probe. By convention this is NotReachable, while a
		// failed link read above yields Unknown.
		return domain.NewDisconnectedSample(now)
	default:
		return domain.NewErrorSample(now)
	}
}

func (s *Sampler) probeReachability(ctx context.Context) (domain.Reachability, *float64) {
	probeCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	res, err := s.probe.ProbeReachability(probeCtx, s.refHost, s.timeout)
	if err != nil {
		telemetry.ProbeErrors.WithLabelValues("reachability").Inc()
		log.Printf("Reachability probe failed: %v", err)
		return domain.ProbeError, nil
	}
	if !res.Alive {
		return domain.NotReachable, nil
	}
	return domain.Reachable, res.LatencyMs
}
