package monitor

import (
	"errors"
	"log"

	"github.com/lcalzada-xor/netwatch/internal/core/domain"
	"github.com/lcalzada-xor/netwatch/internal/core/ports"
	"github.com/lcalzada-xor/netwatch/internal/telemetry"
)

// ErrNoDurableLog is returned by durable-log reads when the store is running
// in window-only mode (database could not be opened at startup).
var ErrNoDurableLog = errors.New("durable log unavailable")

// Store is the dual-tier sample store: a bounded in-memory window for fast
// reads plus an unbounded durable log. The log may be nil, in which case
// monitoring degrades to window-only mode.
type Store struct {
	window *window
	log    ports.SampleLog
}

// NewStore creates a store with the given window capacity. durableLog may be
// nil to run without persistence.
func NewStore(windowSize int, durableLog ports.SampleLog) *Store {
	return &Store{
		window: newWindow(windowSize),
		log:    durableLog,
	}
}

// Replay pre-populates the window from the durable log so a restarted
// process resumes with recent context. A failed replay leaves the window
// empty and is not fatal.
func (s *Store) Replay() {
	if s.log == nil {
		return
	}
	recent, err := s.log.LoadRecent(s.window.max)
	if err != nil {
		log.Printf("Warning: could not replay durable log, starting with empty window: %v", err)
		return
	}
	for _, sample := range recent {
		s.window.add(sample)
	}
	if len(recent) > 0 {
		log.Printf("Replayed %d samples from durable log", len(recent))
	}
}

// Append pushes the sample into both tiers. The window write always
// succeeds; a durable write failure is logged and counted but never drops
// the window entry.
func (s *Store) Append(sample domain.Sample) {
	s.window.add(sample)

	if s.log == nil {
		return
	}
	if err := s.log.AppendSample(sample); err != nil {
		telemetry.DurableWriteErrors.Inc()
		log.Printf("Failed to append sample to durable log: %v", err)
	}
}

// Window returns the current in-memory view, oldest-first.
func (s *Store) Window() []domain.Sample {
	return s.window.snapshot()
}

// Latest returns the most recent sample, or nil if the store is empty.
func (s *Store) Latest() *domain.Sample {
	return s.window.latest()
}

// All returns the full durable log in insertion order.
func (s *Store) All() ([]domain.Sample, error) {
	if s.log == nil {
		return nil, ErrNoDurableLog
	}
	return s.log.AllSamples()
}

// Count returns the number of durable records.
func (s *Store) Count() (int64, error) {
	if s.log == nil {
		return 0, ErrNoDurableLog
	}
	return s.log.CountSamples()
}

// Close closes the durable tier.
func (s *Store) Close() error {
	if s.log == nil {
		return nil
	}
	return s.log.Close()
}
