package monitor

import (
	"sync"
	"time"

	"github.com/lcalzada-xor/netwatch/internal/core/domain"
	"github.com/lcalzada-xor/netwatch/internal/core/ports"
	"github.com/lcalzada-xor/netwatch/internal/core/services/session"
	"github.com/lcalzada-xor/netwatch/internal/core/services/stats"
)

const summaryTTL = 2 * time.Second

// Service is the core-facing read surface: it owns the store and derives
// summaries on demand, caching them briefly since the underlying window only
// changes once per sampling interval anyway.
type Service struct {
	store    *Store
	session  *session.Tracker
	interval time.Duration

	cachedSummary *domain.Summary
	summaryMu     sync.RWMutex
}

// NewService creates the monitor service.
func NewService(store *Store, tracker *session.Tracker, interval time.Duration) *Service {
	return &Service{
		store:    store,
		session:  tracker,
		interval: interval,
	}
}

// LatestSample returns the most recent sample, or nil when none exists yet.
func (s *Service) LatestSample() *domain.Sample {
	return s.store.Latest()
}

// WindowSamples returns the in-memory window, oldest-first.
func (s *Service) WindowSamples() []domain.Sample {
	return s.store.Window()
}

// ComputeSummary derives the health metrics over the current window.
func (s *Service) ComputeSummary() domain.Summary {
	s.summaryMu.RLock()
	if s.cachedSummary != nil && !s.cachedSummary.IsStale(summaryTTL) {
		defer s.summaryMu.RUnlock()
		return *s.cachedSummary
	}
	s.summaryMu.RUnlock()

	s.summaryMu.Lock()
	defer s.summaryMu.Unlock()

	// Double-check after acquiring the write lock.
	if s.cachedSummary != nil && !s.cachedSummary.IsStale(summaryTTL) {
		return *s.cachedSummary
	}

	summary := stats.Summarize(s.store.Window(), s.interval)
	s.cachedSummary = &summary
	return summary
}

// ExportAllSamples returns the full durable log for bulk export.
func (s *Service) ExportAllSamples() ([]domain.Sample, error) {
	return s.store.All()
}

// Session returns the process lifecycle timestamps.
func (s *Service) Session() domain.SessionInfo {
	return s.session.Info()
}

// Ensure interface compliance
var _ ports.Monitor = (*Service)(nil)
