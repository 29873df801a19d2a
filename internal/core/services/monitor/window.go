package monitor

import (
	"sync"

	"github.com/lcalzada-xor/netwatch/internal/core/domain"
)

// window is a fixed-capacity FIFO over the most recent samples. The sampler
// is the only writer; HTTP handlers read concurrently, so reads return copies.
type window struct {
	mu      sync.RWMutex
	samples []domain.Sample
	max     int
}

func newWindow(max int) *window {
	if max < 1 {
		max = 1
	}
	return &window{max: max}
}

func (w *window) add(sample domain.Sample) {
	w.mu.Lock()
	w.samples = append(w.samples, sample)
	if len(w.samples) > w.max {
		w.samples = w.samples[len(w.samples)-w.max:]
	}
	w.mu.Unlock()
}

// snapshot returns a copy of the window, oldest-first.
func (w *window) snapshot() []domain.Sample {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]domain.Sample, len(w.samples))
	copy(out, w.samples)
	return out
}

func (w *window) latest() *domain.Sample {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if len(w.samples) == 0 {
		return nil
	}
	s := w.samples[len(w.samples)-1]
	return &s
}

func (w *window) len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.samples)
}
