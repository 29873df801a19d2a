package ports

import "github.com/lcalzada-xor/netwatch/internal/core/domain"

// SampleLog is the durable, append-only tier of the store. Records are
// insertion-ordered; LoadRecent must not scan the full history.
type SampleLog interface {
	// AppendSample appends one sample to the log.
	AppendSample(sample domain.Sample) error

	// LoadRecent returns the most recent n samples, oldest-first.
	LoadRecent(n int) ([]domain.Sample, error)

	// AllSamples returns the full log in insertion order, for bulk export.
	AllSamples() ([]domain.Sample, error)

	// CountSamples returns the total number of records in the log.
	CountSamples() (int64, error)

	// Close closes the underlying database.
	Close() error
}
