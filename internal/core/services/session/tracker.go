package session

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lcalzada-xor/netwatch/internal/core/domain"
)

// Tracker records process lifecycle timestamps: the start time of this run,
// and the last-active timestamp of the previous run read from a marker file.
// Flush overwrites the marker on shutdown; a write failure only loses a
// diagnostic field, so it is logged and ignored.
type Tracker struct {
	path      string
	startedAt time.Time
	lastRunAt *time.Time
}

// NewTracker creates a tracker backed by the marker file at path. A prior
// value, if present and parseable, is exposed as the last run time.
func NewTracker(path string) *Tracker {
	t := &Tracker{
		path:      path,
		startedAt: time.Now(),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: could not read session marker: %v", err)
		}
		return t
	}

	ts, err := time.Parse(time.RFC3339, strings.TrimSpace(string(data)))
	if err != nil {
		log.Printf("Warning: ignoring unparseable session marker: %v", err)
		return t
	}
	t.lastRunAt = &ts
	return t
}

// Info returns the session timestamps.
func (t *Tracker) Info() domain.SessionInfo {
	return domain.SessionInfo{
		StartedAt: t.startedAt,
		LastRunAt: t.lastRunAt,
	}
}

// Flush writes the current time as the last-active marker. Called on every
// shutdown path; failures are non-fatal.
func (t *Tracker) Flush() {
	if err := os.MkdirAll(filepath.Dir(t.path), 0755); err != nil {
		log.Printf("Warning: could not create session marker directory: %v", err)
		return
	}
	now := time.Now().Format(time.RFC3339)
	if err := os.WriteFile(t.path, []byte(now+"\n"), 0644); err != nil {
		log.Printf("Warning: could not write session marker: %v", err)
	}
}
