package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker_FirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "last_active")
	tracker := NewTracker(path)

	info := tracker.Info()
	assert.False(t, info.StartedAt.IsZero())
	assert.Nil(t, info.LastRunAt)
}

func TestTracker_FlushAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "last_active")

	first := NewTracker(path)
	first.Flush()

	// Simulate a restart
	second := NewTracker(path)
	info := second.Info()
	require.NotNil(t, info.LastRunAt)
	assert.WithinDuration(t, time.Now(), *info.LastRunAt, 5*time.Second)
}

func TestTracker_FlushOverwritesPriorMarker(t *testing.T) {
	path := filepath.Join(t.TempDir(), "last_active")
	old := time.Now().Add(-time.Hour).Format(time.RFC3339)
	require.NoError(t, os.WriteFile(path, []byte(old+"\n"), 0644))

	tracker := NewTracker(path)
	require.NotNil(t, tracker.Info().LastRunAt)
	tracker.Flush()

	reloaded := NewTracker(path)
	require.NotNil(t, reloaded.Info().LastRunAt)
	assert.WithinDuration(t, time.Now(), *reloaded.Info().LastRunAt, 5*time.Second)
}

func TestTracker_GarbageMarkerIgnored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "last_active")
	require.NoError(t, os.WriteFile(path, []byte("not a timestamp"), 0644))

	tracker := NewTracker(path)
	assert.Nil(t, tracker.Info().LastRunAt, "unparseable marker is ignored, not fatal")
}

func TestTracker_FlushCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "last_active")
	tracker := NewTracker(path)

	tracker.Flush()

	_, err := os.Stat(path)
	assert.NoError(t, err)
}
