package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewConnectedSample(t *testing.T) {
	ts := time.Now()
	signal := -55
	rtt := 12.5

	s := NewConnectedSample(ts, "HomeNet", &signal, Reachable, &rtt)

	assert.Equal(t, LinkConnected, s.LinkState)
	assert.Equal(t, Reachable, s.Reachability)
	assert.NotNil(t, s.SSID)
	assert.Equal(t, "HomeNet", *s.SSID)
	assert.Equal(t, -55, *s.Signal)
	assert.Equal(t, 12.5, *s.RTTMs)
	assert.True(t, s.IsUp())
}

func TestNewConnectedSample_RTTOnlyWhenReachable(t *testing.T) {
	rtt := 12.5

	tests := []struct {
		name  string
		reach Reachability
	}{
		{"not reachable", NotReachable},
		{"probe error", ProbeError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewConnectedSample(time.Now(), "HomeNet", nil, tt.reach, &rtt)
			assert.Nil(t, s.RTTMs, "RTT must be absent when not reachable")
			assert.False(t, s.IsUp())
		})
	}
}

func TestNewConnectedSample_UnknownCoercedToProbeError(t *testing.T) {
	rtt := 12.5
	s := NewConnectedSample(time.Now(), "HomeNet", nil, ReachUnknown, &rtt)

	// Unknown is only valid when the link itself could not be read
	assert.Equal(t, ProbeError, s.Reachability)
	assert.Nil(t, s.RTTMs)
	assert.False(t, s.IsUp())
}

func TestNewConnectedSample_EmptySSID(t *testing.T) {
	s := NewConnectedSample(time.Now(), "", nil, Reachable, nil)
	assert.Nil(t, s.SSID)
}

func TestNewDisconnectedSample(t *testing.T) {
	s := NewDisconnectedSample(time.Now())

	assert.Equal(t, LinkDisconnected, s.LinkState)
	// Disconnected link yields NotReachable, not Unknown
	assert.Equal(t, NotReachable, s.Reachability)
	assert.Nil(t, s.SSID)
	assert.Nil(t, s.Signal)
	assert.Nil(t, s.RTTMs)
}

func TestNewErrorSample(t *testing.T) {
	s := NewErrorSample(time.Now())

	assert.Equal(t, LinkError, s.LinkState)
	// A failed link read yields Unknown: no probe was ever attempted
	assert.Equal(t, ReachUnknown, s.Reachability)
	assert.Nil(t, s.SSID)
	assert.Nil(t, s.Signal)
	assert.Nil(t, s.RTTMs)
	assert.False(t, s.IsUp())
}
