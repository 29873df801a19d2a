package domain

import (
	"time"
)

// LinkState describes the wireless link at sampling time.
type LinkState string

const (
	LinkConnected    LinkState = "connected"
	LinkDisconnected LinkState = "disconnected"
	LinkError        LinkState = "error"
)

// Reachability describes the internet reachability probe outcome.
type Reachability string

const (
	Reachable    Reachability = "reachable"
	NotReachable Reachability = "not_reachable"
	ProbeError   Reachability = "probe_error"
	// ReachUnknown is only produced when the link read itself failed,
	// so no reachability probe was ever attempted.
	ReachUnknown Reachability = "unknown"
)

// Sample is one immutable observation of link and reachability state.
// Optional fields are pointers: SSID and Signal are present only on a
// connected link, RTTMs only when the probe succeeded.
type Sample struct {
	Timestamp    time.Time    `json:"timestamp"`
	LinkState    LinkState    `json:"link_state"`
	SSID         *string      `json:"ssid,omitempty"`
	Signal       *int         `json:"signal_dbm,omitempty"`
	Reachability Reachability `json:"reachability"`
	RTTMs        *float64     `json:"rtt_ms,omitempty"`
}

// NewConnectedSample builds a sample for a connected link. SSID and signal
// come from the link reader (signal may be absent); rtt is only kept when
// the reachability outcome is Reachable.
func NewConnectedSample(ts time.Time, ssid string, signal *int, reach Reachability, rttMs *float64) Sample {
	if reach == ReachUnknown {
		// Unknown is reserved for failed link reads. With a link up, a
		// probe outcome we cannot classify is a probe error.
		reach = ProbeError
	}
	s := Sample{
		Timestamp:    ts,
		LinkState:    LinkConnected,
		Reachability: reach,
		Signal:       signal,
	}
	if ssid != "" {
		s.SSID = &ssid
	}
	if reach == Reachable {
		s.RTTMs = rttMs
	}
	return s
}

// NewDisconnectedSample builds a sample for a link that is down. No probe is
// attempted without a link, and by convention the result is NotReachable.
func NewDisconnectedSample(ts time.Time) Sample {
	return Sample{
		Timestamp:    ts,
		LinkState:    LinkDisconnected,
		Reachability: NotReachable,
	}
}

// NewErrorSample builds a sample for a failed link read. Unlike the
// disconnected case, reachability is Unknown here: we could not even tell
// whether there was a link to probe.
func NewErrorSample(ts time.Time) Sample {
	return Sample{
		Timestamp:    ts,
		LinkState:    LinkError,
		Reachability: ReachUnknown,
	}
}

// IsUp reports whether the sample counts as "up" for uptime purposes.
// Everything that is not Reachable (including Unknown) counts as down.
func (s Sample) IsUp() bool {
	return s.Reachability == Reachable
}
