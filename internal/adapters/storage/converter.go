package storage

import (
	"github.com/lcalzada-xor/netwatch/internal/core/domain"
)

// toModel converts a domain sample into its persistence model.
func toModel(s domain.Sample) SampleModel {
	return SampleModel{
		Timestamp:    s.Timestamp,
		LinkState:    string(s.LinkState),
		SSID:         s.SSID,
		Signal:       s.Signal,
		Reachability: string(s.Reachability),
		RTTMs:        s.RTTMs,
	}
}

// toDomain converts a persistence model back into a domain sample.
func toDomain(m SampleModel) domain.Sample {
	return domain.Sample{
		Timestamp:    m.Timestamp,
		LinkState:    domain.LinkState(m.LinkState),
		SSID:         m.SSID,
		Signal:       m.Signal,
		Reachability: domain.Reachability(m.Reachability),
		RTTMs:        m.RTTMs,
	}
}
