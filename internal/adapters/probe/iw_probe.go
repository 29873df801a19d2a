package probe

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"os/exec"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/lcalzada-xor/netwatch/internal/core/domain"
	"github.com/lcalzada-xor/netwatch/internal/core/ports"
)

// IWProbe reads the wireless link via the iw userspace tool and probes
// internet reachability by dialing the reference host.
type IWProbe struct {
	iface  string
	dialer *net.Dialer
}

// NewIWProbe creates a probe for the given wireless interface.
func NewIWProbe(iface string) *IWProbe {
	return &IWProbe{
		iface:  iface,
		dialer: &net.Dialer{},
	}
}

// ReadLinkState runs `iw dev <iface> link` and parses the result.
func (p *IWProbe) ReadLinkState() (ports.LinkStatus, error) {
	cmd := exec.Command("iw", "dev", p.iface, "link")
	out, err := cmd.CombinedOutput()
	if err != nil {
		return ports.LinkStatus{}, fmt.Errorf("iw dev %s link: %w", p.iface, err)
	}
	return parseLinkOutput(out), nil
}

// parseLinkOutput extracts state, SSID and signal from iw link output.
//
// Output format:
//
//	Connected to aa:bb:cc:dd:ee:ff (on wlan0)
//	        SSID: HomeNet
//	        freq: 5180
//	        signal: -55 dBm
//
// or simply "Not connected."
func parseLinkOutput(out []byte) ports.LinkStatus {
	status := ports.LinkStatus{State: domain.LinkDisconnected}

	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if strings.HasPrefix(line, "Connected to ") {
			status.State = domain.LinkConnected
			continue
		}
		if strings.HasPrefix(line, "SSID:") {
			status.SSID = strings.TrimSpace(strings.TrimPrefix(line, "SSID:"))
			continue
		}
		if strings.HasPrefix(line, "signal:") {
			// "signal: -55 dBm"
			fields := strings.Fields(strings.TrimPrefix(line, "signal:"))
			if len(fields) > 0 {
				if dbm, err := strconv.Atoi(fields[0]); err == nil {
					status.Signal = &dbm
				}
			}
		}
	}

	return status
}

// ProbeReachability dials host (host:port) with the given timeout. A
// completed dial is alive with the measured latency; a refused or
// unreachable host is alive=false; a timeout or any other dial failure is an
// error for the caller to record as a probe failure.
func (p *IWProbe) ProbeReachability(ctx context.Context, host string, timeout time.Duration) (ports.ReachabilityResult, error) {
	dialCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	conn, err := p.dialer.DialContext(dialCtx, "tcp", host)
	if err != nil {
		if isHostDown(err) {
			return ports.ReachabilityResult{Alive: false}, nil
		}
		return ports.ReachabilityResult{}, fmt.Errorf("dial %s: %w", host, err)
	}
	latency := float64(time.Since(start).Microseconds()) / 1000
	conn.Close()

	return ports.ReachabilityResult{Alive: true, LatencyMs: &latency}, nil
}

// isHostDown distinguishes "the host said no" from "the probe itself
// failed". Refusals and unreachable routes are definitive down answers.
func isHostDown(err error) bool {
	return errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ENETUNREACH) ||
		errors.Is(err, syscall.EHOSTUNREACH)
}

// Ensure interface compliance
var _ ports.Probe = (*IWProbe)(nil)
