// Package probe nudges the operating system into populating its neighbor
// cache by contacting every candidate address on a subnet.
//
// Probe replies are never read. The echo itself is allowed to fail: the
// kernel performs ARP resolution for the destination before the packet
// leaves, and that side effect on the neighbor table is the only result this
// package cares about.
package probe

import (
	"context"
	"iter"
	"net"
	"os"
	"sync/atomic"
	"time"

	syncutil "github.com/projectdiscovery/utils/sync"
	"golang.org/x/net/icmp"
	"golang.org/x/net/ipv4"
)

const (
	// DefaultWindowSize bounds how many probes are outstanding at once. A
	// window fully drains before the next one is admitted, which keeps the
	// open socket count flat on subnets with thousands of candidates.
	DefaultWindowSize = 50

	// DefaultTimeout is the per-probe deadline.
	DefaultTimeout = 100 * time.Millisecond
)

var probePayload = []byte("netscan-probe")

// Prober sweeps candidate addresses with fire-and-forget reachability probes.
type Prober struct {
	Timeout    time.Duration
	WindowSize int

	conn net.PacketConn // shared raw ICMP socket, nil when unprivileged
	seq  atomic.Uint32

	// probeOne is swapped out in tests
	probeOne func(ctx context.Context, addr string)
}

// New returns a Prober using a shared raw ICMP socket when the process has
// the privilege to open one, and a UDP dial fallback otherwise. The fallback
// still forces ARP resolution for the destination even though nothing
// listens on the target port.
func New(timeout time.Duration) *Prober {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	p := &Prober{
		Timeout:    timeout,
		WindowSize: DefaultWindowSize,
	}

	conn, err := icmp.ListenPacket("ip4:icmp", "0.0.0.0")
	if err == nil {
		p.conn = conn
		p.probeOne = p.icmpProbe
	} else {
		p.probeOne = p.udpProbe
	}
	return p
}

// Close releases the shared ICMP socket, if any.
func (p *Prober) Close() {
	if p.conn != nil {
		_ = p.conn.Close()
	}
}

// Sweep probes every candidate address in fixed-size windows. Window N+1 is
// never admitted before every probe of window N has settled. All per-probe
// failures are swallowed; Sweep only signals completion.
func (p *Prober) Sweep(ctx context.Context, candidates iter.Seq[string]) {
	window := p.WindowSize
	if window <= 0 {
		window = DefaultWindowSize
	}

	awg, err := syncutil.New(syncutil.WithSize(window))
	if err != nil {
		return
	}

	inflight := 0
	for addr := range candidates {
		select {
		case <-ctx.Done():
			awg.Wait()
			return
		default:
		}

		awg.Add()
		go func(target string) {
			defer awg.Done()
			p.probeOne(ctx, target)
		}(addr)

		inflight++
		if inflight%window == 0 {
			awg.Wait()
		}
	}
	awg.Wait()
}

func (p *Prober) icmpProbe(_ context.Context, addr string) {
	ip := net.ParseIP(addr)
	if ip == nil {
		return
	}

	msg := icmp.Message{
		Type: ipv4.ICMPTypeEcho,
		Code: 0,
		Body: &icmp.Echo{
			ID:   os.Getpid() & 0xffff,
			Seq:  int(p.seq.Add(1) & 0xffff),
			Data: probePayload,
		},
	}
	raw, err := msg.Marshal(nil)
	if err != nil {
		return
	}

	_ = p.conn.SetWriteDeadline(time.Now().Add(p.Timeout))
	// reply intentionally unread, the ARP exchange is the point
	_, _ = p.conn.WriteTo(raw, &net.IPAddr{IP: ip})
}

func (p *Prober) udpProbe(_ context.Context, addr string) {
	conn, err := net.DialTimeout("udp", net.JoinHostPort(addr, "9"), p.Timeout)
	if err != nil {
		return
	}
	// a single datagram to the discard port is enough to trigger resolution
	_ = conn.SetWriteDeadline(time.Now().Add(p.Timeout))
	_, _ = conn.Write([]byte{0})
	_ = conn.Close()
}
