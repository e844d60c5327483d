// Package discovery sequences the scan pipeline: probe sweep, neighbor-cache
// read, parse, subnet filter, then per-device enrichment.
package discovery

import (
	"context"
	"encoding/binary"
	"fmt"
	"net"
	"sort"
	"time"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/mapcidr"
	gnet "github.com/shirou/gopsutil/v3/net"

	"github.com/raeveira/netscan/pkg/naming"
	"github.com/raeveira/netscan/pkg/neighbor"
	"github.com/raeveira/netscan/pkg/netrange"
	"github.com/raeveira/netscan/pkg/oui"
	"github.com/raeveira/netscan/pkg/probe"
)

// Options tunes a Scanner.
type Options struct {
	// Interface restricts the scan to one interface by exact name.
	// Empty scans every usable IPv4 interface.
	Interface string

	// Probe controls whether the subnet is swept before reading the
	// neighbor cache. Disabled, the scan reports only what the kernel
	// already knows.
	Probe bool

	// SettleDelay is how long to wait after the sweep for the kernel to
	// finish learning hardware addresses.
	SettleDelay time.Duration
}

// Scanner runs the discovery pipeline. All collaborators are injected: the
// vendor table is loaded once by the caller, and fakes for the reader and
// chain make the pipeline testable without touching the OS.
type Scanner struct {
	opts    Options
	vendors oui.Table
	chain   naming.Chain
	reader  neighbor.CacheReader
	prober  *probe.Prober

	// interface snapshot hook, replaced in tests
	interfaces func(filter string) ([]Iface, error)
}

func New(opts Options, vendors oui.Table, chain naming.Chain, reader neighbor.CacheReader, prober *probe.Prober) *Scanner {
	return &Scanner{
		opts:       opts,
		vendors:    vendors,
		chain:      chain,
		reader:     reader,
		prober:     prober,
		interfaces: snapshotInterfaces,
	}
}

// Scan discovers and enriches devices across all matching interfaces.
// Failure to enumerate interfaces is the only hard error; everything past
// that degrades per interface. An empty result is a normal outcome.
func (s *Scanner) Scan(ctx context.Context) ([]Device, error) {
	ifaces, err := s.interfaces(s.opts.Interface)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate interfaces: %w", err)
	}

	var devices []Device
	for _, itf := range ifaces {
		devices = append(devices, s.scanInterface(ctx, itf)...)
	}
	return devices, nil
}

func (s *Scanner) scanInterface(ctx context.Context, itf Iface) []Device {
	if s.opts.Probe && s.prober != nil {
		total := mapcidr.AddressCountIpnet(itf.Network)
		gologger.Verbose().Msgf("sweeping %s (%s, %d addresses)", itf.Name, itf.Network, total)

		s.prober.Sweep(ctx, netrange.Hosts(itf.IP, itf.Network.Mask))
		if s.opts.SettleDelay > 0 {
			time.Sleep(s.opts.SettleDelay)
		}
	}

	raw, err := s.reader.Read(ctx)
	if err != nil {
		gologger.Warning().Msgf("skipping %s: %s", itf.Name, err)
		return nil
	}

	entries := neighbor.InSubnet(neighbor.Parse(raw), itf.Network)
	if len(entries) == 0 {
		gologger.Verbose().Msgf("no neighbors found on %s", itf.Name)
		return nil
	}

	// enrichment runs one device at a time so output order stays stable and
	// the name-resolution services never see a burst
	devices := make([]Device, 0, len(entries))
	for _, ip := range sortedIPs(entries) {
		devices = append(devices, Device{
			IP:        ip,
			MAC:       entries[ip],
			Interface: itf.Name,
			Vendor:    s.vendors.Lookup(entries[ip]),
			Name:      s.chain.Resolve(ctx, ip),
		})
	}
	return devices
}

// sortedIPs orders entries by numeric address so repeated scans of the same
// cache produce the same device order.
func sortedIPs(entries map[string]string) []string {
	ips := make([]string, 0, len(entries))
	for ip := range entries {
		ips = append(ips, ip)
	}
	sort.Slice(ips, func(i, j int) bool {
		return ipValue(ips[i]) < ipValue(ips[j])
	})
	return ips
}

func ipValue(ip string) uint32 {
	addr := net.ParseIP(ip)
	if addr == nil {
		return 0
	}
	ip4 := addr.To4()
	if ip4 == nil {
		return 0
	}
	return binary.BigEndian.Uint32(ip4)
}

// snapshotInterfaces takes a one-shot snapshot of the usable IPv4 interfaces:
// up, not loopback, optionally matching filter by exact name. One address per
// interface.
func snapshotInterfaces(filter string) ([]Iface, error) {
	stats, err := gnet.Interfaces()
	if err != nil {
		return nil, err
	}

	var out []Iface
	for _, st := range stats {
		if filter != "" && st.Name != filter {
			continue
		}
		if !hasFlag(st.Flags, "up") || hasFlag(st.Flags, "loopback") {
			continue
		}
		for _, addr := range st.Addrs {
			ip, network, err := net.ParseCIDR(addr.Addr)
			if err != nil || ip.To4() == nil {
				continue
			}
			out = append(out, Iface{Name: st.Name, IP: ip.To4(), Network: network})
			break
		}
	}
	return out, nil
}

func hasFlag(flags []string, want string) bool {
	for _, f := range flags {
		if f == want {
			return true
		}
	}
	return false
}
