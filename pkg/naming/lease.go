package naming

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"

	fileutil "github.com/projectdiscovery/utils/file"
)

// DefaultLeasePaths are the well-known DHCP lease file locations checked in
// order. Both ISC dhcpd and dnsmasq layouts are understood.
var DefaultLeasePaths = []string{
	"/var/lib/dhcp/dhcpd.leases",
	"/var/lib/misc/dnsmasq.leases",
	"/var/lib/dnsmasq/dnsmasq.leases",
	"/var/db/dhcpd.leases",
}

// LeaseSource extracts client hostnames from DHCP server lease files.
type LeaseSource struct {
	paths []string
}

// NewLeaseSource builds a LeaseSource over the given lease files, falling
// back to DefaultLeasePaths when none are supplied.
func NewLeaseSource(paths ...string) *LeaseSource {
	if len(paths) == 0 {
		paths = DefaultLeasePaths
	}
	return &LeaseSource{paths: paths}
}

func (s *LeaseSource) Name() string { return "dhcp-leases" }

// Resolve scans each lease file for a lease covering ip. Any read or parse
// failure is treated as no result.
func (s *LeaseSource) Resolve(_ context.Context, ip string) (string, bool) {
	for _, path := range s.paths {
		if !fileutil.FileExists(path) {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if name, ok := leaseHostname(string(data), ip); ok {
			return name, true
		}
	}
	return "", false
}

// leaseHostname matches an ISC dhcpd lease block first, then the dnsmasq
// single-line layout (expiry, mac, ip, hostname, client-id).
func leaseHostname(data, ip string) (string, bool) {
	pattern := fmt.Sprintf(`lease\s+%s\s*\{[^}]*client-hostname\s+"([^"]+)"`, regexp.QuoteMeta(ip))
	re, err := regexp.Compile(pattern)
	if err == nil {
		if m := re.FindStringSubmatch(data); m != nil {
			return m[1], true
		}
	}

	for _, line := range strings.Split(data, "\n") {
		fields := strings.Fields(line)
		if len(fields) >= 4 && fields[2] == ip && fields[3] != "*" {
			return fields[3], true
		}
	}
	return "", false
}
