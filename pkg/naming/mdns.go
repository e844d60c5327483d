package naming

import (
	"context"
	"strings"
)

// MDNSSource asks the local avahi daemon to resolve an address via multicast
// DNS. Output is one tab-delimited line per answer: "<ip>\t<hostname>".
type MDNSSource struct {
	run runCommand
}

func NewMDNSSource() *MDNSSource {
	return &MDNSSource{run: execCommand}
}

func (s *MDNSSource) Name() string { return "mdns" }

// Resolve shells out to avahi-resolve-address. A missing utility or non-zero
// exit yields no result.
func (s *MDNSSource) Resolve(ctx context.Context, ip string) (string, bool) {
	out, err := s.run(ctx, "avahi-resolve-address", ip)
	if err != nil {
		return "", false
	}

	for _, line := range strings.Split(out, "\n") {
		fields := strings.Split(strings.TrimSpace(line), "\t")
		if len(fields) < 2 || fields[0] != ip {
			continue
		}
		if name := strings.TrimSuffix(strings.TrimSpace(fields[1]), "."); name != "" {
			return name, true
		}
	}
	return "", false
}
