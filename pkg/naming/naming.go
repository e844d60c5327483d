// Package naming resolves human-readable device names for LAN addresses.
//
// Every resolution technique is a Source; a Chain tries them in a fixed
// order and the first real answer wins. Sources report failure by returning
// ok=false rather than an error, so one broken source can never keep the
// next one from running.
package naming

import (
	"context"
	"os/exec"
	"strings"

	"github.com/projectdiscovery/gologger"
)

// Unknown is the terminal fallback when every source fails.
const Unknown = "Unknown"

// Source resolves a name for a single IPv4 address.
type Source interface {
	Name() string
	Resolve(ctx context.Context, ip string) (string, bool)
}

// Chain is an ordered list of sources.
type Chain []Source

// Default returns the standard resolution order: DHCP leases, UPnP device
// description, multicast DNS, NetBIOS, reverse DNS.
func Default() Chain {
	return Chain{
		NewLeaseSource(),
		NewUPnPSource(),
		NewMDNSSource(),
		NewNetBIOSSource(),
		NewReverseDNSSource(),
	}
}

// Resolve tries each source in order and returns the first non-empty,
// non-Unknown answer. It always terminates with a definite string, never an
// error.
func (c Chain) Resolve(ctx context.Context, ip string) string {
	for _, src := range c {
		name, ok := src.Resolve(ctx, ip)
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" || name == Unknown {
			continue
		}
		gologger.Debug().Msgf("%s resolved %s via %s", ip, name, src.Name())
		return name
	}
	return Unknown
}

// runCommand executes an external helper and returns its standard output.
// Sources hold one of these so tests can substitute canned output.
type runCommand func(ctx context.Context, name string, args ...string) (string, error)

func execCommand(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	return string(out), err
}
