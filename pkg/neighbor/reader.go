// Package neighbor reads and parses the operating system's neighbor cache.
//
// The cache is treated as an oracle: this package never crafts ARP traffic
// itself, it only inspects what the kernel already learned.
package neighbor

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// ErrCacheUnavailable is returned when the neighbor-table utility cannot be
// launched or exits abnormally. Callers should treat the affected interface
// as having zero neighbors rather than aborting the whole scan.
var ErrCacheUnavailable = errors.New("neighbor cache unavailable")

// CacheReader returns the raw neighbor-table text of the host.
type CacheReader interface {
	Read(ctx context.Context) (string, error)
}

type execReader struct{}

// NewCacheReader returns a CacheReader backed by the platform's arp utility.
// `arp -a` produces a parseable table on Linux, macOS and Windows alike.
func NewCacheReader() CacheReader {
	return execReader{}
}

func (execReader) Read(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, "arp", "-a").Output()
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrCacheUnavailable, err)
	}
	return string(out), nil
}
