package naming

import (
	"context"
	"regexp"
	"strings"

	osutils "github.com/projectdiscovery/utils/os"
)

// unique workstation name row, e.g. "  MYHOST          <00>  UNIQUE  Registered"
var nbUniqueName = regexp.MustCompile(`^\s*([^\s<]+)\s+<00>`)

// NetBIOSSource queries a host's NetBIOS name table through the platform's
// status utility: nbtstat on Windows, nmblookup elsewhere.
type NetBIOSSource struct {
	run runCommand
}

func NewNetBIOSSource() *NetBIOSSource {
	return &NetBIOSSource{run: execCommand}
}

func (s *NetBIOSSource) Name() string { return "netbios" }

// Resolve extracts the unique <00> workstation name from the status output.
// Group rows are skipped. A missing utility or non-zero exit yields no
// result.
func (s *NetBIOSSource) Resolve(ctx context.Context, ip string) (string, bool) {
	tool := "nmblookup"
	if osutils.IsWindows() {
		tool = "nbtstat"
	}

	out, err := s.run(ctx, tool, "-A", ip)
	if err != nil {
		return "", false
	}

	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "GROUP") {
			continue
		}
		if m := nbUniqueName.FindStringSubmatch(line); m != nil {
			return m[1], true
		}
	}
	return "", false
}
