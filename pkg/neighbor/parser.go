package neighbor

import (
	"regexp"
	"strings"
)

var (
	// column layout: "192.168.1.10   aa-bb-cc-dd-ee-ff   dynamic"
	reColumns = regexp.MustCompile(`(\d{1,3}(?:\.\d{1,3}){3})\s+((?:[0-9A-Fa-f]{2}[:-]){5}[0-9A-Fa-f]{2})`)

	reIPv4 = regexp.MustCompile(`\d{1,3}(?:\.\d{1,3}){3}`)
	reMAC  = regexp.MustCompile(`(?:[0-9A-Fa-f]{2}[:-]){5}[0-9A-Fa-f]{2}`)
)

const zeroHardwareAddr = "00:00:00:00:00:00"

// Parse extracts IP to hardware-address pairs from raw neighbor-table text.
//
// Two extractions run over the same text: the columnar layout used by the
// Windows arp table, and lines carrying the "ether" keyword as printed by the
// BSD-style arp on Linux and macOS. Both may match; the ether pass runs
// second and wins on an IP collision, so precedence is fixed rather than
// left to map iteration order.
//
// Hardware addresses are normalized to uppercase colon-separated sextets and
// all-zero addresses are dropped. Parse never fails: unparseable input just
// yields an empty map.
func Parse(raw string) map[string]string {
	entries := make(map[string]string)

	for _, m := range reColumns.FindAllStringSubmatch(raw, -1) {
		put(entries, m[1], m[2])
	}

	for _, line := range strings.Split(raw, "\n") {
		if !strings.Contains(line, "ether") {
			continue
		}
		// IP and MAC are extracted independently since their relative order
		// differs between platforms
		ip := reIPv4.FindString(line)
		mac := reMAC.FindString(line)
		if ip == "" || mac == "" {
			continue
		}
		put(entries, ip, mac)
	}

	return entries
}

func put(entries map[string]string, ip, mac string) {
	hw, ok := NormalizeMAC(mac)
	if !ok || hw == zeroHardwareAddr {
		return
	}
	entries[ip] = hw
}

// NormalizeMAC converts a hardware address with arbitrary hyphen or colon
// separators into uppercase colon-separated sextets. ok is false when the
// input does not hold exactly six hex octets.
func NormalizeMAC(mac string) (string, bool) {
	hex := strings.ToUpper(strings.NewReplacer(":", "", "-", "").Replace(strings.TrimSpace(mac)))
	if len(hex) != 12 {
		return "", false
	}
	for _, c := range hex {
		if (c < '0' || c > '9') && (c < 'A' || c > 'F') {
			return "", false
		}
	}

	parts := make([]string, 0, 6)
	for i := 0; i < 12; i += 2 {
		parts = append(parts, hex[i:i+2])
	}
	return strings.Join(parts, ":"), true
}
