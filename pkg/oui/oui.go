// Package oui maps hardware-address prefixes to organization names.
package oui

import (
	"bufio"
	"os"
	"strings"

	"github.com/projectdiscovery/gologger"
)

// Unknown is reported for every lookup that cannot be answered.
const Unknown = "Unknown"

// Table maps a 6-hex-digit uppercase OUI prefix to an organization name.
// A Table is loaded once and read-only afterwards.
type Table map[string]string

// Load reads an OUI database from path. Two record shapes are accepted: the
// IEEE registry format ("AA-BB-CC   (hex)\t\tAcme Corp") and plain
// prefix/name lines ("AABBCC Acme Corp"). Malformed lines are skipped. A
// missing or unreadable file degrades to an empty table, never an error.
func Load(path string) Table {
	table := make(Table)

	f, err := os.Open(path)
	if err != nil {
		return table
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var rawPrefix, org string
		if i := strings.Index(line, "(hex)"); i >= 0 {
			rawPrefix = line[:i]
			org = line[i+len("(hex)"):]
		} else {
			fields := strings.Fields(line)
			if len(fields) < 2 {
				continue
			}
			rawPrefix = fields[0]
			org = strings.Join(fields[1:], " ")
		}

		prefix, ok := normalizePrefix(rawPrefix)
		org = strings.TrimSpace(org)
		if !ok || org == "" {
			continue
		}
		table[prefix] = org
	}
	if err := scanner.Err(); err != nil {
		gologger.Verbose().Msgf("partial OUI database read from %s: %s", path, err)
	}

	return table
}

// Lookup resolves the organization for a hardware address by its first six
// hex digits. A miss or short address yields Unknown, never an error.
func (t Table) Lookup(mac string) string {
	hex := strings.ToUpper(strings.NewReplacer(":", "", "-", "").Replace(mac))
	if len(hex) < 6 {
		return Unknown
	}
	if org, ok := t[hex[:6]]; ok {
		return org
	}
	return Unknown
}

func normalizePrefix(raw string) (string, bool) {
	hex := strings.ToUpper(strings.NewReplacer(":", "", "-", "").Replace(strings.TrimSpace(raw)))
	if len(hex) != 6 {
		return "", false
	}
	for _, c := range hex {
		if (c < '0' || c > '9') && (c < 'A' || c > 'F') {
			return "", false
		}
	}
	return hex, true
}
