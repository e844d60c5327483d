package neighbor

import "net"

// InSubnet retains only the entries whose IP lies inside the given network.
// The filter is a pure function with no error conditions; entries with an
// unparseable IP are dropped.
func InSubnet(entries map[string]string, network *net.IPNet) map[string]string {
	out := make(map[string]string, len(entries))
	if network == nil {
		return out
	}
	for ip, hw := range entries {
		addr := net.ParseIP(ip)
		if addr == nil || !network.Contains(addr) {
			continue
		}
		out[ip] = hw
	}
	return out
}
