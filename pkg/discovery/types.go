package discovery

import "net"

// Device is one enriched neighbor-table entry. Immutable after enrichment.
type Device struct {
	IP        string `json:"ip"`
	MAC       string `json:"mac"`
	Interface string `json:"interface"`
	Vendor    string `json:"vendor"`
	Name      string `json:"name"`
}

// Iface is a read-only snapshot of a single IPv4 interface address, taken
// once per scan.
type Iface struct {
	Name    string
	IP      net.IP
	Network *net.IPNet
}
