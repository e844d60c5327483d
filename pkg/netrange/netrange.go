// Package netrange generates the usable host addresses of an IPv4 subnet.
//
// Addresses are produced lazily so that wide masks (a /16 has 65534 usable
// hosts) never get materialized as a slice.
package netrange

import (
	"encoding/binary"
	"iter"
	"net"
)

// Hosts returns every address strictly between the network and broadcast
// address of the subnet formed by ip and mask, in ascending order and
// dotted-quad form. The sequence is restartable: ranging over it twice
// yields the same addresses.
//
// The network and broadcast addresses themselves are never yielded. When the
// mask leaves no room for hosts (/31, /32) or the inputs are not IPv4, the
// sequence is empty; callers must treat that as a valid result, not an error.
func Hosts(ip net.IP, mask net.IPMask) iter.Seq[string] {
	return func(yield func(string) bool) {
		ip4 := ip.To4()
		m4 := net.IP(mask).To4()
		if ip4 == nil || m4 == nil {
			return
		}

		addr := binary.BigEndian.Uint32(ip4)
		maskBits := binary.BigEndian.Uint32(m4)
		network := addr & maskBits
		broadcast := network | ^maskBits
		if network >= broadcast {
			return
		}

		for host := network + 1; host < broadcast; host++ {
			var buf [4]byte
			binary.BigEndian.PutUint32(buf[:], host)
			if !yield(net.IP(buf[:]).String()) {
				return
			}
		}
	}
}
