package neighbor

import (
	"net"
	"testing"
)

func TestInSubnet(t *testing.T) {
	_, network, err := net.ParseCIDR("10.0.0.1/24")
	if err != nil {
		t.Fatal(err)
	}

	entries := map[string]string{
		"10.0.0.5":    "AA:BB:CC:DD:EE:01",
		"10.0.1.5":    "AA:BB:CC:DD:EE:02",
		"192.168.1.9": "AA:BB:CC:DD:EE:03",
		"not-an-ip":   "AA:BB:CC:DD:EE:04",
	}

	got := InSubnet(entries, network)

	if len(got) != 1 {
		t.Fatalf("got %d entries (%v), want 1", len(got), got)
	}
	if got["10.0.0.5"] != "AA:BB:CC:DD:EE:01" {
		t.Errorf("in-subnet entry missing or wrong: %v", got)
	}
}

func TestInSubnetNilNetwork(t *testing.T) {
	got := InSubnet(map[string]string{"10.0.0.5": "AA:BB:CC:DD:EE:01"}, nil)
	if len(got) != 0 {
		t.Fatalf("nil network retained %d entries, want 0", len(got))
	}
}

func TestInSubnetEmpty(t *testing.T) {
	_, network, _ := net.ParseCIDR("10.0.0.0/24")
	if got := InSubnet(map[string]string{}, network); len(got) != 0 {
		t.Fatalf("empty input produced %d entries", len(got))
	}
}
