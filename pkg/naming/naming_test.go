package naming

import (
	"context"
	"testing"
)

type fakeSource struct {
	name   string
	result string
	ok     bool
	calls  int
}

func (f *fakeSource) Name() string { return f.name }

func (f *fakeSource) Resolve(_ context.Context, _ string) (string, bool) {
	f.calls++
	return f.result, f.ok
}

func TestChainFirstSuccessWins(t *testing.T) {
	first := &fakeSource{name: "first", result: "printer.lan", ok: true}
	second := &fakeSource{name: "second", result: "other.lan", ok: true}

	chain := Chain{first, second}
	if got := chain.Resolve(context.Background(), "192.168.1.10"); got != "printer.lan" {
		t.Fatalf("Resolve = %q, want %q", got, "printer.lan")
	}
	if second.calls != 0 {
		t.Errorf("later source invoked %d times after earlier success", second.calls)
	}
}

func TestChainFallsThroughFailures(t *testing.T) {
	failing := &fakeSource{name: "lease", ok: false}
	empty := &fakeSource{name: "upnp", result: "", ok: true}
	unknown := &fakeSource{name: "mdns", result: Unknown, ok: true}
	winner := &fakeSource{name: "rdns", result: "host.example.com", ok: true}

	chain := Chain{failing, empty, unknown, winner}
	if got := chain.Resolve(context.Background(), "192.168.1.10"); got != "host.example.com" {
		t.Fatalf("Resolve = %q, want %q", got, "host.example.com")
	}
	for _, src := range []*fakeSource{failing, empty, unknown, winner} {
		if src.calls != 1 {
			t.Errorf("source %s invoked %d times, want 1", src.Name(), src.calls)
		}
	}
}

func TestChainAllFail(t *testing.T) {
	chain := Chain{
		&fakeSource{name: "a", ok: false},
		&fakeSource{name: "b", ok: false},
	}
	if got := chain.Resolve(context.Background(), "192.168.1.10"); got != Unknown {
		t.Fatalf("Resolve = %q, want %q", got, Unknown)
	}
}

func TestChainEmpty(t *testing.T) {
	if got := (Chain{}).Resolve(context.Background(), "192.168.1.10"); got != Unknown {
		t.Fatalf("empty chain = %q, want %q", got, Unknown)
	}
}

func TestDefaultOrder(t *testing.T) {
	want := []string{"dhcp-leases", "upnp", "mdns", "netbios", "reverse-dns"}
	chain := Default()
	if len(chain) != len(want) {
		t.Fatalf("default chain has %d sources, want %d", len(chain), len(want))
	}
	for i, src := range chain {
		if src.Name() != want[i] {
			t.Errorf("source[%d] = %s, want %s", i, src.Name(), want[i])
		}
	}
}
