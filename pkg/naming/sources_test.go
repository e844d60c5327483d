package naming

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
)

func TestUPnPSourceResolve(t *testing.T) {
	const description = `<?xml version="1.0"?>
<root xmlns="urn:schemas-upnp-org:device-1-0">
  <device>
    <deviceType>urn:schemas-upnp-org:device:MediaRenderer:1</deviceType>
    <friendlyName>Living Room TV</friendlyName>
    <manufacturer>Example AV</manufacturer>
  </device>
</root>`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/description.xml" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/xml")
		_, _ = w.Write([]byte(description))
	}))
	defer srv.Close()

	src := NewUPnPSource()
	src.port = serverPort(t, srv)

	name, ok := src.Resolve(context.Background(), "127.0.0.1")
	if !ok || name != "Living Room TV" {
		t.Fatalf("Resolve = %q, %v; want %q, true", name, ok, "Living Room TV")
	}
}

func TestUPnPSourceNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	src := NewUPnPSource()
	src.port = serverPort(t, srv)

	if _, ok := src.Resolve(context.Background(), "127.0.0.1"); ok {
		t.Error("non-success status must yield no result")
	}
}

func TestUPnPSourceConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	port := serverPort(t, srv)
	srv.Close()

	src := NewUPnPSource()
	src.port = port

	if _, ok := src.Resolve(context.Background(), "127.0.0.1"); ok {
		t.Error("connection failure must yield no result")
	}
}

func serverPort(t *testing.T, srv *httptest.Server) int {
	t.Helper()
	_, portStr, err := net.SplitHostPort(srv.Listener.Addr().String())
	if err != nil {
		t.Fatal(err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		t.Fatal(err)
	}
	return port
}

func TestMDNSSourceResolve(t *testing.T) {
	src := &MDNSSource{run: func(_ context.Context, name string, args ...string) (string, error) {
		if name != "avahi-resolve-address" {
			t.Fatalf("unexpected utility %s", name)
		}
		return "192.168.1.10\tchromecast.local\n", nil
	}}

	name, ok := src.Resolve(context.Background(), "192.168.1.10")
	if !ok || name != "chromecast.local" {
		t.Fatalf("Resolve = %q, %v; want %q, true", name, ok, "chromecast.local")
	}
}

func TestMDNSSourceUtilityMissing(t *testing.T) {
	src := &MDNSSource{run: func(context.Context, string, ...string) (string, error) {
		return "", errors.New("executable file not found in $PATH")
	}}
	if _, ok := src.Resolve(context.Background(), "192.168.1.10"); ok {
		t.Error("missing utility must yield no result")
	}
}

func TestMDNSSourceWrongAddress(t *testing.T) {
	src := &MDNSSource{run: func(context.Context, string, ...string) (string, error) {
		return "192.168.1.99\tother.local\n", nil
	}}
	if _, ok := src.Resolve(context.Background(), "192.168.1.10"); ok {
		t.Error("answer for a different address must be ignored")
	}
}

const nmblookupOutput = `Looking up status of 192.168.1.10
	FILESERVER      <00> -         M <ACTIVE>
	FILESERVER      <20> -         M <ACTIVE>
	WORKGROUP       <00> - <GROUP> M <ACTIVE>
	WORKGROUP       <1e> - <GROUP> M <ACTIVE>

	MAC Address = AA-BB-CC-DD-EE-FF
`

func TestNetBIOSSourceResolve(t *testing.T) {
	src := &NetBIOSSource{run: func(_ context.Context, _ string, args ...string) (string, error) {
		if len(args) != 2 || args[0] != "-A" {
			t.Fatalf("unexpected args %v", args)
		}
		return nmblookupOutput, nil
	}}

	name, ok := src.Resolve(context.Background(), "192.168.1.10")
	if !ok || name != "FILESERVER" {
		t.Fatalf("Resolve = %q, %v; want %q, true", name, ok, "FILESERVER")
	}
}

func TestNetBIOSSourceNonZeroExit(t *testing.T) {
	src := &NetBIOSSource{run: func(context.Context, string, ...string) (string, error) {
		return "", errors.New("exit status 1")
	}}
	if _, ok := src.Resolve(context.Background(), "192.168.1.10"); ok {
		t.Error("failed lookup must yield no result")
	}
}

func TestNetBIOSSourceNoUniqueName(t *testing.T) {
	src := &NetBIOSSource{run: func(context.Context, string, ...string) (string, error) {
		return "Looking up status of 192.168.1.10\n\tWORKGROUP       <00> - <GROUP> M <ACTIVE>\n", nil
	}}
	if _, ok := src.Resolve(context.Background(), "192.168.1.10"); ok {
		t.Error("group-only table must yield no result")
	}
}
