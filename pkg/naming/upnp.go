package naming

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"
)

const (
	upnpPort    = 1900
	upnpPath    = "/description.xml"
	upnpTimeout = 500 * time.Millisecond

	// device descriptions are small, anything larger is not one
	upnpMaxBody = 1 << 20
)

// UPnPSource fetches the device description some devices publish over HTTP
// and reports its friendly name.
type UPnPSource struct {
	client *http.Client
	port   int
}

func NewUPnPSource() *UPnPSource {
	return &UPnPSource{
		client: &http.Client{Timeout: upnpTimeout},
		port:   upnpPort,
	}
}

func (s *UPnPSource) Name() string { return "upnp" }

type deviceDescription struct {
	XMLName xml.Name `xml:"root"`
	Device  struct {
		FriendlyName string `xml:"friendlyName"`
	} `xml:"device"`
}

// Resolve issues a short-deadline GET for the description document. Timeout,
// connection failure, a non-success status or a body without a friendly name
// all yield no result.
func (s *UPnPSource) Resolve(ctx context.Context, ip string) (string, bool) {
	url := fmt.Sprintf("http://%s%s", net.JoinHostPort(ip, strconv.Itoa(s.port)), upnpPath)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", false
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", false
	}

	var desc deviceDescription
	if err := xml.NewDecoder(io.LimitReader(resp.Body, upnpMaxBody)).Decode(&desc); err != nil {
		return "", false
	}
	if desc.Device.FriendlyName == "" {
		return "", false
	}
	return desc.Device.FriendlyName, true
}
