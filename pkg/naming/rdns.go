package naming

import (
	"context"
	"net"
	"strings"
	"time"

	"github.com/miekg/dns"
)

const rdnsTimeout = 2 * time.Second

// ReverseDNSSource issues a PTR query for the reverse-mapping domain of an
// address against the system's configured resolvers.
type ReverseDNSSource struct {
	client *dns.Client
	config *dns.ClientConfig
}

func NewReverseDNSSource() *ReverseDNSSource {
	cfg, err := dns.ClientConfigFromFile("/etc/resolv.conf")
	if err != nil || len(cfg.Servers) == 0 {
		cfg = &dns.ClientConfig{Servers: []string{"1.1.1.1"}, Port: "53"}
	}
	return &ReverseDNSSource{
		client: &dns.Client{Timeout: rdnsTimeout},
		config: cfg,
	}
}

func (s *ReverseDNSSource) Name() string { return "reverse-dns" }

// Resolve queries each configured server for the in-addr.arpa name of ip and
// returns the first PTR target with its trailing dot stripped.
func (s *ReverseDNSSource) Resolve(ctx context.Context, ip string) (string, bool) {
	arpa, err := dns.ReverseAddr(ip)
	if err != nil {
		return "", false
	}

	msg := new(dns.Msg)
	msg.SetQuestion(arpa, dns.TypePTR)

	for _, server := range s.config.Servers {
		resp, _, err := s.client.ExchangeContext(ctx, msg, net.JoinHostPort(server, s.config.Port))
		if err != nil || resp == nil {
			continue
		}
		for _, rr := range resp.Answer {
			ptr, ok := rr.(*dns.PTR)
			if !ok {
				continue
			}
			if name := strings.TrimSuffix(ptr.Ptr, "."); name != "" {
				return name, true
			}
		}
	}
	return "", false
}
