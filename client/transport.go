package client

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"

	"golang.org/x/net/http2"
)

// NewH2CClient builds an *http.Client that speaks HTTP/2 over plaintext
// ("h2c"), the way a loopback or service-mesh-terminated deployment
// typically reaches a wireframe server in tests and examples. It is built
// directly on golang.org/x/net/http2.Transport — the teacher lineage's own
// transport dependency — configured for prior-knowledge cleartext HTTP/2
// exactly as the golang.org/x/net/http2 package's own h2c examples do.
func NewH2CClient() *http.Client {
	return &http.Client{
		Transport: &http2.Transport{
			AllowHTTP: true,
			DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
				var d net.Dialer
				return d.DialContext(ctx, network, addr)
			},
		},
	}
}

// NewTLSClient builds an *http.Client that speaks HTTP/2 over TLS using
// cfg. Connection establishment and certificate validation are the
// caller's concern (out of scope per spec.md §1); this only wires the
// transport.
func NewTLSClient(cfg *tls.Config) *http.Client {
	return &http.Client{
		Transport: &http2.Transport{
			TLSClientConfig: cfg,
		},
	}
}
