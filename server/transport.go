package server

import (
	"net/http"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

// WrapH2C adapts handler to serve HTTP/2 over plaintext ("h2c"), the way a
// loopback or service-mesh-terminated deployment typically exposes a
// wireframe server. This is the minimal glue needed to hand the dispatcher
// to the HTTP/2 transport library — framing, HPACK, flow control, and
// settings stay entirely inside golang.org/x/net/http2, out of scope per
// spec.md §1 — adapted from the teacher lineage's
// gateway.HTTP2Transport.WrapHandler, stripped of its keepalive-enforcement
// policy (connection-level concern, out of scope here).
func WrapH2C(handler http.Handler) http.Handler {
	h2s := &http2.Server{}
	return h2c.NewHandler(handler, h2s)
}

// WrapTLS configures srv to serve HTTP/2 over TLS for handler using ALPN
// negotiation. Certificate provisioning is the caller's concern, out of
// scope per spec.md §1.
func WrapTLS(srv *http.Server, handler http.Handler) error {
	srv.Handler = handler
	return http2.ConfigureServer(srv, &http2.Server{})
}
