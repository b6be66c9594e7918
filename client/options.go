package client

import (
	"net/http"
	"time"

	wflog "github.com/wireframe-rpc/wireframe/internal/log"
	"github.com/wireframe-rpc/wireframe/interceptor"
)

// Option configures a Mux at construction time.
type Option func(*muxConfig)

type muxConfig struct {
	httpClient *http.Client
	userAgent  string
	logger     *wflog.Logger
}

func defaultMuxConfig() *muxConfig {
	return &muxConfig{userAgent: "wireframe/0.1"}
}

// WithHTTPClient overrides the *http.Client used to issue requests. It
// must be configured to speak HTTP/2 (see NewH2CClient / NewTLSClient in
// transport.go); this is the hook a caller uses to supply a TLS-backed
// client instead.
func WithHTTPClient(c *http.Client) Option {
	return func(cfg *muxConfig) { cfg.httpClient = c }
}

// WithUserAgent overrides the default "user-agent" header value.
func WithUserAgent(ua string) Option {
	return func(cfg *muxConfig) { cfg.userAgent = ua }
}

// WithLogger attaches a logger for transport-level diagnostics.
func WithLogger(l *wflog.Logger) Option {
	return func(cfg *muxConfig) { cfg.logger = l }
}

// CallOption configures a single call.
type CallOption func(*callConfig)

type callConfig struct {
	header      http.Header
	timeout     time.Duration
	interceptor interceptor.Interceptor
}

func defaultCallConfig() *callConfig {
	return &callConfig{header: make(http.Header)}
}

// WithHeader adds a caller-supplied header, merged with the baseline
// headers spec.md §4.5 mandates.
func WithHeader(key, value string) CallOption {
	return func(cfg *callConfig) { cfg.header.Add(key, value) }
}

// WithTimeout sets a grpc-timeout header derived from d, in addition to
// whatever deadline ctx itself carries. The caller remains responsible for
// enforcing it (spec.md §4.5): wrap ctx with context.WithTimeout alongside
// this option if the call itself should be aborted locally.
func WithTimeout(d time.Duration) CallOption {
	return func(cfg *callConfig) { cfg.timeout = d }
}

// WithInterceptor wraps the call with ic.
func WithInterceptor(ic interceptor.Interceptor) CallOption {
	return func(cfg *callConfig) { cfg.interceptor = ic }
}
