// Package client implements the client-side call multiplexer: it turns
// typed method invocations into HTTP/2 POST requests on a shared
// connection and reassembles responses, per spec.md §4.5.
package client

import (
	"net/http"
	"sync"

	wflog "github.com/wireframe-rpc/wireframe/internal/log"
)

// Mux multiplexes calls over one shared HTTP/2 connection (one *Mux per
// connection, per spec.md §5). The underlying *http.Client / http2.Transport
// already does the actual stream multiplexing; Mux adds the waiter
// bookkeeping, baseline headers, and grpc-status reassembly spec.md §4.5
// describes.
type Mux struct {
	baseURL   string
	client    *http.Client
	userAgent string
	logger    *wflog.Logger

	mu      sync.Mutex
	nextID  uint64
	waiters map[uint64]*waiter
}

// waiter is the per-call bookkeeping entry spec.md §4.5 calls for: a
// handle the inflight table tracks so a dropped call can be located and
// its stream reset. The actual body accumulation happens on the calling
// goroutine (net/http's model gives every call its own goroutine-owned
// response already; see SPEC_FULL.md §5), so waiter itself only needs to
// carry the cancellation hook.
type waiter struct {
	id     uint64
	cancel func()
}

// NewMux creates a Mux issuing requests against baseURL (e.g.
// "http://localhost:8080" or "https://api.example.com"). If no
// client.Option supplies an *http.Client, an h2c client is used.
func NewMux(baseURL string, opts ...Option) *Mux {
	cfg := defaultMuxConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.httpClient == nil {
		cfg.httpClient = NewH2CClient()
	}
	return &Mux{
		baseURL:   baseURL,
		client:    cfg.httpClient,
		userAgent: cfg.userAgent,
		logger:    cfg.logger,
		waiters:   make(map[uint64]*waiter),
	}
}

// register adds a waiter to the inflight table and returns a function that
// removes it. The client exclusively owns this table, per spec.md §3.
func (m *Mux) register(cancel func()) (*waiter, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	w := &waiter{id: m.nextID, cancel: cancel}
	m.waiters[w.id] = w
	return w, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.waiters, w.id)
	}
}

// Inflight reports the number of calls currently awaiting completion.
// Exposed for tests and diagnostics; not part of the wire protocol.
func (m *Mux) Inflight() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.waiters)
}

// logf logs a transport-level diagnostic (disconnect, stream error) if a
// logger was configured via WithLogger; it is a silent no-op otherwise.
func (m *Mux) logf(format string, args ...any) {
	m.logger.Printf(format, args...)
}

// CancelAll resets every inflight call's stream, e.g. on shutdown.
func (m *Mux) CancelAll() {
	m.mu.Lock()
	waiters := make([]*waiter, 0, len(m.waiters))
	for _, w := range m.waiters {
		waiters = append(waiters, w)
	}
	m.mu.Unlock()
	for _, w := range waiters {
		w.cancel()
	}
}
