// Package server implements the server-side stream dispatcher: it parses
// the gRPC URL path, buffers the request body, invokes the registered
// handler under an optional deadline, and emits the gRPC status protocol
// in trailers, per spec.md §4.6.
package server

import (
	"context"
	"encoding/binary"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"

	wflog "github.com/wireframe-rpc/wireframe/internal/log"
	"github.com/wireframe-rpc/wireframe/interceptor"
	"github.com/wireframe-rpc/wireframe/rpcdesc"
	"github.com/wireframe-rpc/wireframe/status"
	"github.com/wireframe-rpc/wireframe/timeout"
	"github.com/wireframe-rpc/wireframe/wire"
)

// Dispatcher is an http.Handler that routes inbound unary gRPC calls to
// registered handlers. One Dispatcher typically backs one process; wrap it
// with WrapH2C or WrapTLS before handing it to an *http.Server.
type Dispatcher struct {
	logger *wflog.Logger

	mu       sync.RWMutex
	services map[string]*registeredService
}

type registeredService struct {
	desc     *rpcdesc.ServiceDescriptor
	handlers map[string]MethodHandler
	opts     ServiceOptions
	chain    interceptor.Interceptor
}

// NewDispatcher creates an empty Dispatcher.
func NewDispatcher(opts ...Option) *Dispatcher {
	cfg := defaultDispatcherConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Dispatcher{
		logger:   cfg.logger,
		services: make(map[string]*registeredService),
	}
}

// Register binds handlers (keyed by method name, matching desc's methods)
// to desc's service name. Panics if desc's name is already registered or
// if a handler is missing for one of desc's declared methods — both are
// wiring bugs caught at startup, not runtime conditions.
func (d *Dispatcher) Register(desc *rpcdesc.ServiceDescriptor, handlers map[string]MethodHandler, opts ServiceOptions) {
	for _, m := range desc.Methods {
		if _, ok := handlers[m.Name]; !ok {
			panic("wireframe/server: missing handler for " + desc.Name + "." + m.Name)
		}
	}
	ics := append([]interceptor.Interceptor{interceptor.Recovery(d.logger)}, opts.Interceptors...)
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, dup := d.services[desc.Name]; dup {
		panic("wireframe/server: service already registered: " + desc.Name)
	}
	d.services[desc.Name] = &registeredService{
		desc:     desc,
		handlers: handlers,
		opts:     opts,
		chain:    interceptor.Chain(ics...),
	}
}

func (d *Dispatcher) lookup(serviceName string) (*registeredService, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	svc, ok := d.services[serviceName]
	return svc, ok
}

// ServeHTTP implements the Initial/Buffering/Dispatch state machine from
// spec.md §4.6. The whole request is buffered before dispatch (this
// module is unary-only, per spec.md's non-goals), which lets the handler
// run as an ordinary function call instead of a stream of frame events.
func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	serviceName, methodName, ok := parsePath(r.URL.Path)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	svc, ok := d.lookup(serviceName)
	if !ok {
		writeTrailersOnly(w, status.NotFound, "unknown service "+serviceName, nil)
		return
	}
	method, ok := svc.desc.MethodByName(methodName)
	if !ok {
		writeTrailersOnly(w, status.Unimplemented, "unknown method "+methodName, nil)
		return
	}
	handler := svc.handlers[methodName]

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeTrailersOnly(w, status.Internal, "failed to read request body", nil)
		return
	}

	in, decodeErr := decodeFramedMessage(body, method)
	if decodeErr != nil {
		writeTrailersOnly(w, status.InvalidArgument, "Cannot decode", nil)
		return
	}

	if svc.opts.EnableValidation {
		if verr := svc.opts.validatorOrDefault().Struct(in); verr != nil {
			writeTrailersOnly(w, status.InvalidArgument, verr.Error(), nil)
			return
		}
	}

	ctx := r.Context()
	if tv := r.Header.Get("grpc-timeout"); tv != "" {
		d, derr := timeout.Decode(tv)
		if derr != nil {
			writeTrailersOnly(w, status.InvalidArgument, "invalid grpc-timeout", nil)
			return
		}
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	call := func(ctx context.Context, req any) (any, error) {
		return handler(ctx, req.(*Request))
	}

	type result struct {
		resp any
		err  error
	}
	done := make(chan result, 1)
	go func() {
		resp, err := svc.chain.Intercept(ctx, method.Path, &Request{Message: in, Header: r.Header}, interceptor.Handler(call))
		done <- result{resp, err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			se, _ := status.FromError(res.err)
			writeTrailersOnly(w, se.Code, se.Message, se.Header)
			return
		}
		out, ok := res.resp.(*Response)
		if !ok {
			writeTrailersOnly(w, status.Internal, "handler returned a non-Response value", nil)
			return
		}
		msg, ok := out.Message.(wire.Message)
		if !ok {
			writeTrailersOnly(w, status.Internal, "handler returned a non-message value", nil)
			return
		}
		writeSuccess(w, msg, out.Header)
	case <-ctx.Done():
		d.logger.Printf("wireframe: %s: deadline exceeded", method.Path)
		writeTrailersOnly(w, status.DeadlineExceeded, "Deadline exceeded", nil)
	}
}

// parsePath splits "/<pkg>.<Service>/<Method>" into its two components.
func parsePath(path string) (service, method string, ok bool) {
	if len(path) == 0 || path[0] != '/' {
		return "", "", false
	}
	rest := path[1:]
	i := strings.IndexByte(rest, '/')
	if i < 0 {
		return "", "", false
	}
	return rest[:i], rest[i+1:], true
}

func decodeFramedMessage(body []byte, method rpcdesc.MethodDescriptor) (any, error) {
	if len(body) < 5 {
		return nil, wire.NewDecodeError("Not enough data")
	}
	if body[0] != 0 {
		return nil, wire.NewDecodeError("non-zero compression flag is not supported")
	}
	length := binary.BigEndian.Uint32(body[1:5])
	if int(length) > len(body)-5 {
		return nil, wire.NewDecodeError("Not enough data")
	}
	payload := body[5 : 5+length]
	in := method.NewInput()
	reader, ok := in.(wire.Reader)
	if !ok {
		return nil, wire.NewDecodeError("input type does not implement wire.Reader")
	}
	if err := reader.UnmarshalFrom(payload); err != nil {
		return nil, err
	}
	return in, nil
}

// writeSuccess writes out as the DATA frame and Grpc-Status: 0 as a real
// trailer, merging in any handler-supplied extra (declared as trailers via
// http.TrailerPrefix so they land alongside Grpc-Status), per spec.md
// §4.6's "trailers with grpc-status=Ok and any handler-provided headers".
func writeSuccess(w http.ResponseWriter, out wire.Message, extra http.Header) {
	w.Header().Set("Content-Type", "application/grpc")
	w.WriteHeader(http.StatusOK)

	frame := make([]byte, 5, 5+out.EncodedLen())
	binary.BigEndian.PutUint32(frame[1:5], uint32(out.EncodedLen()))
	frame = out.WriteTo(frame)
	w.Write(frame)

	for k, vs := range extra {
		for _, v := range vs {
			w.Header().Add(http.TrailerPrefix+k, v)
		}
	}
	w.Header().Set(http.TrailerPrefix+"Grpc-Status", "0")
	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

// writeTrailersOnly sends a single HEADERS frame carrying grpc-status
// directly (END_STREAM set because nothing else is written), matching the
// gRPC trailers-only response shape.
func writeTrailersOnly(w http.ResponseWriter, code status.Code, msg string, extra http.Header) {
	h := w.Header()
	h.Set("Content-Type", "application/grpc")
	for k, vs := range extra {
		for _, v := range vs {
			h.Add(k, v)
		}
	}
	h.Set("Grpc-Status", strconv.Itoa(int(code)))
	if msg != "" {
		h.Set("Grpc-Message", msg)
	}
	w.WriteHeader(http.StatusOK)
}
