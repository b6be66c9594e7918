package server

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"

	wflog "github.com/wireframe-rpc/wireframe/internal/log"
	"github.com/wireframe-rpc/wireframe/interceptor"
)

// Option configures a Dispatcher at construction time.
type Option func(*dispatcherConfig)

type dispatcherConfig struct {
	logger *wflog.Logger
}

func defaultDispatcherConfig() *dispatcherConfig {
	return &dispatcherConfig{}
}

// WithLogger attaches a logger for transport-level diagnostics (panics,
// deadline trips). Wire-level and handler errors are never logged
// internally; they always surface to the caller per spec.md §7.
func WithLogger(l *wflog.Logger) Option {
	return func(cfg *dispatcherConfig) { cfg.logger = l }
}

// ServiceOptions configures how one registered service is dispatched,
// mirroring the teacher lineage's rpc.ServiceOptions.
type ServiceOptions struct {
	// EnableValidation runs decoded input messages through Validator (or a
	// shared default instance) before invoking the handler, translating a
	// validation failure into InvalidArgument trailers.
	EnableValidation bool
	// Validator overrides the default *validator.Validate instance.
	Validator *validator.Validate
	// Interceptors wrap every method of this service, innermost around
	// the handler; interceptor.Recovery(logger) (using the Dispatcher's
	// configured logger) is always applied outside these regardless of
	// this list.
	Interceptors []interceptor.Interceptor
}

var defaultValidator = validator.New()

func (o ServiceOptions) validatorOrDefault() *validator.Validate {
	if o.Validator != nil {
		return o.Validator
	}
	return defaultValidator
}

// Request is what a MethodHandler receives: the decoded input message
// (allocated by the method descriptor's NewInput) alongside the inbound
// request's headers, mirroring original_source/ntex-grpc's
// ServerRequest{headers, ...}.
type Request struct {
	Message any
	Header  http.Header
}

// Response is what a MethodHandler returns on success: the output message
// alongside any extra headers the handler wants written into the success
// trailers, mirroring original_source/ntex-grpc's server response, whose
// res.headers the server copies into the trailers it sends
// (src/server/service.rs's `for (name, val) in res.headers { trailers.append(...) }`).
type Response struct {
	Message any
	Header  http.Header
}

// MethodHandler is the shape a registered RPC handler implements. A
// non-*status.Error return is translated to Unknown, per spec.md §7.
type MethodHandler func(ctx context.Context, req *Request) (*Response, error)
