// Package interceptor implements the unary interceptor chain shared by the
// client and server packages, adapted from the teacher lineage's
// Interceptor/ChainInterceptors pattern to this module's typed-descriptor,
// unary-only call model.
package interceptor

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	wflog "github.com/wireframe-rpc/wireframe/internal/log"
)

// Handler invokes the next step in the chain (ultimately, the user's
// method handler or the transport call itself).
type Handler func(ctx context.Context, req any) (any, error)

// Interceptor wraps a call, given the method's full path.
type Interceptor interface {
	Intercept(ctx context.Context, method string, req any, next Handler) (any, error)
}

// Func adapts a plain function to the Interceptor interface.
type Func func(ctx context.Context, method string, req any, next Handler) (any, error)

func (f Func) Intercept(ctx context.Context, method string, req any, next Handler) (any, error) {
	return f(ctx, method, req, next)
}

// Chain composes interceptors into one, applied outermost-first: the first
// interceptor in the list sees the call before any other.
func Chain(interceptors ...Interceptor) Interceptor {
	return &chained{interceptors: interceptors}
}

type chained struct {
	interceptors []Interceptor
}

func (c *chained) Intercept(ctx context.Context, method string, req any, next Handler) (any, error) {
	final := next
	for i := len(c.interceptors) - 1; i >= 0; i-- {
		ic := c.interceptors[i]
		wrapped := final
		final = func(ctx context.Context, req any) (any, error) {
			return ic.Intercept(ctx, method, req, wrapped)
		}
	}
	return final(ctx, req)
}

// Logging logs the start, duration, and outcome of every call through l.
func Logging(l *wflog.Logger) Interceptor {
	return Func(func(ctx context.Context, method string, req any, next Handler) (any, error) {
		start := time.Now()
		l.Printf("wireframe: starting %s", method)
		resp, err := next(ctx, req)
		if err != nil {
			l.Printf("wireframe: %s failed after %v: %v", method, time.Since(start), err)
		} else {
			l.Printf("wireframe: %s completed in %v", method, time.Since(start))
		}
		return resp, err
	})
}

// Recovery converts a panic inside next into an error rather than letting
// it unwind into the transport goroutine. If l is non-nil, the panic is
// also logged for transport-level diagnostics before being converted.
func Recovery(l *wflog.Logger) Interceptor {
	return Func(func(ctx context.Context, method string, req any, next Handler) (resp any, err error) {
		defer func() {
			if r := recover(); r != nil {
				l.Printf("wireframe: panic in handler for %s: %v", method, r)
				err = fmt.Errorf("wireframe: panic in handler for %s: %v", method, r)
			}
		}()
		return next(ctx, req)
	})
}

// Metrics accumulates simple call counters. The zero value is ready to use
// and safe for concurrent calls.
type Metrics struct {
	RequestCount  atomic.Int64
	SuccessCount  atomic.Int64
	FailureCount  atomic.Int64
	TotalDuration atomic.Int64 // nanoseconds
}

func (m *Metrics) Interceptor() Interceptor {
	return Func(func(ctx context.Context, method string, req any, next Handler) (any, error) {
		start := time.Now()
		m.RequestCount.Add(1)
		resp, err := next(ctx, req)
		m.TotalDuration.Add(int64(time.Since(start)))
		if err != nil {
			m.FailureCount.Add(1)
		} else {
			m.SuccessCount.Add(1)
		}
		return resp, err
	})
}
