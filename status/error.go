package status

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a gRPC status error: the outcome carried in trailers, or
// constructed by a handler and written into trailers by the dispatcher.
// It is also what the client surfaces when grpc-status != OK.
type Error struct {
	Code    Code
	Message string
	// Header carries any extra headers/trailers a handler attached to the
	// error (server side) or the trailers observed with the status
	// (client side).
	Header http.Header
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

func (e *Error) Error() string {
	return fmt.Sprintf("rpc error: code = %s desc = %s", e.Code, e.Message)
}

// WithHeader attaches extra header/trailer values and returns e.
func (e *Error) WithHeader(h http.Header) *Error {
	e.Header = h
	return e
}

// FromError reports whether err is (or wraps) a *Error, returning it and
// true if so, or an Unknown-coded wrapper and false otherwise — mirroring
// the decode-error-to-trailer translation spec.md §7 assigns the server.
func FromError(err error) (*Error, bool) {
	if err == nil {
		return New(OK, ""), true
	}
	var se *Error
	if errors.As(err, &se) {
		return se, true
	}
	return New(Unknown, err.Error()), false
}

// Convenience constructors for the most commonly raised statuses, named
// after their code like the teacher's rpc.Err* helpers.
func ErrInvalidArgument(format string, args ...any) *Error {
	return Newf(InvalidArgument, format, args...)
}
func ErrNotFound(format string, args ...any) *Error      { return Newf(NotFound, format, args...) }
func ErrUnimplemented(format string, args ...any) *Error { return Newf(Unimplemented, format, args...) }
func ErrInternal(format string, args ...any) *Error      { return Newf(Internal, format, args...) }
func ErrDeadlineExceeded(format string, args ...any) *Error {
	return Newf(DeadlineExceeded, format, args...)
}
func ErrCanceled(format string, args ...any) *Error { return Newf(Canceled, format, args...) }

// TransportError reports a stream reset, connection disconnect, or HTTP
// header parse error. It is reported verbatim; the client never retries
// internally.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("transport error: %s: %v", e.Op, e.Err) }
func (e *TransportError) Unwrap() error { return e.Err }

// ResponseError reports a non-2xx HTTP response observed before any gRPC
// payload could be decoded.
type ResponseError struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("http response error: status %d", e.StatusCode)
}

// UnexpectedEOFError reports a stream that closed without delivering a
// payload when one was expected.
type UnexpectedEOFError struct{}

func (e *UnexpectedEOFError) Error() string { return "unexpected EOF: no payload delivered" }

// CancelledError reports a waiter that was dropped before completion.
type CancelledError struct{}

func (e *CancelledError) Error() string { return "call cancelled" }
