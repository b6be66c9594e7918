package client

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/net/http2"

	"github.com/wireframe-rpc/wireframe/interceptor"
	"github.com/wireframe-rpc/wireframe/rpcdesc"
	"github.com/wireframe-rpc/wireframe/status"
	"github.com/wireframe-rpc/wireframe/timeout"
	"github.com/wireframe-rpc/wireframe/wire"
)

// Response carries a successful call's decoded message alongside the
// headers and trailers the server sent with it, per spec.md §4.5's waiter
// completion shape "(status, body, headers, trailers)" — mirrored from
// original_source/ntex-grpc/src/client/request.rs's Response<T>, whose
// .headers()/.trailers() this type exposes the Go-idiomatic way (plain
// exported fields instead of accessor methods).
type Response struct {
	Message any
	Header  http.Header
	Trailer http.Header
}

// Call invokes method on mux with req, returning the decoded output
// message, or an error from the taxonomy in spec.md §7 (decode, transport,
// HTTP response, gRPC status, unexpected EOF, cancelled). It is a
// convenience over CallResponse for callers that don't need headers or
// trailers — the moral equivalent of the original's into_inner().
func Call(ctx context.Context, mux *Mux, method rpcdesc.MethodDescriptor, req wire.Message, opts ...CallOption) (any, error) {
	resp, err := CallResponse(ctx, mux, method, req, opts...)
	if err != nil {
		return nil, err
	}
	return resp.Message, nil
}

// CallResponse invokes method on mux with req like Call, but returns the
// full Response (message, headers, trailers) instead of discarding
// everything but the message.
func CallResponse(ctx context.Context, mux *Mux, method rpcdesc.MethodDescriptor, req wire.Message, opts ...CallOption) (*Response, error) {
	cfg := defaultCallConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	do := func(ctx context.Context, req any) (any, error) {
		return doCall(ctx, mux, method, req.(wire.Message), cfg)
	}
	var resp any
	var err error
	if cfg.interceptor != nil {
		resp, err = cfg.interceptor.Intercept(ctx, method.Path, req, interceptor.Handler(do))
	} else {
		resp, err = do(ctx, req)
	}
	if err != nil {
		return nil, err
	}
	return resp.(*Response), nil
}

func doCall(ctx context.Context, mux *Mux, method rpcdesc.MethodDescriptor, req wire.Message, cfg *callConfig) (*Response, error) {
	ctx, cancel := context.WithCancel(ctx)
	_, remove := mux.register(cancel)
	defer remove()
	defer cancel()

	body := frameMessage(req)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, mux.baseURL+method.Path, bytes.NewReader(body))
	if err != nil {
		mux.logf("wireframe: %s: new request failed: %v", method.Path, err)
		return nil, &status.TransportError{Op: "new request", Err: err}
	}
	httpReq.Header.Set("content-type", "application/grpc")
	httpReq.Header.Set("user-agent", mux.userAgent)
	httpReq.Header.Set("te", "trailers")
	httpReq.Header.Set("grpc-encoding", "identity")
	httpReq.Header.Set("grpc-accept-encoding", "identity")
	for k, vs := range cfg.header {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}
	if cfg.timeout > 0 {
		tv, err := timeout.Encode(cfg.timeout)
		if err != nil {
			return nil, fmt.Errorf("wireframe/client: %w", err)
		}
		httpReq.Header.Set("grpc-timeout", tv)
	}

	resp, err := mux.client.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, status.ErrDeadlineExceeded("%v", err)
		}
		if errors.Is(err, context.Canceled) {
			return nil, &status.CancelledError{}
		}
		var se http2.StreamError
		if errors.As(err, &se) {
			mux.logf("wireframe: %s: stream error: %v", method.Path, se)
			return nil, status.New(status.FromHTTP2Error(se.Code), se.Error())
		}
		mux.logf("wireframe: %s: disconnected: %v", method.Path, err)
		return nil, &status.TransportError{Op: "do", Err: err}
	}
	defer resp.Body.Close()

	// Trailers-only response: HEADERS with END_STREAM carries grpc-status
	// directly in the response header, and net/http never populates
	// resp.Trailer because no separate TRAILERS frame follows.
	if gs := resp.Header.Get("grpc-status"); gs != "" {
		return nil, trailersOnlyResult(resp.Header)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
		return nil, &status.ResponseError{StatusCode: resp.StatusCode, Header: resp.Header, Body: b}
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, status.ErrDeadlineExceeded("%v", err)
		}
		if errors.Is(err, context.Canceled) {
			return nil, &status.CancelledError{}
		}
		mux.logf("wireframe: %s: disconnected reading body: %v", method.Path, err)
		return nil, &status.TransportError{Op: "read body", Err: err}
	}

	if gs := resp.Trailer.Get("grpc-status"); gs != "" {
		code, perr := status.ParseCode(gs)
		if perr != nil {
			return nil, wire.NewDecodeError("Cannot parse grpc status")
		}
		if code != status.OK {
			return nil, status.New(code, resp.Trailer.Get("grpc-message")).WithHeader(resp.Trailer)
		}
	}
	// No grpc-status trailer at all: a DATA frame carried END_STREAM with
	// no separate TRAILERS frame. Per spec.md §4.5's Eof(Data(last)) row,
	// this completes successfully with empty trailers.

	msg, err := decodeFramedMessage(respBody, method)
	if err != nil {
		return nil, err
	}
	return &Response{Message: msg, Header: resp.Header, Trailer: resp.Trailer}, nil
}

func trailersOnlyResult(h http.Header) error {
	gs := h.Get("grpc-status")
	code, err := status.ParseCode(gs)
	if err != nil {
		return wire.NewDecodeError("Cannot parse grpc status")
	}
	if code != status.OK {
		return status.New(code, h.Get("grpc-message")).WithHeader(h)
	}
	return &status.UnexpectedEOFError{}
}

// frameMessage serializes req as the standard 5-byte-prefixed gRPC frame:
// one zero compression byte, a big-endian u32 length, then the payload.
func frameMessage(req wire.Message) []byte {
	payloadLen := req.EncodedLen()
	buf := make([]byte, 5, 5+payloadLen)
	binary.BigEndian.PutUint32(buf[1:5], uint32(payloadLen))
	return req.WriteTo(buf)
}

// decodeFramedMessage strips the 5-byte prefix and decodes the payload
// into a fresh output message.
func decodeFramedMessage(body []byte, method rpcdesc.MethodDescriptor) (any, error) {
	if len(body) < 5 {
		return nil, wire.NewDecodeError("Not enough data")
	}
	if body[0] != 0 {
		return nil, status.ErrInvalidArgument("non-zero compression flag is not supported")
	}
	length := binary.BigEndian.Uint32(body[1:5])
	if int(length) > len(body)-5 {
		return nil, wire.NewDecodeError("Not enough data")
	}
	payload := body[5 : 5+length]
	out := method.NewOutput()
	reader, ok := out.(wire.Reader)
	if !ok {
		return nil, fmt.Errorf("wireframe/client: output type for %s does not implement wire.Reader", method.Name)
	}
	if err := reader.UnmarshalFrom(payload); err != nil {
		return nil, err
	}
	return out, nil
}
