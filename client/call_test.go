package client_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/wireframe-rpc/wireframe/client"
	"github.com/wireframe-rpc/wireframe/internal/testpb"
	"github.com/wireframe-rpc/wireframe/status"
)

// fakeTransport lets the client tests drive the Headers/Data/Eof event
// table directly, without standing up a real HTTP/2 server.
type fakeTransport struct {
	resp *http.Response
	err  error
}

func (f *fakeTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.resp.Request = req
	return f.resp, nil
}

func newMux(t *testing.T, resp *http.Response, err error) *client.Mux {
	t.Helper()
	hc := &http.Client{Transport: &fakeTransport{resp: resp, err: err}}
	return client.NewMux("http://example.invalid", client.WithHTTPClient(hc))
}

func frameHello(msg string) []byte {
	reply := &testpb.HelloReply{Message: msg}
	buf := make([]byte, 5)
	buf = reply.WriteTo(buf)
	l := len(buf) - 5
	buf[1] = byte(l >> 24)
	buf[2] = byte(l >> 16)
	buf[3] = byte(l >> 8)
	buf[4] = byte(l)
	return buf
}

func TestCallSuccess(t *testing.T) {
	body := frameHello("Hello world!")
	resp := &http.Response{
		StatusCode: 200,
		Header:     http.Header{"Content-Type": []string{"application/grpc"}},
		Trailer:    http.Header{"Grpc-Status": []string{"0"}},
		Body:       io.NopCloser(bytes.NewReader(body)),
	}
	mux := newMux(t, resp, nil)
	method, _ := testpb.GreeterDesc.MethodByName("SayHello")

	out, err := client.Call(context.Background(), mux, method, &testpb.HelloRequest{Name: "world"})
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	reply := out.(*testpb.HelloReply)
	if reply.Message != "Hello world!" {
		t.Fatalf("Message = %q", reply.Message)
	}
}

func TestCallSuccessWithoutTrailersFrame(t *testing.T) {
	// DATA carried END_STREAM; no separate TRAILERS frame. resp.Trailer is
	// empty — spec.md §4.5's Eof(Data(last)) row, implicit success.
	body := frameHello("ok")
	resp := &http.Response{
		StatusCode: 200,
		Header:     http.Header{"Content-Type": []string{"application/grpc"}},
		Body:       io.NopCloser(bytes.NewReader(body)),
	}
	mux := newMux(t, resp, nil)
	method, _ := testpb.GreeterDesc.MethodByName("SayHello")

	out, err := client.Call(context.Background(), mux, method, &testpb.HelloRequest{Name: "x"})
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if out.(*testpb.HelloReply).Message != "ok" {
		t.Fatalf("Message = %q", out.(*testpb.HelloReply).Message)
	}
}

func TestCallTrailersOnlyError(t *testing.T) {
	resp := &http.Response{
		StatusCode: 200,
		Header: http.Header{
			"Grpc-Status":  []string{"5"},
			"Grpc-Message": []string{"not found"},
		},
		Body: io.NopCloser(bytes.NewReader(nil)),
	}
	mux := newMux(t, resp, nil)
	method, _ := testpb.GreeterDesc.MethodByName("SayHello")

	_, err := client.Call(context.Background(), mux, method, &testpb.HelloRequest{Name: "x"})
	var se *status.Error
	if !errors.As(err, &se) {
		t.Fatalf("expected *status.Error, got %T: %v", err, err)
	}
	if se.Code != status.NotFound || se.Message != "not found" {
		t.Fatalf("got %+v", se)
	}
}

func TestCallGrpcStatusErrorInTrailers(t *testing.T) {
	resp := &http.Response{
		StatusCode: 200,
		Header:     http.Header{"Content-Type": []string{"application/grpc"}},
		Trailer: http.Header{
			"Grpc-Status":  []string{"7"},
			"Grpc-Message": []string{"nope"},
		},
		Body: io.NopCloser(bytes.NewReader(nil)),
	}
	mux := newMux(t, resp, nil)
	method, _ := testpb.GreeterDesc.MethodByName("SayHello")

	_, err := client.Call(context.Background(), mux, method, &testpb.HelloRequest{Name: "x"})
	var se *status.Error
	if !errors.As(err, &se) {
		t.Fatalf("expected *status.Error, got %T: %v", err, err)
	}
	if se.Code != status.PermissionDenied {
		t.Fatalf("Code = %v", se.Code)
	}
}

func TestCallResponseError(t *testing.T) {
	resp := &http.Response{
		StatusCode: 503,
		Header:     http.Header{},
		Body:       io.NopCloser(bytes.NewReader(nil)),
	}
	mux := newMux(t, resp, nil)
	method, _ := testpb.GreeterDesc.MethodByName("SayHello")

	_, err := client.Call(context.Background(), mux, method, &testpb.HelloRequest{Name: "x"})
	var re *status.ResponseError
	if !errors.As(err, &re) {
		t.Fatalf("expected *status.ResponseError, got %T: %v", err, err)
	}
	if re.StatusCode != 503 {
		t.Fatalf("StatusCode = %d", re.StatusCode)
	}
}
