// Package status implements the gRPC status code taxonomy and the error
// types the client and server packages use to carry it: decode errors,
// transport errors, HTTP response errors, gRPC status errors, unexpected
// EOF, and cancellation, per spec.md §4.7/§7.
package status

import (
	"fmt"
	"strconv"
)

// Code is a gRPC status code. Values match the gRPC specification exactly.
type Code int

const (
	OK                 Code = 0
	Canceled           Code = 1
	Unknown            Code = 2
	InvalidArgument    Code = 3
	DeadlineExceeded   Code = 4
	NotFound           Code = 5
	AlreadyExists      Code = 6
	PermissionDenied   Code = 7
	ResourceExhausted  Code = 8
	FailedPrecondition Code = 9
	Aborted            Code = 10
	OutOfRange         Code = 11
	Unimplemented      Code = 12
	Internal           Code = 13
	Unavailable        Code = 14
	DataLoss           Code = 15
	Unauthenticated    Code = 16
)

var codeNames = map[Code]string{
	OK:                 "OK",
	Canceled:           "Canceled",
	Unknown:            "Unknown",
	InvalidArgument:    "InvalidArgument",
	DeadlineExceeded:   "DeadlineExceeded",
	NotFound:           "NotFound",
	AlreadyExists:      "AlreadyExists",
	PermissionDenied:   "PermissionDenied",
	ResourceExhausted:  "ResourceExhausted",
	FailedPrecondition: "FailedPrecondition",
	Aborted:            "Aborted",
	OutOfRange:         "OutOfRange",
	Unimplemented:      "Unimplemented",
	Internal:           "Internal",
	Unavailable:        "Unavailable",
	DataLoss:           "DataLoss",
	Unauthenticated:    "Unauthenticated",
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Code(%d)", int(c))
}

// Valid reports whether c is one of the 17 declared status codes.
func (c Code) Valid() bool {
	_, ok := codeNames[c]
	return ok
}

// ParseCode parses the ASCII decimal grpc-status trailer value. Any value
// outside [0, 16] is rejected, per spec.md §4.5.
func ParseCode(s string) (Code, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("cannot parse grpc status %q: %w", s, err)
	}
	c := Code(n)
	if n < 0 || n > 16 || !c.Valid() {
		return 0, fmt.Errorf("cannot parse grpc status %q: out of range", s)
	}
	return c, nil
}
