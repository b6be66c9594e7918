package status

import "golang.org/x/net/http2"

// http2CodeMap maps HTTP/2 stream/connection error codes to gRPC status,
// per spec.md §4.7. golang.org/x/net/http2 is already the module's
// transport dependency, so its ErrCode enum is used directly rather than
// redeclaring the HTTP/2 error space.
var http2CodeMap = map[http2.ErrCode]Code{
	http2.ErrCodeNo:                 Internal,
	http2.ErrCodeProtocol:           Internal,
	http2.ErrCodeInternal:           Internal,
	http2.ErrCodeFlowControl:        Internal,
	http2.ErrCodeSettingsTimeout:    Internal,
	http2.ErrCodeFrameSize:          Internal,
	http2.ErrCodeCompression:        Internal,
	http2.ErrCodeConnect:            Internal,
	http2.ErrCodeRefusedStream:      Unavailable,
	http2.ErrCodeCancel:             Canceled,
	http2.ErrCodeEnhanceYourCalm:    ResourceExhausted,
	http2.ErrCodeInadequateSecurity: PermissionDenied,
}

// FromHTTP2Error maps an HTTP/2 error code observed on a reset or GOAWAY
// frame to the corresponding gRPC status. Codes outside the declared set
// map to Unknown.
func FromHTTP2Error(code http2.ErrCode) Code {
	if c, ok := http2CodeMap[code]; ok {
		return c
	}
	return Unknown
}
