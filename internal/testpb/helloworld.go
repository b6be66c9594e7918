// Package testpb holds hand-written, generated-style message and service
// types used as fixtures by the wire, client, and server test suites. A
// real deployment would produce these from .proto files through the
// code-generator boundary described alongside the client and server
// packages; here they stand in for that generator's output.
package testpb

import "github.com/wireframe-rpc/wireframe/wire"

// HelloRequest is the input of Greeter.SayHello.
type HelloRequest struct {
	Name string // tag 1
}

func (m *HelloRequest) WriteTo(dst []byte) []byte {
	dst = wire.StringCodec.Serialize(dst, 1, m.Name, wire.OnDefault[string]())
	return dst
}

func (m *HelloRequest) EncodedLen() int {
	return wire.StringCodec.SerializedLen(1, m.Name, wire.OnDefault[string]())
}

func (m *HelloRequest) UnmarshalFrom(src []byte) error {
	for len(src) > 0 {
		fk, n, err := wire.DecodeFieldKey(src)
		if err != nil {
			return wire.AnnotateField(err, "HelloRequest", "?")
		}
		src = src[n:]
		switch fk.Tag {
		case 1:
			v, n, err := wire.StringCodec.Deserialize(src)
			if err != nil {
				return wire.AnnotateField(err, "HelloRequest", "name")
			}
			m.Name = v
			src = src[n:]
		default:
			n, err := wire.SkipField(fk, src)
			if err != nil {
				return wire.AnnotateField(err, "HelloRequest", "?")
			}
			src = src[n:]
		}
	}
	return nil
}

// HelloReply is the output of Greeter.SayHello.
type HelloReply struct {
	Message string // tag 1
}

func (m *HelloReply) WriteTo(dst []byte) []byte {
	dst = wire.StringCodec.Serialize(dst, 1, m.Message, wire.OnDefault[string]())
	return dst
}

func (m *HelloReply) EncodedLen() int {
	return wire.StringCodec.SerializedLen(1, m.Message, wire.OnDefault[string]())
}

func (m *HelloReply) UnmarshalFrom(src []byte) error {
	for len(src) > 0 {
		fk, n, err := wire.DecodeFieldKey(src)
		if err != nil {
			return wire.AnnotateField(err, "HelloReply", "?")
		}
		src = src[n:]
		switch fk.Tag {
		case 1:
			v, n, err := wire.StringCodec.Deserialize(src)
			if err != nil {
				return wire.AnnotateField(err, "HelloReply", "message")
			}
			m.Message = v
			src = src[n:]
		default:
			n, err := wire.SkipField(fk, src)
			if err != nil {
				return wire.AnnotateField(err, "HelloReply", "?")
			}
			src = src[n:]
		}
	}
	return nil
}

var (
	_ wire.Submessage[HelloRequest] = (*HelloRequest)(nil)
	_ wire.Submessage[HelloReply]   = (*HelloReply)(nil)
)
