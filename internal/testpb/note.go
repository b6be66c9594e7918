package testpb

import "github.com/wireframe-rpc/wireframe/wire"

// Note exercises a proto3 `optional` scalar field, which must distinguish
// absence from a present zero value (SuppressDefault alone conflates the
// two).
type Note struct {
	Priority *int32 // tag 1, optional
}

func (m *Note) WriteTo(dst []byte) []byte {
	return wire.SerializeOptional(dst, 1, m.Priority, wire.Int32Codec)
}

func (m *Note) EncodedLen() int {
	return wire.SerializedLenOptional(1, m.Priority, wire.Int32Codec)
}

func (m *Note) UnmarshalFrom(src []byte) error {
	for len(src) > 0 {
		fk, n, err := wire.DecodeFieldKey(src)
		if err != nil {
			return wire.AnnotateField(err, "Note", "?")
		}
		src = src[n:]
		switch fk.Tag {
		case 1:
			v, n, err := wire.DeserializeOptional(src, wire.Int32Codec)
			if err != nil {
				return wire.AnnotateField(err, "Note", "priority")
			}
			m.Priority = v
			src = src[n:]
		default:
			n, err := wire.SkipField(fk, src)
			if err != nil {
				return wire.AnnotateField(err, "Note", "?")
			}
			src = src[n:]
		}
	}
	return nil
}

var _ wire.Submessage[Note] = (*Note)(nil)
