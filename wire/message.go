package wire

import "google.golang.org/protobuf/encoding/protowire"

// Message is the write side of the capability set spec.md §4.3 requires of
// every generated message type.
type Message interface {
	WriteTo(dst []byte) []byte
	EncodedLen() int
}

// Reader is the read side: UnmarshalFrom populates the receiver's fields
// from src, which holds exactly one message's encoding (no length prefix).
type Reader interface {
	UnmarshalFrom(src []byte) error
}

// Submessage is the generic constraint used for message-typed fields: PT
// is a pointer to the generated struct T and implements both halves of
// the capability set.
type Submessage[T any] interface {
	*T
	Message
	Reader
}

// SerializeMessage appends a length-delimited submessage field, or nothing
// if v is nil (an absent optional message).
func SerializeMessage[T any, PT Submessage[T]](dst []byte, tag uint32, v PT) []byte {
	if v == nil {
		return dst
	}
	dst = AppendFieldKey(dst, FieldKey{Tag: tag, Type: WireBytes})
	dst = AppendVarint(dst, uint64(v.EncodedLen()))
	return v.WriteTo(dst)
}

// SerializedLenMessage returns the size SerializeMessage would produce.
func SerializedLenMessage[T any, PT Submessage[T]](tag uint32, v PT) int {
	if v == nil {
		return 0
	}
	l := v.EncodedLen()
	return SizeFieldKey(FieldKey{Tag: tag, Type: WireBytes}) + SizeVarint(uint64(l)) + l
}

// DeserializeMessage decodes a length-delimited submessage (the field key
// must already be consumed), allocating a fresh T.
func DeserializeMessage[T any, PT Submessage[T]](src []byte) (PT, int, error) {
	b, n := protowire.ConsumeBytes(src)
	if n < 0 {
		return nil, 0, wireConsumeErr(n, "not enough data")
	}
	var zero T
	v := PT(&zero)
	if err := v.UnmarshalFrom(b); err != nil {
		return nil, 0, err
	}
	return v, n, nil
}

// SerializeRepeatedPacked appends vals as a single length-delimited run
// (the "packed" encoding), or nothing if vals is empty.
func SerializeRepeatedPacked[T comparable](dst []byte, tag uint32, vals []T, codec PrimitiveCodec[T]) []byte {
	if len(vals) == 0 {
		return dst
	}
	total := 0
	for _, v := range vals {
		total += codec.ValueLen(v)
	}
	dst = AppendFieldKey(dst, FieldKey{Tag: tag, Type: WireBytes})
	dst = AppendVarint(dst, uint64(total))
	for _, v := range vals {
		dst = codec.EncodeValue(v, dst)
	}
	return dst
}

// SerializedLenRepeatedPacked returns the size SerializeRepeatedPacked
// would produce.
func SerializedLenRepeatedPacked[T comparable](tag uint32, vals []T, codec PrimitiveCodec[T]) int {
	if len(vals) == 0 {
		return 0
	}
	total := 0
	for _, v := range vals {
		total += codec.ValueLen(v)
	}
	return SizeFieldKey(FieldKey{Tag: tag, Type: WireBytes}) + SizeVarint(uint64(total)) + total
}

// SerializeRepeatedUnpacked appends one key+value pair per element, for
// field types that cannot be packed (strings, bytes, messages).
func SerializeRepeatedUnpacked[T comparable](dst []byte, tag uint32, vals []T, codec PrimitiveCodec[T]) []byte {
	for _, v := range vals {
		dst = AppendFieldKey(dst, FieldKey{Tag: tag, Type: codec.WireType})
		dst = codec.EncodeValue(v, dst)
	}
	return dst
}

// SerializedLenRepeatedUnpacked returns the size SerializeRepeatedUnpacked
// would produce.
func SerializedLenRepeatedUnpacked[T comparable](tag uint32, vals []T, codec PrimitiveCodec[T]) int {
	n := 0
	keySize := SizeFieldKey(FieldKey{Tag: tag, Type: codec.WireType})
	for _, v := range vals {
		n += keySize + codec.ValueLen(v)
	}
	return n
}

// AppendDecodedRepeated decodes one occurrence of a repeated scalar field
// and appends it to dst. wt is the wire type observed on the incoming key;
// src starts after that key. When wt is WireBytes but the codec's native
// wire type isn't, the occurrence is a packed run and every element in it
// is decoded and appended. This is what lets the decoder accept both
// packed and unpacked encodings for the same field.
func AppendDecodedRepeated[T comparable](dst []T, wt WireType, src []byte, codec PrimitiveCodec[T]) ([]T, int, error) {
	if wt == WireBytes && codec.WireType != WireBytes {
		packed, n := protowire.ConsumeBytes(src)
		if n < 0 {
			return dst, 0, wireConsumeErr(n, "not enough data")
		}
		rest := packed
		for len(rest) > 0 {
			v, vn, err := codec.DecodeValue(rest)
			if err != nil {
				return dst, 0, err
			}
			dst = append(dst, v)
			rest = rest[vn:]
		}
		return dst, n, nil
	}
	v, n, err := codec.DecodeValue(src)
	if err != nil {
		return dst, 0, err
	}
	return append(dst, v), n, nil
}
