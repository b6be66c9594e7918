package wire

import "google.golang.org/protobuf/encoding/protowire"

// MapEntryCodec describes a map<K, V> field as spec.md §4.2/§4.3 define
// it: a repeated synthetic message with fields {1: key, 2: value}, each
// under default suppression. V's encode/size/decode are supplied as
// closures so the same type works for scalar, enum, and message values.
type MapEntryCodec[K comparable, V any] struct {
	KeyCodec    PrimitiveCodec[K]
	EncodeValue func(dst []byte, tag uint32, v V) []byte
	ValueLen    func(tag uint32, v V) int
	DecodeValue func(src []byte, wt WireType) (V, int, error)
}

func (m MapEntryCodec[K, V]) entryLen(k K, v V) int {
	return m.KeyCodec.SerializedLen(1, k, OnDefault[K]()) + m.ValueLen(2, v)
}

// SerializeEntry appends one map entry as a length-delimited submessage.
func (m MapEntryCodec[K, V]) SerializeEntry(dst []byte, tag uint32, k K, v V) []byte {
	entryLen := m.entryLen(k, v)
	dst = AppendFieldKey(dst, FieldKey{Tag: tag, Type: WireBytes})
	dst = AppendVarint(dst, uint64(entryLen))
	dst = m.KeyCodec.Serialize(dst, 1, k, OnDefault[K]())
	dst = m.EncodeValue(dst, 2, v)
	return dst
}

// SerializedLenEntry returns the size SerializeEntry would produce.
func (m MapEntryCodec[K, V]) SerializedLenEntry(tag uint32, k K, v V) int {
	l := m.entryLen(k, v)
	return SizeFieldKey(FieldKey{Tag: tag, Type: WireBytes}) + SizeVarint(uint64(l)) + l
}

// DecodeEntry decodes one map entry submessage (the field key must already
// be consumed), tolerating entries whose key or value field is absent
// (they decode to K/V's zero value, per default suppression).
func (m MapEntryCodec[K, V]) DecodeEntry(src []byte) (K, V, int, error) {
	var key K
	var val V
	b, n := protowire.ConsumeBytes(src)
	if n < 0 {
		return key, val, 0, wireConsumeErr(n, "not enough data")
	}
	rest := b
	for len(rest) > 0 {
		fk, kn, err := DecodeFieldKey(rest)
		if err != nil {
			return key, val, 0, err
		}
		rest = rest[kn:]
		switch fk.Tag {
		case 1:
			v, vn, err := m.KeyCodec.Deserialize(rest)
			if err != nil {
				return key, val, 0, err
			}
			key = v
			rest = rest[vn:]
		case 2:
			v, vn, err := m.DecodeValue(rest, fk.Type)
			if err != nil {
				return key, val, 0, err
			}
			val = v
			rest = rest[vn:]
		default:
			sn, err := SkipField(fk, rest)
			if err != nil {
				return key, val, 0, err
			}
			rest = rest[sn:]
		}
	}
	return key, val, n, nil
}

// SerializeMap appends every entry of m as a repeated field. Iteration
// order is unspecified, per spec.md's map-field note.
func SerializeMap[K comparable, V any](dst []byte, tag uint32, m map[K]V, ec MapEntryCodec[K, V]) []byte {
	for k, v := range m {
		dst = ec.SerializeEntry(dst, tag, k, v)
	}
	return dst
}

// SerializedLenMap returns the size SerializeMap would produce.
func SerializedLenMap[K comparable, V any](tag uint32, m map[K]V, ec MapEntryCodec[K, V]) int {
	n := 0
	for k, v := range m {
		n += ec.SerializedLenEntry(tag, k, v)
	}
	return n
}

// ScalarMapValue adapts a PrimitiveCodec into the closures MapEntryCodec
// needs for a scalar- or enum-typed map value.
func ScalarMapValue[V comparable](codec PrimitiveCodec[V]) (
	encode func(dst []byte, tag uint32, v V) []byte,
	size func(tag uint32, v V) int,
	decode func(src []byte, wt WireType) (V, int, error),
) {
	encode = func(dst []byte, tag uint32, v V) []byte {
		return codec.Serialize(dst, tag, v, OnDefault[V]())
	}
	size = func(tag uint32, v V) int {
		return codec.SerializedLen(tag, v, OnDefault[V]())
	}
	decode = func(src []byte, _ WireType) (V, int, error) {
		return codec.Deserialize(src)
	}
	return
}

// MessageMapValue adapts the Submessage constraint into the closures
// MapEntryCodec needs for a message-typed map value.
func MessageMapValue[T any, PT Submessage[T]]() (
	encode func(dst []byte, tag uint32, v PT) []byte,
	size func(tag uint32, v PT) int,
	decode func(src []byte, wt WireType) (PT, int, error),
) {
	encode = func(dst []byte, tag uint32, v PT) []byte {
		return SerializeMessage[T, PT](dst, tag, v)
	}
	size = func(tag uint32, v PT) int {
		return SerializedLenMessage[T, PT](tag, v)
	}
	decode = func(src []byte, _ WireType) (PT, int, error) {
		return DeserializeMessage[T, PT](src)
	}
	return
}
