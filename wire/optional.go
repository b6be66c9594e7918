package wire

// SerializeOptional appends the field iff v is non-nil, always emitting it
// regardless of whether *v is T's zero value — this is what lets a proto3
// `optional` scalar distinguish "absent" from "present and zero," which
// SuppressDefault alone cannot do (SuppressDefault omits a present zero
// value too).
func SerializeOptional[T comparable](dst []byte, tag uint32, v *T, codec PrimitiveCodec[T]) []byte {
	if v == nil {
		return dst
	}
	return codec.Serialize(dst, tag, *v, Never[T]())
}

// SerializedLenOptional returns the size SerializeOptional would produce.
func SerializedLenOptional[T comparable](tag uint32, v *T, codec PrimitiveCodec[T]) int {
	if v == nil {
		return 0
	}
	return codec.SerializedLen(tag, *v, Never[T]())
}

// DeserializeOptional decodes one occurrence of an optional scalar field
// (the field key must already be consumed) and always returns a non-nil
// pointer: presence on the wire means presence in Go, per spec.md's
// "decode always wraps in Some" rule.
func DeserializeOptional[T comparable](src []byte, codec PrimitiveCodec[T]) (*T, int, error) {
	v, n, err := codec.Deserialize(src)
	if err != nil {
		return nil, 0, err
	}
	return &v, n, nil
}
