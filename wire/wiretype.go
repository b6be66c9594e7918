package wire

import (
	"math/bits"

	"google.golang.org/protobuf/encoding/protowire"
)

// WireType is the physical encoding of a protobuf field, carried in the
// low 3 bits of a field key.
type WireType int

const (
	WireVarint     WireType = 0
	WireFixed64    WireType = 1
	WireBytes      WireType = 2
	WireStartGroup WireType = 3
	WireEndGroup   WireType = 4
	WireFixed32    WireType = 5
)

// FieldKey pairs a field's tag with its wire type, as it appears on the
// wire: a single varint `tag<<3 | wire_type`.
type FieldKey struct {
	Tag  uint32
	Type WireType
}

// AppendFieldKey appends the encoded key to dst.
func AppendFieldKey(dst []byte, k FieldKey) []byte {
	return protowire.AppendTag(dst, protowire.Number(k.Tag), protowire.Type(k.Type))
}

// DecodeFieldKey reads one field key from the front of src, returning the
// key and the number of bytes consumed.
func DecodeFieldKey(src []byte) (FieldKey, int, error) {
	num, typ, n := protowire.ConsumeTag(src)
	if n < 0 {
		return FieldKey{}, 0, wireConsumeErr(n, "invalid field key")
	}
	if num < 1 {
		return FieldKey{}, 0, NewDecodeError("field key tag must be >= 1")
	}
	return FieldKey{Tag: uint32(num), Type: WireType(typ)}, n, nil
}

// SizeFieldKey returns the encoded size of k.
func SizeFieldKey(k FieldKey) int {
	return protowire.SizeTag(protowire.Number(k.Tag))
}

// EncodedLenVarint returns the number of bytes needed to LEB128-encode v,
// in [1, 10].
func EncodedLenVarint(v uint64) int {
	return int(((uint64(bits.LeadingZeros64(v|1)) ^ 63) * 9 + 73) / 64)
}

// SkipField consumes one field's value of the given wire type from the
// front of src, without interpreting it, returning the number of bytes
// consumed. Used when a decoded tag does not match any known field.
func SkipField(k FieldKey, src []byte) (int, error) {
	n := protowire.ConsumeFieldValue(protowire.Number(k.Tag), protowire.Type(k.Type), src)
	if n < 0 {
		return 0, wireConsumeErr(n, "not enough data")
	}
	return n, nil
}

func wireConsumeErr(n int, fallback string) error {
	if err := protowire.ParseError(n); err != nil {
		return NewDecodeError(err.Error())
	}
	return NewDecodeError(fallback)
}
