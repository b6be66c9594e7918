package wire

import (
	"math"
	"unicode/utf8"

	"google.golang.org/protobuf/encoding/protowire"
)

// PrimitiveCodec is the capability set a primitive type needs to
// participate in field serialization: its wire type, the size and
// encoding of one value, how to decode one value back, and how to
// recognize its zero value. Concrete instances below (BoolCodec,
// Int32Codec, ...) are the only values of this type a caller needs;
// EnumCodec and the repeated/map helpers build on top of it.
type PrimitiveCodec[T comparable] struct {
	WireType    WireType
	ValueLen    func(v T) int
	EncodeValue func(v T, dst []byte) []byte
	DecodeValue func(src []byte) (T, int, error)
	IsDefault   func(v T) bool
}

// Serialize writes the field key and value to dst, honoring sup. It
// returns dst unchanged when the field is suppressed.
func (c PrimitiveCodec[T]) Serialize(dst []byte, tag uint32, v T, sup Suppress[T]) []byte {
	if sup.suppress(v, c.IsDefault) {
		return dst
	}
	dst = AppendFieldKey(dst, FieldKey{Tag: tag, Type: c.WireType})
	return c.EncodeValue(v, dst)
}

// SerializedLen returns the number of bytes Serialize would append.
func (c PrimitiveCodec[T]) SerializedLen(tag uint32, v T, sup Suppress[T]) int {
	if sup.suppress(v, c.IsDefault) {
		return 0
	}
	return SizeFieldKey(FieldKey{Tag: tag, Type: c.WireType}) + c.ValueLen(v)
}

// Deserialize decodes one value from the front of src (the field key must
// already have been consumed by the caller).
func (c PrimitiveCodec[T]) Deserialize(src []byte) (T, int, error) {
	return c.DecodeValue(src)
}

var BoolCodec = PrimitiveCodec[bool]{
	WireType: WireVarint,
	ValueLen: func(v bool) int { return SizeVarint(boolToUint64(v)) },
	EncodeValue: func(v bool, dst []byte) []byte {
		return AppendVarint(dst, boolToUint64(v))
	},
	DecodeValue: func(src []byte) (bool, int, error) {
		v, n, err := ConsumeVarint(src)
		return v != 0, n, err
	},
	IsDefault: func(v bool) bool { return !v },
}

func boolToUint64(v bool) uint64 {
	if v {
		return 1
	}
	return 0
}

var Int32Codec = PrimitiveCodec[int32]{
	WireType:    WireVarint,
	ValueLen:    func(v int32) int { return SizeVarint(uint64(int64(v))) },
	EncodeValue: func(v int32, dst []byte) []byte { return AppendVarint(dst, uint64(int64(v))) },
	DecodeValue: func(src []byte) (int32, int, error) {
		v, n, err := ConsumeVarint(src)
		return int32(v), n, err
	},
	IsDefault: func(v int32) bool { return v == 0 },
}

var Int64Codec = PrimitiveCodec[int64]{
	WireType:    WireVarint,
	ValueLen:    func(v int64) int { return SizeVarint(uint64(v)) },
	EncodeValue: func(v int64, dst []byte) []byte { return AppendVarint(dst, uint64(v)) },
	DecodeValue: func(src []byte) (int64, int, error) {
		v, n, err := ConsumeVarint(src)
		return int64(v), n, err
	},
	IsDefault: func(v int64) bool { return v == 0 },
}

var Uint32Codec = PrimitiveCodec[uint32]{
	WireType:    WireVarint,
	ValueLen:    func(v uint32) int { return SizeVarint(uint64(v)) },
	EncodeValue: func(v uint32, dst []byte) []byte { return AppendVarint(dst, uint64(v)) },
	DecodeValue: func(src []byte) (uint32, int, error) {
		v, n, err := ConsumeVarint(src)
		return uint32(v), n, err
	},
	IsDefault: func(v uint32) bool { return v == 0 },
}

var Uint64Codec = PrimitiveCodec[uint64]{
	WireType:    WireVarint,
	ValueLen:    func(v uint64) int { return SizeVarint(v) },
	EncodeValue: func(v uint64, dst []byte) []byte { return AppendVarint(dst, v) },
	DecodeValue: func(src []byte) (uint64, int, error) {
		return ConsumeVarint(src)
	},
	IsDefault: func(v uint64) bool { return v == 0 },
}

var Float32Codec = PrimitiveCodec[float32]{
	WireType: WireFixed32,
	ValueLen: func(float32) int { return 4 },
	EncodeValue: func(v float32, dst []byte) []byte {
		return appendFixed32(dst, math.Float32bits(v))
	},
	DecodeValue: func(src []byte) (float32, int, error) {
		v, n, err := consumeFixed32(src)
		return math.Float32frombits(v), n, err
	},
	IsDefault: func(v float32) bool { return v == 0 },
}

var Float64Codec = PrimitiveCodec[float64]{
	WireType: WireFixed64,
	ValueLen: func(float64) int { return 8 },
	EncodeValue: func(v float64, dst []byte) []byte {
		return appendFixed64(dst, math.Float64bits(v))
	},
	DecodeValue: func(src []byte) (float64, int, error) {
		v, n, err := consumeFixed64(src)
		return math.Float64frombits(v), n, err
	},
	IsDefault: func(v float64) bool { return v == 0 },
}

var StringCodec = PrimitiveCodec[string]{
	WireType: WireBytes,
	ValueLen: func(v string) int { return protowire.SizeBytes(len(v)) },
	EncodeValue: func(v string, dst []byte) []byte {
		return protowire.AppendString(dst, v)
	},
	DecodeValue: func(src []byte) (string, int, error) {
		b, n := protowire.ConsumeBytes(src)
		if n < 0 {
			return "", 0, wireConsumeErr(n, "not enough data")
		}
		if !utf8.Valid(b) {
			return "", 0, NewDecodeError("not UTF-8")
		}
		return string(b), n, nil
	},
	IsDefault: func(v string) bool { return v == "" },
}

// []byte is not a comparable type, so bytes fields are served by the
// free functions below instead of a PrimitiveCodec[[]byte] instance.

// AppendBytesField appends a length-delimited bytes field, suppressing it
// when empty and policy is SuppressDefault.
func AppendBytesField(dst []byte, tag uint32, v []byte, policy SuppressPolicy) []byte {
	if policy == SuppressDefault && len(v) == 0 {
		return dst
	}
	dst = AppendFieldKey(dst, FieldKey{Tag: tag, Type: WireBytes})
	return protowire.AppendBytes(dst, v)
}

// SizeBytesField returns the size AppendBytesField would produce.
func SizeBytesField(tag uint32, v []byte, policy SuppressPolicy) int {
	if policy == SuppressDefault && len(v) == 0 {
		return 0
	}
	return SizeFieldKey(FieldKey{Tag: tag, Type: WireBytes}) + protowire.SizeBytes(len(v))
}

// DecodeBytesField decodes a length-delimited bytes value (the field key
// must already be consumed). The returned slice aliases src.
func DecodeBytesField(src []byte) ([]byte, int, error) {
	b, n := protowire.ConsumeBytes(src)
	if n < 0 {
		return nil, 0, wireConsumeErr(n, "not enough data")
	}
	return b, n, nil
}

// NewEnumCodec builds a PrimitiveCodec for an enum type whose underlying
// representation is int32. Decoding a numeric value that valid rejects
// coerces to def, per proto3 enum semantics.
func NewEnumCodec[T ~int32](def T, valid func(T) bool) PrimitiveCodec[T] {
	return PrimitiveCodec[T]{
		WireType: WireVarint,
		ValueLen: func(v T) int { return SizeVarint(uint64(int64(int32(v)))) },
		EncodeValue: func(v T, dst []byte) []byte {
			return AppendVarint(dst, uint64(int64(int32(v))))
		},
		DecodeValue: func(src []byte) (T, int, error) {
			raw, n, err := ConsumeVarint(src)
			if err != nil {
				return def, 0, err
			}
			v := T(int32(raw))
			if !valid(v) {
				v = def
			}
			return v, n, nil
		},
		IsDefault: func(v T) bool { return v == def },
	}
}
