package wire

import "google.golang.org/protobuf/encoding/protowire"

// AppendVarint appends v as LEB128 to dst.
func AppendVarint(dst []byte, v uint64) []byte {
	return protowire.AppendVarint(dst, v)
}

// ConsumeVarint reads a LEB128 varint from the front of src. It rejects
// values that would overflow 64 bits (protowire enforces the same 10-byte,
// continuation-bit rule the spec requires).
func ConsumeVarint(src []byte) (uint64, int, error) {
	v, n := protowire.ConsumeVarint(src)
	if n < 0 {
		return 0, 0, wireConsumeErr(n, "invalid varint")
	}
	return v, n, nil
}

// SizeVarint returns the LEB128-encoded length of v.
func SizeVarint(v uint64) int {
	return protowire.SizeVarint(v)
}

func appendFixed32(dst []byte, v uint32) []byte {
	return protowire.AppendFixed32(dst, v)
}

func consumeFixed32(src []byte) (uint32, int, error) {
	v, n := protowire.ConsumeFixed32(src)
	if n < 0 {
		return 0, 0, wireConsumeErr(n, "not enough data")
	}
	return v, n, nil
}

func appendFixed64(dst []byte, v uint64) []byte {
	return protowire.AppendFixed64(dst, v)
}

func consumeFixed64(src []byte) (uint64, int, error) {
	v, n := protowire.ConsumeFixed64(src)
	if n < 0 {
		return 0, 0, wireConsumeErr(n, "not enough data")
	}
	return v, n, nil
}
