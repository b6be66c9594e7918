package wire_test

import (
	"testing"

	"github.com/wireframe-rpc/wireframe/wire"
)

func TestVarintRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 2, 127, 128, 300, 1 << 20, 1<<32 - 1, 1 << 40, 1<<64 - 1}
	for _, v := range values {
		enc := wire.AppendVarint(nil, v)
		if len(enc) < 1 || len(enc) > 10 {
			t.Fatalf("encode(%d) length %d out of [1,10]", v, len(enc))
		}
		if got := wire.EncodedLenVarint(v); got != len(enc) {
			t.Errorf("EncodedLenVarint(%d) = %d, want %d", v, got, len(enc))
		}
		got, n, err := wire.ConsumeVarint(enc)
		if err != nil {
			t.Fatalf("decode(%d): %v", v, err)
		}
		if n != len(enc) {
			t.Errorf("decode(%d) consumed %d bytes, want %d", v, n, len(enc))
		}
		if got != v {
			t.Errorf("decode(encode(%d)) = %d", v, got)
		}
	}
}

func TestConsumeVarintTruncated(t *testing.T) {
	enc := wire.AppendVarint(nil, 1<<40)
	_, _, err := wire.ConsumeVarint(enc[:len(enc)-1])
	if err == nil {
		t.Fatal("expected error decoding truncated varint")
	}
}

func TestConsumeVarintOverflow(t *testing.T) {
	// Ten bytes, all continuation bits set except a final byte whose value
	// would overflow 64 bits.
	overflow := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x02}
	_, _, err := wire.ConsumeVarint(overflow)
	if err == nil {
		t.Fatal("expected overflow error")
	}
}

func TestFieldKeyRoundTrip(t *testing.T) {
	k := wire.FieldKey{Tag: 42, Type: wire.WireBytes}
	enc := wire.AppendFieldKey(nil, k)
	if len(enc) != wire.SizeFieldKey(k) {
		t.Fatalf("SizeFieldKey mismatch: got %d want %d", wire.SizeFieldKey(k), len(enc))
	}
	got, n, err := wire.DecodeFieldKey(enc)
	if err != nil {
		t.Fatalf("DecodeFieldKey: %v", err)
	}
	if n != len(enc) || got != k {
		t.Fatalf("DecodeFieldKey round-trip mismatch: got %+v/%d, want %+v/%d", got, n, k, len(enc))
	}
}

func TestFieldKeyRejectsZeroTag(t *testing.T) {
	// tag 0, wire type varint encodes as a single zero byte.
	_, _, err := wire.DecodeFieldKey([]byte{0x00})
	if err == nil {
		t.Fatal("expected error for field key with tag 0")
	}
}
