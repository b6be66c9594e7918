package wire_test

import (
	"bytes"
	"testing"

	"github.com/wireframe-rpc/wireframe/internal/testpb"
	"github.com/wireframe-rpc/wireframe/wire"
)

func TestHelloRequestWireBytes(t *testing.T) {
	req := &testpb.HelloRequest{Name: "world"}
	got := req.WriteTo(nil)
	want := []byte{0x0a, 0x05, 'w', 'o', 'r', 'l', 'd'}
	if !bytes.Equal(got, want) {
		t.Fatalf("WriteTo = % x, want % x", got, want)
	}
	if req.EncodedLen() != len(want) {
		t.Fatalf("EncodedLen = %d, want %d", req.EncodedLen(), len(want))
	}
}

func TestDefaultSuppression(t *testing.T) {
	req := &testpb.HelloRequest{Name: ""}
	got := req.WriteTo(nil)
	if len(got) != 0 {
		t.Fatalf("expected zero bytes for suppressed default, got % x", got)
	}
	decoded := &testpb.HelloRequest{}
	if err := decoded.UnmarshalFrom(got); err != nil {
		t.Fatalf("UnmarshalFrom: %v", err)
	}
	if decoded.Name != "" {
		t.Fatalf("decoded.Name = %q, want empty", decoded.Name)
	}
}

func TestMessageRoundTrip(t *testing.T) {
	doc := &testpb.Document{
		Type: testpb.DocumentTypeInvoice,
		Tags: []string{"a", "b"},
		Page: []int32{1, 2, 3},
		Meta: map[string]string{"author": "ada"},
	}
	enc := doc.WriteTo(nil)
	if len(enc) != doc.EncodedLen() {
		t.Fatalf("EncodedLen = %d, want %d", doc.EncodedLen(), len(enc))
	}
	got := &testpb.Document{}
	if err := got.UnmarshalFrom(enc); err != nil {
		t.Fatalf("UnmarshalFrom: %v", err)
	}
	if got.Type != doc.Type {
		t.Errorf("Type = %v, want %v", got.Type, doc.Type)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "a" || got.Tags[1] != "b" {
		t.Errorf("Tags = %v", got.Tags)
	}
	if len(got.Page) != 3 {
		t.Errorf("Page = %v", got.Page)
	}
	if got.Meta["author"] != "ada" {
		t.Errorf("Meta = %v", got.Meta)
	}
}

func TestForwardCompatibilityUnknownField(t *testing.T) {
	// Hand-encode a message with an extra unknown tag (99) alongside the
	// known "message" field (tag 1), mirroring spec.md scenario 4.
	var raw []byte
	raw = wire.StringCodec.Serialize(raw, 1, "ok", wire.OnDefault[string]())
	raw = wire.StringCodec.Serialize(raw, 99, "ignored", wire.Never[string]())

	got := &testpb.HelloReply{}
	if err := got.UnmarshalFrom(raw); err != nil {
		t.Fatalf("UnmarshalFrom: %v", err)
	}
	if got.Message != "ok" {
		t.Fatalf("Message = %q, want %q", got.Message, "ok")
	}

	sent := &testpb.HelloReply{Message: "ok"}
	if !bytes.Equal(sent.WriteTo(nil), mustRoundTrip(t, got)) {
		t.Fatalf("decoded message does not match the sender-omitted encoding")
	}
}

func mustRoundTrip(t *testing.T, m *testpb.HelloReply) []byte {
	t.Helper()
	return m.WriteTo(nil)
}

func TestPackedUnpackedInterop(t *testing.T) {
	packed := wire.SerializeRepeatedPacked(nil, 3, []int32{7, 8, 9}, wire.Int32Codec)
	unpacked := wire.SerializeRepeatedUnpacked(nil, 3, []int32{7, 8, 9}, wire.Int32Codec)

	for _, enc := range [][]byte{packed, unpacked} {
		doc := &testpb.Document{}
		if err := doc.UnmarshalFrom(enc); err != nil {
			t.Fatalf("UnmarshalFrom: %v", err)
		}
		if len(doc.Page) != 3 || doc.Page[0] != 7 || doc.Page[1] != 8 || doc.Page[2] != 9 {
			t.Fatalf("Page = %v", doc.Page)
		}
	}
}

func TestEnumCoercion(t *testing.T) {
	var raw []byte
	raw = wire.Int32Codec.Serialize(raw, 1, 99, wire.Never[int32]())

	doc := &testpb.Document{}
	if err := doc.UnmarshalFrom(raw); err != nil {
		t.Fatalf("UnmarshalFrom: %v", err)
	}
	if doc.Type != testpb.DocumentTypeUnspecified {
		t.Fatalf("Type = %v, want default %v", doc.Type, testpb.DocumentTypeUnspecified)
	}
}

func TestUnderlengthLengthDelimitedFails(t *testing.T) {
	raw := []byte{0x0a, 0x05, 'w', 'o'} // claims length 5, only 2 bytes follow
	got := &testpb.HelloRequest{}
	if err := got.UnmarshalFrom(raw); err == nil {
		t.Fatal("expected decode error for truncated length-delimited field")
	}
}

func TestInvalidUTF8Fails(t *testing.T) {
	var raw []byte
	raw = wire.AppendFieldKey(raw, wire.FieldKey{Tag: 1, Type: wire.WireBytes})
	raw = wire.AppendVarint(raw, 1)
	raw = append(raw, 0xff)
	got := &testpb.HelloRequest{}
	if err := got.UnmarshalFrom(raw); err == nil {
		t.Fatal("expected decode error for invalid UTF-8")
	}
}
