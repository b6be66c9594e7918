package wire_test

import (
	"testing"

	"github.com/wireframe-rpc/wireframe/internal/testpb"
)

func TestOptionalDistinguishesAbsentFromZero(t *testing.T) {
	absent := &testpb.Note{}
	if len(absent.WriteTo(nil)) != 0 {
		t.Fatalf("absent optional should encode to zero bytes, got % x", absent.WriteTo(nil))
	}

	zero := int32(0)
	present := &testpb.Note{Priority: &zero}
	enc := present.WriteTo(nil)
	if len(enc) == 0 {
		t.Fatal("present-but-zero optional should still be encoded")
	}

	got := &testpb.Note{}
	if err := got.UnmarshalFrom(enc); err != nil {
		t.Fatalf("UnmarshalFrom: %v", err)
	}
	if got.Priority == nil {
		t.Fatal("decoded Priority should be non-nil (Some(0)), got nil")
	}
	if *got.Priority != 0 {
		t.Fatalf("Priority = %d, want 0", *got.Priority)
	}

	gotAbsent := &testpb.Note{}
	if err := gotAbsent.UnmarshalFrom(absent.WriteTo(nil)); err != nil {
		t.Fatalf("UnmarshalFrom: %v", err)
	}
	if gotAbsent.Priority != nil {
		t.Fatalf("Priority = %v, want nil", gotAbsent.Priority)
	}
}
