package timeout_test

import (
	"testing"
	"time"

	"github.com/wireframe-rpc/wireframe/timeout"
)

func TestEncode30Seconds(t *testing.T) {
	// Literal scenario from spec.md §8.5: a 30s deadline encodes as
	// "30000000u" (microseconds is the finest unit whose value still fits
	// in 8 digits: 30_000_000 < 10^8, while nanoseconds (30_000_000_000)
	// does not).
	got, err := timeout.Encode(30 * time.Second)
	if err != nil {
		t.Fatal(err)
	}
	if got != "30000000u" {
		t.Fatalf("Encode(30s) = %q, want %q", got, "30000000u")
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []time.Duration{
		time.Nanosecond,
		100 * time.Microsecond,
		250 * time.Millisecond,
		5 * time.Second,
		90 * time.Minute,
		10 * time.Hour,
	}
	for _, d := range cases {
		s, err := timeout.Encode(d)
		if err != nil {
			t.Fatalf("Encode(%v): %v", d, err)
		}
		got, err := timeout.Decode(s)
		if err != nil {
			t.Fatalf("Decode(%q): %v", s, err)
		}
		if got < d || got-d >= time.Millisecond {
			t.Fatalf("round trip %v -> %q -> %v drifted more than a millisecond", d, s, got)
		}
	}
}

func TestDecodeMalformed(t *testing.T) {
	for _, s := range []string{"", "m", "123456789m", "12x", "-5S"} {
		if _, err := timeout.Decode(s); err == nil {
			t.Fatalf("Decode(%q): expected error", s)
		}
	}
}

func TestDecodeSaturatesOnOverflow(t *testing.T) {
	got, err := timeout.Decode("99999999H")
	if err != nil {
		t.Fatal(err)
	}
	if got != time.Duration(1<<63-1) {
		t.Fatalf("Decode(99999999H) = %v, want saturated max duration", got)
	}
}
