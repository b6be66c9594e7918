// Package timeout formats and parses the gRPC-timeout header value:
// a decimal integer of at most 8 digits, followed by a unit suffix from
// {H, M, S, m, u, n}, per spec.md §4.5/§4.6.
package timeout

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

const maxDigitsValue = 1e8 // values must have at most 8 digits: < 100,000,000

type unit struct {
	suffix byte
	dur    time.Duration
}

// units are tried finest first. The first unit whose ceiling-divided value
// has at most 8 digits is the one used, per spec.md's "most precise unit
// whose numeric value fits in 8 digits" rule.
var units = []unit{
	{'n', time.Nanosecond},
	{'u', time.Microsecond},
	{'m', time.Millisecond},
	{'S', time.Second},
	{'M', time.Minute},
	{'H', time.Hour},
}

// Encode formats d as a gRPC-timeout header value.
func Encode(d time.Duration) (string, error) {
	if d <= 0 {
		return "0n", nil
	}
	for _, u := range units {
		v := ceilDiv(d, u.dur)
		if v < maxDigitsValue {
			return strconv.FormatInt(v, 10) + string(u.suffix), nil
		}
	}
	return "", fmt.Errorf("wireframe/timeout: %v exceeds the largest encodable timeout", d)
}

func ceilDiv(d, unit time.Duration) int64 {
	q := d / unit
	if d%unit != 0 {
		q++
	}
	return int64(q)
}

var unitMillis = map[byte]float64{
	'H': 3_600_000,
	'M': 60_000,
	'S': 1_000,
	'm': 1,
	'u': 1.0 / 1_000,
	'n': 1.0 / 1_000_000,
}

// Decode parses a gRPC-timeout header value back into a time.Duration,
// saturating to the maximum representable duration on overflow. Malformed
// input (no unit, more than 8 digits, non-digit characters, unknown unit)
// is reported as an error; the caller maps it to InvalidArgument.
func Decode(s string) (time.Duration, error) {
	if len(s) < 2 {
		return 0, fmt.Errorf("wireframe/timeout: malformed grpc-timeout %q", s)
	}
	digits, suffix := s[:len(s)-1], s[len(s)-1]
	if len(digits) == 0 || len(digits) > 8 {
		return 0, fmt.Errorf("wireframe/timeout: malformed grpc-timeout %q", s)
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, fmt.Errorf("wireframe/timeout: malformed grpc-timeout %q", s)
		}
	}
	millisPerUnit, ok := unitMillis[suffix]
	if !ok {
		return 0, fmt.Errorf("wireframe/timeout: unknown grpc-timeout unit %q", string(suffix))
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("wireframe/timeout: malformed grpc-timeout %q: %w", s, err)
	}
	millis := float64(n) * millisPerUnit
	const maxMillis = float64(time.Duration(1<<63-1) / time.Millisecond)
	if millis > maxMillis {
		return time.Duration(1<<63 - 1), nil
	}
	return time.Duration(math.Round(millis * float64(time.Millisecond))), nil
}
