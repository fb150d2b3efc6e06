package model

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// maxDelayMilliseconds is the largest millisecond count that still fits
// in a time.Duration.
const maxDelayMilliseconds = math.MaxInt64 / int64(time.Millisecond)

// Delay is the result of parsing the "milliseconds" input.
// A Delay is either valid, carrying a millisecond count, or invalid
// (not a number). Callers must check Valid before using Milliseconds.
type Delay struct {
	// Raw is the input exactly as it was received.
	Raw string

	// Milliseconds is the parsed value. It is zero when Valid is false.
	// Negative values are allowed and mean "do not wait".
	Milliseconds int64

	// Valid reports whether Raw started with a base-10 integer.
	Valid bool
}

// ParseDelay parses s as a base-10 integer using the leading-prefix rule:
// surrounding whitespace is skipped, an optional sign is accepted, and the
// longest run of ASCII digits that follows is consumed. Anything after the
// digits is ignored, so "500ms" parses as 500.
//
// The result is not a number when no digit follows the optional sign.
// Magnitudes above maxDelayMilliseconds (about 292 years) are also not a
// number, even when they fit in an int64: this is a deliberate limit so that
// Duration never overflows.
func ParseDelay(s string) Delay {
	d := Delay{Raw: s}

	trimmed := strings.TrimSpace(s)
	end := 0
	if end < len(trimmed) && (trimmed[end] == '+' || trimmed[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(trimmed) && trimmed[end] >= '0' && trimmed[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return d
	}

	n, err := strconv.ParseInt(trimmed[:end], 10, 64)
	if err != nil {
		return d
	}
	if n > maxDelayMilliseconds || n < -maxDelayMilliseconds {
		return d
	}

	d.Milliseconds = n
	d.Valid = true
	return d
}

// Duration returns the delay as a time.Duration.
// Invalid and non-positive delays return zero.
func (d Delay) Duration() time.Duration {
	if !d.Valid || d.Milliseconds <= 0 {
		return 0
	}
	return time.Duration(d.Milliseconds) * time.Millisecond
}
