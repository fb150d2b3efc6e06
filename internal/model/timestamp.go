package model

import "time"

// TimestampLayout renders a time of day followed by the UTC offset and zone
// abbreviation, e.g. "15:04:05 GMT+0900 (JST)".
const TimestampLayout = "15:04:05 GMT-0700 (MST)"

// Timestamp is a human-readable wall-clock reading.
type Timestamp string

// NewTimestamp formats t with TimestampLayout.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp(t.Format(TimestampLayout))
}

// String returns the timestamp text.
func (ts Timestamp) String() string {
	return string(ts)
}
