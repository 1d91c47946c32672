package dateutils

import (
	"strings"
	"time"
)

// DateLayout is the calendar day layout accepted in query parameters and payloads.
const DateLayout = "2006-01-02"

// ParseDate parses a yyyy-MM-dd string as midnight UTC.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, strings.TrimSpace(value), time.UTC)
}

// ParseDateOrTimestamp accepts either a yyyy-MM-dd day or an RFC 3339 timestamp.
func ParseDateOrTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if len(value) == len(DateLayout) {
		return ParseDate(value)
	}
	return time.Parse(time.RFC3339Nano, value)
}

// StartOfDay returns midnight of the calendar day of t, in t's location.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last microsecond of the calendar day of t, in t's location.
// Postgres timestamps hold microseconds, so a finer bound would round into the next day.
func EndOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 23, 59, 59, int(time.Second-time.Microsecond), t.Location())
}
