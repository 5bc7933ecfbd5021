package codec

import (
	"fmt"
	"time"
)

// Timestamp layouts accepted on the wire, tried in order. The service
// normally emits RFC 3339 with fractional seconds and a zone offset, but
// a few legacy endpoints omit one or the other.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
}

// ParseDateTime parses an ISO-8601 timestamp, preserving the zone offset
// carried by the input. Inputs without an offset are read as UTC.
func ParseDateTime(s string) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}

// FormatDateTime renders a timestamp as RFC 3339 with the value's own
// zone offset.
func FormatDateTime(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}
