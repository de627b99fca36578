package domain

import (
	"strings"
	"time"
)

// Timestamped is any record that may carry a creation time.
// ok is false when the time is missing or could not be parsed.
type Timestamped interface {
	CreatedAtTime() (t time.Time, ok bool)
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses the timestamp formats callers send us.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// RawRecord is a loosely shaped record whose creation time arrives as text.
type RawRecord struct {
	CreatedAt string         `json:"created_at"`
	Fields    map[string]any `json:"fields,omitempty"`
}

func (r RawRecord) CreatedAtTime() (time.Time, bool) {
	return ParseTimestamp(r.CreatedAt)
}
