package usecase

import (
	"strings"
	"time"
)

var deadlineLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

const dateOnly = "2006-01-02"

// parseDeadline accepts RFC 3339 timestamps, naive timestamps (read as UTC)
// and bare dates. A bare date means the end of that day in UTC.
func parseDeadline(s string) (*time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, true
	}
	if d, err := time.Parse(dateOnly, s); err == nil {
		end := d.Add(24*time.Hour - time.Nanosecond)
		return &end, true
	}
	for _, layout := range deadlineLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t, true
		}
	}
	return nil, false
}
