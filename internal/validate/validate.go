package validate

import (
	"strconv"
	"strings"
	"time"
)

// ID parses a positive integer identifier from a route param.
func ID(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// Name trims a display name and enforces a reasonable max length.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 100 {
		return "", false
	}
	return s, true
}

// Status normalizes a catalog status to the two allowed values.
func Status(s string) (string, bool) {
	switch strings.TrimSpace(s) {
	case "Active":
		return "Active", true
	case "Inactive":
		return "Inactive", true
	}
	return "", false
}

// Date parses a report bound as either a calendar date (start of day,
// local) or a full RFC 3339 instant. Empty input means "no bound".
func Date(s string) (*time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, true
	}
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return &t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, true
	}
	return nil, false
}

// EndDate is Date, but a bare calendar date means end of that day so the
// bound stays inclusive.
func EndDate(s string) (*time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, true
	}
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		return &t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, true
	}
	return nil, false
}
