package utils

import "time"

// ParseRFC3339 parses a time string in RFC3339 format
func ParseRFC3339(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// FormatRFC3339 renders a time the way the upstream store stores instants
func FormatRFC3339(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
