package domain

import (
	"strings"
	"time"
)

// displayDateLayout is dd-mm-yyyy.
const displayDateLayout = "02-01-2006"

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// FormatDate converts an ISO-8601 timestamp into a dd-mm-yyyy string.
// The calendar date is always taken in UTC, never the local zone.
func FormatDate(ts string) (string, error) {
	ts = strings.TrimSpace(ts)
	for _, layout := range timestampLayouts {
		// time.Parse reads zone-less layouts as UTC.
		if t, err := time.Parse(layout, ts); err == nil {
			return FormatTime(t), nil
		}
	}
	return "", &InvalidTimestampError{Value: ts}
}

// FormatTime renders the UTC calendar date of t as dd-mm-yyyy.
func FormatTime(t time.Time) string {
	return t.UTC().Format(displayDateLayout)
}
