// Package timeutil provides time formatting utilities.
//
// Platform APIs report creation times in different shapes: Bitbucket Server
// uses epoch milliseconds, GitHub and GitLab use ISO-8601 strings. Every shape
// is rendered with [FormatTimestamp] into one report layout.
package timeutil

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const (
	// Layout is the report timestamp layout (UTC).
	Layout = "2006-01-02 15:04:05"

	// UnknownDate is returned when a timestamp cannot be interpreted.
	UnknownDate = "Unknown Date"
)

// isoLayouts are tried in order when parsing string timestamps.
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05",
}

// FormatTimestamp converts a raw platform timestamp into the report layout.
//
// Accepted inputs:
//   - epoch milliseconds as int, int32, int64 or an integral json.Number
//   - ISO-8601 strings such as "2024-03-01T10:00:00Z"
//   - time.Time and *time.Time
//
// Anything else, including the zero time, yields [UnknownDate]. It never panics.
func FormatTimestamp(raw any) string {
	switch v := raw.(type) {
	case int:
		return FormatEpochMillis(int64(v))
	case int32:
		return FormatEpochMillis(int64(v))
	case int64:
		return FormatEpochMillis(v)
	case json.Number:
		ms, err := v.Int64()
		if err != nil {
			return UnknownDate
		}
		return FormatEpochMillis(ms)
	case string:
		return formatISO(v)
	case time.Time:
		return formatTime(v)
	case *time.Time:
		if v == nil {
			return UnknownDate
		}
		return formatTime(*v)
	default:
		return UnknownDate
	}
}

// FormatEpochMillis renders epoch milliseconds in the report layout (UTC).
func FormatEpochMillis(ms int64) string {
	return time.UnixMilli(ms).UTC().Format(Layout)
}

func formatISO(s string) string {
	s = strings.TrimSpace(s)
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return formatTime(t)
		}
	}
	return UnknownDate
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return UnknownDate
	}
	return t.UTC().Format(Layout)
}

// FormatDuration formats a duration into a human-readable string.
// It rounds to the nearest second and displays in "Xm Ys" or "Ys" format.
//
// Examples:
//   - 1m 23s for durations >= 1 minute
//   - 45s for durations < 1 minute
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	minutes := d / time.Minute
	seconds := (d % time.Minute) / time.Second

	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}
