package processor

import (
	"fmt"
	"strings"
	"time"
)

// nowFunc is swapped in tests.
var nowFunc = time.Now

// Layouts tried for timestamps without an explicit offset. These are parsed
// in local time so the comparison against "now" stays naive on both sides.
var naiveLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FormatRelative renders an ISO-8601 timestamp as a human-relative string
// ("3 hours ago"). Unparseable input yields "recently", never an error.
func FormatRelative(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "recently"
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return FormatRelativeTime(t)
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return FormatRelativeTime(t)
		}
	}
	return "recently"
}

// FormatRelativeTime buckets the elapsed time since t into minutes, hours or
// days, with integer floor in each bucket.
func FormatRelativeTime(t time.Time) string {
	diff := nowFunc().Sub(t)

	hours := diff.Hours()
	switch {
	case hours < 1:
		return fmt.Sprintf("%d minutes ago", int(diff.Minutes()))
	case hours < 24:
		return fmt.Sprintf("%d hours ago", int(hours))
	default:
		return fmt.Sprintf("%d days ago", int(hours/24))
	}
}
