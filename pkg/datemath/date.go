package datemath

import (
	"fmt"
	"strings"
	"time"
)

// ParseISODate parses an ISO-8601 date or timestamp and returns the calendar
// date it names, as midnight UTC.
func ParseISODate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Civil(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid ISO-8601 date %q", s)
}

// Civil returns the calendar date of t (read in t's own location) as midnight UTC.
func Civil(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of calendar days from `from` to `to`.
// Negative when `to` is earlier.
func DaysBetween(from, to time.Time) int {
	return int(Civil(to).Sub(Civil(from)).Hours() / 24)
}

// FormatISODate formats a calendar date as YYYY-MM-DD.
func FormatISODate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
