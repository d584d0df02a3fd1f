package utils

import (
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// dateLayouts are tried in order when reading dates from uploads and rows.
var dateLayouts = []string{
	DateLayout,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05-07",
	time.RFC1123,
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"02-Jan-2006",
	"Jan 2, 2006",
}

// ParseFlexibleDate accepts the common layouts seen in uploaded files and
// returns the calendar day at UTC midnight.
func ParseFlexibleDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return TruncateDay(t), true
		}
	}

	return time.Time{}, false
}

// TruncateDay drops the clock part, keeping the calendar day as seen in t's location.
func TruncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func FirstDayOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func LastDayOfMonth(t time.Time) int {
	return FirstDayOfMonth(t).AddDate(0, 1, -1).Day()
}
