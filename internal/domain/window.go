package domain

import (
	"errors"
	"fmt"
	"time"
)

// TimeWindow is a named, now-relative range used by the dashboard charts.
type TimeWindow string

const (
	WindowLast3Months TimeWindow = "last3months"
	WindowLast6Months TimeWindow = "last6months"
	WindowLastYear    TimeWindow = "lastYear"
	WindowAllTime     TimeWindow = "allTime"
)

var ErrUnknownTimeWindow = errors.New("unknown time window")

// TimeWindows lists every supported window, used by the cache warmup job.
var TimeWindows = []TimeWindow{WindowLast3Months, WindowLast6Months, WindowLastYear, WindowAllTime}

func ParseTimeWindow(s string) (TimeWindow, error) {
	if s == "" {
		return WindowAllTime, nil
	}

	for _, w := range TimeWindows {
		if string(w) == s {
			return w, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTimeWindow, s)
}

// Start returns the inclusive lower bound of the window anchored at now.
// The second value is false for windows without a bound.
func (w TimeWindow) Start(now time.Time) (time.Time, bool) {
	switch w {
	case WindowLast3Months:
		return time.Date(now.Year(), now.Month()-2, 1, 0, 0, 0, 0, now.Location()), true
	case WindowLast6Months:
		return time.Date(now.Year(), now.Month()-5, 1, 0, 0, 0, 0, now.Location()), true
	case WindowLastYear:
		y := now.AddDate(-1, 0, 0)
		return time.Date(y.Year(), y.Month(), y.Day(), 0, 0, 0, 0, now.Location()), true
	}
	return time.Time{}, false
}

// DateRange is an optional closed interval of calendar days.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

var ErrInvalidDateRange = errors.New("invalid date range")

// ParseDateRange reads YYYY-MM-DD bounds; empty strings leave that side open.
func ParseDateRange(start, end string) (DateRange, error) {
	var r DateRange

	if start != "" {
		t, err := time.Parse(DateLayout, start)
		if err != nil {
			return r, fmt.Errorf("%w: start_date %q", ErrInvalidDateRange, start)
		}
		r.Start = &t
	}

	if end != "" {
		t, err := time.Parse(DateLayout, end)
		if err != nil {
			return r, fmt.Errorf("%w: end_date %q", ErrInvalidDateRange, end)
		}
		r.End = &t
	}

	if r.Start != nil && r.End != nil && r.End.Before(*r.Start) {
		return r, fmt.Errorf("%w: end_date before start_date", ErrInvalidDateRange)
	}

	return r, nil
}

// Bounded reports whether both ends are set.
func (r DateRange) Bounded() bool {
	return r.Start != nil && r.End != nil
}

// Contains reports whether the calendar day of t lies in the range.
func (r DateRange) Contains(t time.Time) bool {
	if r.Start != nil && t.Before(*r.Start) {
		return false
	}
	if r.End != nil && t.After(r.End.AddDate(0, 0, 1).Add(-time.Nanosecond)) {
		return false
	}
	return true
}
