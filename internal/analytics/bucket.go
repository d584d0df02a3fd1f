package analytics

import (
	"time"

	"github.com/vfg2006/social-insights-api/internal/domain"
)

// FrequencyFor picks the bucket size from the requested range: up to 30 days
// is daily, up to 90 days weekly, anything longer or unbounded monthly.
func FrequencyFor(r domain.DateRange) domain.Frequency {
	if !r.Bounded() {
		return domain.FrequencyMonthly
	}

	days := int(r.End.Sub(*r.Start).Hours() / 24)
	switch {
	case days <= 30:
		return domain.FrequencyDaily
	case days <= 90:
		return domain.FrequencyWeekly
	}
	return domain.FrequencyMonthly
}

// BucketAnchor returns the bucket t falls in: the day itself, the Sunday that
// closes its week, or the first day of its month.
func BucketAnchor(t time.Time, f domain.Frequency) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)

	switch f {
	case domain.FrequencyWeekly:
		return day.AddDate(0, 0, (7-int(day.Weekday()))%7)
	case domain.FrequencyMonthly:
		return time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
	return day
}

func nextAnchor(anchor time.Time, f domain.Frequency) time.Time {
	switch f {
	case domain.FrequencyWeekly:
		return anchor.AddDate(0, 0, 7)
	case domain.FrequencyMonthly:
		return anchor.AddDate(0, 1, 0)
	}
	return anchor.AddDate(0, 0, 1)
}

// bucketLabelLayout is year-month only for monthly buckets of an explicit range;
// unbounded monthly reports keep the month-start date.
func bucketLabelLayout(f domain.Frequency, bounded bool) string {
	if f == domain.FrequencyMonthly && bounded {
		return periodKeyLayout
	}
	return domain.DateLayout
}

// anchorSpan lists every anchor from the first to the last observed bucket.
func anchorSpan(dates []time.Time, f domain.Frequency) []time.Time {
	if len(dates) == 0 {
		return nil
	}

	first, last := BucketAnchor(dates[0], f), BucketAnchor(dates[0], f)
	for _, d := range dates[1:] {
		a := BucketAnchor(d, f)
		if a.Before(first) {
			first = a
		}
		if a.After(last) {
			last = a
		}
	}

	var anchors []time.Time
	for a := first; !a.After(last); a = nextAnchor(a, f) {
		anchors = append(anchors, a)
	}
	return anchors
}
