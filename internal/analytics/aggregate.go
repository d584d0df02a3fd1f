package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/vfg2006/social-insights-api/internal/domain"
)

const periodKeyLayout = "2006-01"

// Aggregate filters records to the window anchored at now and sums them per
// calendar month. It returns the buckets in chronological order together with
// a parallel slice of "Jan 2024" style labels.
func Aggregate(records []domain.MetricRecord, window domain.TimeWindow, now time.Time) ([]domain.AggregatedBucket, []string) {
	filtered := FilterWindow(records, window, now)

	byMonth := make(map[string]*domain.AggregatedBucket)
	for _, r := range filtered {
		key := r.Date.Format(periodKeyLayout)
		bucket, ok := byMonth[key]
		if !ok {
			bucket = &domain.AggregatedBucket{PeriodKey: key}
			byMonth[key] = bucket
		}
		bucket.Reach += r.Reach
		bucket.Engagement += r.Engagement
		bucket.Sales += r.Sales
	}

	keys := make([]string, 0, len(byMonth))
	for key := range byMonth {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	buckets := make([]domain.AggregatedBucket, 0, len(keys))
	labels := make([]string, 0, len(keys))
	for _, key := range keys {
		buckets = append(buckets, *byMonth[key])
		labels = append(labels, MonthLabel(key))
	}

	return buckets, labels
}

// FilterWindow keeps the records on or after the window start. Records dated
// after now are kept.
func FilterWindow(records []domain.MetricRecord, window domain.TimeWindow, now time.Time) []domain.MetricRecord {
	start, bounded := window.Start(now)
	if !bounded {
		return records
	}

	startKey := start.Format(domain.DateLayout)
	filtered := make([]domain.MetricRecord, 0, len(records))
	for _, r := range records {
		if r.Date.Format(domain.DateLayout) < startKey {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

// MonthLabel turns "2024-01" into "Jan 2024". Unparsable keys are returned as is.
func MonthLabel(periodKey string) string {
	t, err := time.Parse(periodKeyLayout, periodKey)
	if err != nil {
		return periodKey
	}
	return t.Format("Jan 2006")
}

func QuarterLabel(t time.Time) string {
	return fmt.Sprintf("Q%d %d", (int(t.Month())-1)/3+1, t.Year())
}
