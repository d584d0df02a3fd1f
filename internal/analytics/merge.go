package analytics

import (
	"sort"

	"github.com/vfg2006/social-insights-api/internal/domain"
)

// Merge combines two series by calendar day. Days present in both are summed,
// the rest pass through, and the result is sorted ascending.
func Merge(a, b []domain.MetricRecord) []domain.MetricRecord {
	return MergeAll(a, b)
}

// MergeAll folds any number of series the way Merge combines two.
func MergeAll(series ...[]domain.MetricRecord) []domain.MetricRecord {
	byDay := make(map[string]*domain.MetricRecord)

	for _, records := range series {
		for _, r := range records {
			key := r.Date.Format(domain.DateLayout)
			existing, ok := byDay[key]
			if !ok {
				copied := r
				byDay[key] = &copied
				continue
			}
			existing.Reach += r.Reach
			existing.Engagement += r.Engagement
			existing.Sales += r.Sales
		}
	}

	merged := make([]domain.MetricRecord, 0, len(byDay))
	for _, r := range byDay {
		merged = append(merged, *r)
	}

	sort.Slice(merged, func(i, j int) bool {
		return merged[i].Date.Before(merged[j].Date)
	})

	return merged
}
