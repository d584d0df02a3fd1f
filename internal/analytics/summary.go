package analytics

import (
	"fmt"
	"strconv"

	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/pkg/utils"
)

func Totals(buckets []domain.AggregatedBucket) domain.SummaryTotals {
	var t domain.SummaryTotals
	for _, b := range buckets {
		t.Reach += b.Reach
		t.Engagement += b.Engagement
		t.Sales += b.Sales
	}
	return t
}

// EngagementGoal compares the engagement rate (percent of reach) with goal.
func EngagementGoal(engagement, reach int64, goal float64) domain.EngagementGoalSummary {
	current := EngagementRate(engagement, reach)
	summary := domain.EngagementGoalSummary{
		Current: current,
		Goal:    goal,
		Met:     current >= goal,
	}

	if reach <= 0 {
		summary.Met = false
		summary.Text = "No engagement data available for the selected period."
		return summary
	}

	summary.Text = fmt.Sprintf("Current engagement rate: %s%% (goal: %s%%)",
		strconv.FormatFloat(current, 'f', 2, 64),
		strconv.FormatFloat(utils.RoundWithTwoDecimalPlace(goal), 'f', 2, 64),
	)
	return summary
}

// MetricSeries extracts one metric from monthly buckets as regression samples,
// x being the bucket index.
func MetricSeries(buckets []domain.AggregatedBucket, metric domain.MetricType) []Point {
	points := make([]Point, len(buckets))
	for i, b := range buckets {
		var y float64
		switch metric {
		case domain.MetricSales:
			y = b.Sales
		case domain.MetricEngagement:
			y = float64(b.Engagement)
		case domain.MetricReach:
			y = float64(b.Reach)
		}
		points[i] = Point{X: float64(i), Y: y}
	}
	return points
}
