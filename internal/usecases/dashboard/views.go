package dashboard

import (
	"github.com/vfg2006/social-insights-api/internal/analytics"
	"github.com/vfg2006/social-insights-api/internal/chart"
	"github.com/vfg2006/social-insights-api/internal/domain"
)

type PlatformView struct {
	Platform  domain.Platform           `json:"platform"`
	TimeRange domain.TimeWindow         `json:"time_range"`
	Buckets   []domain.AggregatedBucket `json:"buckets"`
	Labels    []string                  `json:"labels"`
	Totals    domain.SummaryTotals      `json:"totals"`
	Charts    []chart.Config            `json:"charts"`
}

type SalesView struct {
	TimeRange domain.TimeWindow         `json:"time_range"`
	Buckets   []domain.AggregatedBucket `json:"buckets"`
	Labels    []string                  `json:"labels"`
	Total     float64                   `json:"total_sales"`
	Chart     chart.Config              `json:"chart"`
}

type TopPerformersView struct {
	Products []domain.TopProduct `json:"products"`
	Chart    chart.Config        `json:"chart"`
}

type EngagementGoalView struct {
	TimeRange domain.TimeWindow            `json:"time_range"`
	Summary   domain.EngagementGoalSummary `json:"summary"`
	Chart     chart.Config                 `json:"chart"`
}

type TrendView struct {
	Platform  domain.Platform   `json:"platform"`
	Metric    domain.MetricType `json:"metric"`
	TimeRange domain.TimeWindow `json:"time_range"`
	Labels    []string          `json:"labels"`
	Values    []float64         `json:"values"`
	// Line holds the two end points of the fitted line; Fitted its value at
	// every label.
	Line   []analytics.Point `json:"line"`
	Fitted []float64         `json:"fitted"`
	Chart  chart.Config      `json:"chart"`
}

type TikTokSummary struct {
	TotalReach      int64 `json:"total_tiktok_reach"`
	TotalEngagement int64 `json:"total_tiktok_engagement"`
}
