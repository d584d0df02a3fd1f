package dashboardclient

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/social-insights-api/internal/domain"
)

// PlatformView is the /api/dashboard/platform payload. Chart configurations
// are kept as raw JSON for the renderer.
type PlatformView struct {
	Platform  domain.Platform           `json:"platform"`
	TimeRange domain.TimeWindow         `json:"time_range"`
	Buckets   []domain.AggregatedBucket `json:"buckets"`
	Labels    []string                  `json:"labels"`
	Totals    domain.SummaryTotals      `json:"totals"`
	Charts    []jsoniter.RawMessage     `json:"charts"`
}

type TopPerformersView struct {
	Products []domain.TopProduct `json:"products"`
	Chart    jsoniter.RawMessage `json:"chart"`
}
