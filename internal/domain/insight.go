package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Frequency is the bucket size of a performance report.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

type MetricType string

const (
	MetricSales      MetricType = "sales"
	MetricEngagement MetricType = "engagement"
	MetricReach      MetricType = "reach"
)

var ErrUnknownMetric = errors.New("unknown metric type")

func ParseMetricType(s string) (MetricType, error) {
	switch MetricType(strings.ToLower(strings.TrimSpace(s))) {
	case MetricSales:
		return MetricSales, nil
	case MetricEngagement:
		return MetricEngagement, nil
	case MetricReach:
		return MetricReach, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMetric, s)
}

func (m MetricType) Name() string {
	switch m {
	case MetricSales:
		return "Sales Revenue"
	case MetricEngagement:
		return "Engagement"
	case MetricReach:
		return "Reach"
	}
	return string(m)
}

// Value picks the metric out of a record.
func (m MetricType) Value(r MetricRecord) float64 {
	switch m {
	case MetricSales:
		return r.Sales
	case MetricEngagement:
		return float64(r.Engagement)
	case MetricReach:
		return float64(r.Reach)
	}
	return 0
}

type PerformancePoint struct {
	Date            string  `json:"date"`
	Engagement      float64 `json:"engagement"`
	EngagementTotal int64   `json:"engagement_total"`
	ReachTotal      int64   `json:"reach_total"`
}

type SalesPoint struct {
	Date       string  `json:"date"`
	SalesTotal float64 `json:"sales_total"`
}

type PerformanceReport struct {
	PerformanceChartsData []PerformancePoint `json:"performance_charts_data"`
	SalesChartsData       []SalesPoint       `json:"sales_charts_data"`
	TotalSalesSummary     float64            `json:"total_sales_summary"`
	PerformanceInsights   string             `json:"performance_insights"`
}

type HistoricalPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type ForecastPoint struct {
	Date       string  `json:"date"`
	Value      float64 `json:"value"`
	LowerBound float64 `json:"lower_bound"`
	UpperBound float64 `json:"upper_bound"`
}

type PredictiveReport struct {
	HistoricalData []HistoricalPoint `json:"historical_data"`
	ForecastData   []ForecastPoint   `json:"forecast_data"`
	Recommendation string            `json:"recommendation"`
	Message        string            `json:"message"`
}

// Correlation pair keys.
const (
	PairEngageReach = "engage_reach"
	PairEngageSales = "engage_sales"
	PairReachSales  = "reach_sales"
)

type CorrelationChartPoint struct {
	Date       string  `json:"date"`
	Engagement float64 `json:"engagement"`
	Reach      float64 `json:"reach"`
	Sales      float64 `json:"sales"`
}

type CorrelationReport struct {
	Message         string                  `json:"message"`
	Correlations    map[string]*float64     `json:"correlations"`
	Recommendations map[string]string       `json:"recommendations"`
	ChartData       []CorrelationChartPoint `json:"chart_data"`
}

// UploadApp names the dataset a file upload targets.
type UploadApp string

const (
	UploadFacebook UploadApp = "facebook"
	UploadTikTok   UploadApp = "tiktok"
	UploadSales    UploadApp = "sales"
)

var ErrUnknownUploadApp = errors.New("unknown upload app")

func ParseUploadApp(s string) (UploadApp, error) {
	switch UploadApp(strings.ToLower(strings.TrimSpace(s))) {
	case UploadFacebook:
		return UploadFacebook, nil
	case UploadTikTok:
		return UploadTikTok, nil
	case UploadSales:
		return UploadSales, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownUploadApp, s)
}

type UploadResult struct {
	Message string         `json:"message"`
	BatchID string         `json:"batch_id"`
	Rows    map[string]int `json:"rows"`
}
