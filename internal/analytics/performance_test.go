package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/social-insights-api/internal/domain"
)

func dateRange(start, end string) domain.DateRange {
	s, e := day(start), day(end)
	return domain.DateRange{Start: &s, End: &e}
}

func TestFrequencyFor(t *testing.T) {
	tests := []struct {
		name string
		r    domain.DateRange
		want domain.Frequency
	}{
		{name: "thirty days is daily", r: dateRange("2024-01-01", "2024-01-31"), want: domain.FrequencyDaily},
		{name: "thirty one days is weekly", r: dateRange("2024-01-01", "2024-02-01"), want: domain.FrequencyWeekly},
		{name: "ninety days is weekly", r: dateRange("2024-01-01", "2024-03-31"), want: domain.FrequencyWeekly},
		{name: "ninety one days is monthly", r: dateRange("2024-01-01", "2024-04-01"), want: domain.FrequencyMonthly},
		{name: "unbounded is monthly", r: domain.DateRange{}, want: domain.FrequencyMonthly},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FrequencyFor(tt.r))
		})
	}
}

func TestBucketAnchor(t *testing.T) {
	wednesday := time.Date(2024, 1, 3, 15, 0, 0, 0, time.UTC)

	assert.Equal(t, day("2024-01-03"), BucketAnchor(wednesday, domain.FrequencyDaily))
	assert.Equal(t, day("2024-01-07"), BucketAnchor(wednesday, domain.FrequencyWeekly))
	assert.Equal(t, day("2024-01-07"), BucketAnchor(day("2024-01-07"), domain.FrequencyWeekly))
	assert.Equal(t, day("2024-01-01"), BucketAnchor(wednesday, domain.FrequencyMonthly))
}

func TestBuildPerformanceReport(t *testing.T) {
	tests := []struct {
		name     string
		input    PerformanceInput
		validate func(t *testing.T, report domain.PerformanceReport)
	}{
		{
			name: "daily buckets are gap filled",
			input: PerformanceInput{
				Social: []domain.MetricRecord{
					{Date: day("2024-01-01"), Reach: 100, Engagement: 10},
					{Date: day("2024-01-03"), Reach: 200, Engagement: 30},
				},
				Sales: []domain.DailyRevenue{
					{Date: day("2024-01-01"), Revenue: 50},
					{Date: day("2024-01-02"), Revenue: 25.5},
				},
				Range:    dateRange("2024-01-01", "2024-01-10"),
				Platform: domain.PlatformTikTok,
			},
			validate: func(t *testing.T, report domain.PerformanceReport) {
				require.Len(t, report.PerformanceChartsData, 3)
				assert.Equal(t, domain.PerformancePoint{Date: "2024-01-01", Engagement: 10, EngagementTotal: 10, ReachTotal: 100}, report.PerformanceChartsData[0])
				assert.Equal(t, domain.PerformancePoint{Date: "2024-01-02"}, report.PerformanceChartsData[1])
				assert.Equal(t, 15.0, report.PerformanceChartsData[2].Engagement)

				require.Len(t, report.SalesChartsData, 2)
				assert.Equal(t, 75.5, report.TotalSalesSummary)

				assert.Contains(t, report.PerformanceInsights, "Your total sales revenue from 2024-01-01 to 2024-01-10 is approximately $75.50. ")
				assert.Contains(t, report.PerformanceInsights, "Sales have recently declined (-49.0%).")
				assert.Contains(t, report.PerformanceInsights, "Your social media campaigns on Tiktok generated a total of 40 engagements with an average engagement rate of 8.33% from 2024-01-01 to 2024-01-10. ")
				assert.Contains(t, report.PerformanceInsights, "Your total social media reach on Tiktok from 2024-01-01 to 2024-01-10 was 300. ")
			},
		},
		{
			name: "weekly buckets end on sunday",
			input: PerformanceInput{
				Social: []domain.MetricRecord{
					{Date: day("2024-01-01"), Reach: 10, Engagement: 1},
					{Date: day("2024-01-07"), Reach: 10, Engagement: 1},
					{Date: day("2024-01-08"), Reach: 10, Engagement: 1},
				},
				Range: dateRange("2024-01-01", "2024-02-15"),
			},
			validate: func(t *testing.T, report domain.PerformanceReport) {
				require.Len(t, report.PerformanceChartsData, 2)
				assert.Equal(t, "2024-01-07", report.PerformanceChartsData[0].Date)
				assert.Equal(t, int64(20), report.PerformanceChartsData[0].ReachTotal)
				assert.Equal(t, "2024-01-14", report.PerformanceChartsData[1].Date)
				assert.Empty(t, report.SalesChartsData)
				assert.Contains(t, report.PerformanceInsights, "No sales data available for the selected period from 2024-01-01 to 2024-02-15. ")
			},
		},
		{
			name: "unbounded range uses month start labels",
			input: PerformanceInput{
				Sales: []domain.DailyRevenue{
					{Date: day("2023-11-20"), Revenue: 100},
					{Date: day("2024-01-02"), Revenue: 200},
				},
			},
			validate: func(t *testing.T, report domain.PerformanceReport) {
				require.Len(t, report.SalesChartsData, 3)
				assert.Equal(t, domain.SalesPoint{Date: "2023-11-01", SalesTotal: 100}, report.SalesChartsData[0])
				assert.Equal(t, domain.SalesPoint{Date: "2023-12-01"}, report.SalesChartsData[1])
				assert.NotNil(t, report.PerformanceChartsData)
				assert.Empty(t, report.PerformanceChartsData)
				assert.Contains(t, report.PerformanceInsights, "No social media engagement data available for the selected period. ")
				assert.Contains(t, report.PerformanceInsights, "No social media reach data available for the selected period. ")
			},
		},
		{
			name: "bounded monthly buckets use year month labels",
			input: PerformanceInput{
				Sales: []domain.DailyRevenue{{Date: day("2024-02-10"), Revenue: 1}},
				Range: dateRange("2024-01-01", "2024-06-30"),
			},
			validate: func(t *testing.T, report domain.PerformanceReport) {
				require.Len(t, report.SalesChartsData, 1)
				assert.Equal(t, "2024-02", report.SalesChartsData[0].Date)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, BuildPerformanceReport(tt.input))
		})
	}
}

func TestPerformanceInsights_Trends(t *testing.T) {
	social := []domain.PerformancePoint{
		{Date: "2024-01-01", EngagementTotal: 100, ReachTotal: 1000, Engagement: 10},
		{Date: "2024-01-02", EngagementTotal: 150, ReachTotal: 800, Engagement: 18.75},
	}
	sales := []domain.SalesPoint{
		{Date: "2024-01-01", SalesTotal: 1000},
		{Date: "2024-01-02", SalesTotal: 1020},
	}

	text := PerformanceInsights(social, sales, domain.DateRange{}, domain.PlatformAll)

	assert.Equal(t,
		"Your total sales revenue is approximately $2,020.00.  "+
			"Sales are stable. Look for new market opportunities or product launches to drive further growth.  "+
			"Your social media campaigns generated a total of 250 engagements with an average engagement rate of 14.38%.  "+
			"Engagement is surging (+50.0%). Identify top-performing content and replicate its success.  "+
			"Your total social media reach was 1,800.  "+
			"Reach has contracted (-20.0%). Review ad spend, targeting, and content distribution strategies. ",
		text,
	)
}

func TestEngagementGoal(t *testing.T) {
	met := EngagementGoal(50, 1000, 5)
	assert.True(t, met.Met)
	assert.Equal(t, "Current engagement rate: 5.00% (goal: 5.00%)", met.Text)

	missed := EngagementGoal(10, 1000, 5)
	assert.False(t, missed.Met)
	assert.Equal(t, 1.0, missed.Current)

	empty := EngagementGoal(0, 0, 5)
	assert.False(t, empty.Met)
	assert.Equal(t, "No engagement data available for the selected period.", empty.Text)
}

func TestTotals(t *testing.T) {
	totals := Totals([]domain.AggregatedBucket{
		{PeriodKey: "2024-01", Reach: 10, Engagement: 2, Sales: 1.5},
		{PeriodKey: "2024-02", Reach: 5, Engagement: 1, Sales: 2},
	})

	assert.Equal(t, domain.SummaryTotals{Reach: 15, Engagement: 3, Sales: 3.5}, totals)
}
