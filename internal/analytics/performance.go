package analytics

import (
	"time"

	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/pkg/utils"
)

type PerformanceInput struct {
	// Social holds normalized records of the selected platforms only.
	Social   []domain.MetricRecord
	Sales    []domain.DailyRevenue
	Range    domain.DateRange
	Platform domain.Platform
}

// BuildPerformanceReport buckets social and sales data at the frequency implied
// by the range. Buckets between the first and last observation are zero-filled.
func BuildPerformanceReport(in PerformanceInput) domain.PerformanceReport {
	freq := FrequencyFor(in.Range)
	layout := bucketLabelLayout(freq, in.Range.Bounded())

	report := domain.PerformanceReport{
		PerformanceChartsData: bucketSocial(in.Social, freq, layout),
		SalesChartsData:       bucketSales(in.Sales, freq, layout),
	}

	for _, s := range in.Sales {
		report.TotalSalesSummary += s.Revenue
	}

	report.PerformanceInsights = PerformanceInsights(
		report.PerformanceChartsData,
		report.SalesChartsData,
		in.Range,
		in.Platform,
	)

	return report
}

func bucketSocial(records []domain.MetricRecord, freq domain.Frequency, layout string) []domain.PerformancePoint {
	dates := make([]time.Time, len(records))
	sums := make(map[time.Time]*domain.PerformancePoint)
	for i, r := range records {
		dates[i] = r.Date
		anchor := BucketAnchor(r.Date, freq)
		p, ok := sums[anchor]
		if !ok {
			p = &domain.PerformancePoint{}
			sums[anchor] = p
		}
		p.EngagementTotal += r.Engagement
		p.ReachTotal += r.Reach
	}

	points := make([]domain.PerformancePoint, 0)
	for _, anchor := range anchorSpan(dates, freq) {
		p := domain.PerformancePoint{Date: anchor.Format(layout)}
		if sum, ok := sums[anchor]; ok {
			p.EngagementTotal = sum.EngagementTotal
			p.ReachTotal = sum.ReachTotal
		}
		p.Engagement = EngagementRate(p.EngagementTotal, p.ReachTotal)
		points = append(points, p)
	}
	return points
}

func bucketSales(sales []domain.DailyRevenue, freq domain.Frequency, layout string) []domain.SalesPoint {
	dates := make([]time.Time, len(sales))
	sums := make(map[time.Time]float64)
	for i, s := range sales {
		dates[i] = s.Date
		sums[BucketAnchor(s.Date, freq)] += s.Revenue
	}

	points := make([]domain.SalesPoint, 0)
	for _, anchor := range anchorSpan(dates, freq) {
		points = append(points, domain.SalesPoint{
			Date:       anchor.Format(layout),
			SalesTotal: sums[anchor],
		})
	}
	return points
}

// EngagementRate is engagement over reach as a percentage with two decimals.
func EngagementRate(engagement, reach int64) float64 {
	if reach <= 0 {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace(float64(engagement) / float64(reach) * 100)
}
