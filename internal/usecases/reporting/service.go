// Package reporting builds the performance, predictive and correlation reports.
package reporting

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/social-insights-api/infrastructure/repository"
	"github.com/vfg2006/social-insights-api/internal/analytics"
	"github.com/vfg2006/social-insights-api/internal/config"
	"github.com/vfg2006/social-insights-api/internal/domain"
)

type Reporter interface {
	Performance(ctx context.Context, r domain.DateRange, platform domain.Platform) (*domain.PerformanceReport, error)
	Predictive(ctx context.Context, metric domain.MetricType) (*domain.PredictiveReport, error)
	Correlation(ctx context.Context, r domain.DateRange, platform domain.Platform) (*domain.CorrelationReport, error)
}

type Service struct {
	platformRepo repository.PlatformDataRepository
	salesRepo    repository.SalesRepository
	forecast     analytics.ForecastOptions
	now          func() time.Time
}

func NewService(
	platformRepo repository.PlatformDataRepository,
	salesRepo repository.SalesRepository,
	cfg config.Analytics,
) *Service {
	return &Service{
		platformRepo: platformRepo,
		salesRepo:    salesRepo,
		forecast: analytics.ForecastOptions{
			Periods:       cfg.ForecastPeriods,
			MinimumMonths: cfg.MinimumMonths,
		},
		now: time.Now,
	}
}

// SocialRecords loads, normalizes and merges the rows of every platform
// covered by platform.
func SocialRecords(ctx context.Context, repo repository.PlatformDataRepository, platform domain.Platform, r domain.DateRange) ([]domain.MetricRecord, error) {
	var series [][]domain.MetricRecord

	for _, source := range platform.Sources() {
		var (
			raw []domain.RawRecord
			err error
		)

		switch source {
		case domain.PlatformTikTok:
			raw, err = repo.ListTikTok(ctx, r)
		case domain.PlatformFacebook:
			raw, err = repo.ListFacebook(ctx, r)
		default:
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownPlatform, source)
		}
		if err != nil {
			return nil, fmt.Errorf("load %s data: %w", source, err)
		}

		series = append(series, analytics.NormalizeAll(source, raw))
	}

	return analytics.MergeAll(series...), nil
}

func (s *Service) Performance(ctx context.Context, r domain.DateRange, platform domain.Platform) (*domain.PerformanceReport, error) {
	social, err := SocialRecords(ctx, s.platformRepo, platform, r)
	if err != nil {
		return nil, err
	}

	sales, err := s.salesRepo.DailyRevenue(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("load daily revenue: %w", err)
	}

	report := analytics.BuildPerformanceReport(analytics.PerformanceInput{
		Social:   social,
		Sales:    sales,
		Range:    r,
		Platform: platform,
	})

	return &report, nil
}

func (s *Service) Predictive(ctx context.Context, metric domain.MetricType) (*domain.PredictiveReport, error) {
	var values []analytics.DatedValue

	if metric == domain.MetricSales {
		days, err := s.salesRepo.DailyRevenue(ctx, domain.DateRange{})
		if err != nil {
			return nil, fmt.Errorf("load daily revenue: %w", err)
		}
		values = make([]analytics.DatedValue, 0, len(days))
		for _, d := range days {
			values = append(values, analytics.DatedValue{Date: d.Date, Value: d.Revenue})
		}
	} else {
		records, err := SocialRecords(ctx, s.platformRepo, domain.PlatformAll, domain.DateRange{})
		if err != nil {
			return nil, err
		}
		values = make([]analytics.DatedValue, 0, len(records))
		for _, rec := range records {
			values = append(values, analytics.DatedValue{Date: rec.Date, Value: metric.Value(rec)})
		}
	}

	report := analytics.Predict(values, metric, s.now(), s.forecast)

	logrus.WithFields(logrus.Fields{
		"metric":     metric,
		"historical": len(report.HistoricalData),
		"forecast":   len(report.ForecastData),
	}).Debug("Predictive report built")

	return &report, nil
}

func (s *Service) Correlation(ctx context.Context, r domain.DateRange, platform domain.Platform) (*domain.CorrelationReport, error) {
	social, err := SocialRecords(ctx, s.platformRepo, platform, r)
	if err != nil {
		return nil, err
	}

	sales, err := s.salesRepo.DailyRevenue(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("load daily revenue: %w", err)
	}

	report := analytics.BuildCorrelationReport(analytics.JoinDaily(social, sales))
	return &report, nil
}
