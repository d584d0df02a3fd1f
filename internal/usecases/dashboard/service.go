// Package dashboard serves the cached, chart-ready dashboard views and the raw
// data listings behind them.
package dashboard

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/social-insights-api/infrastructure/repository"
	"github.com/vfg2006/social-insights-api/internal/analytics"
	"github.com/vfg2006/social-insights-api/internal/cache"
	"github.com/vfg2006/social-insights-api/internal/chart"
	"github.com/vfg2006/social-insights-api/internal/config"
	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/internal/usecases/reporting"
)

var ErrChartNotFound = errors.New("chart not found")

// warmPlatforms are the platform selections the dashboard offers.
var warmPlatforms = []domain.Platform{domain.PlatformAll, domain.PlatformTikTok, domain.PlatformFacebook}

type Dashboarder interface {
	Platform(ctx context.Context, platform domain.Platform, window domain.TimeWindow) (*PlatformView, error)
	Sales(ctx context.Context, window domain.TimeWindow) (*SalesView, error)
	TopPerformers(ctx context.Context) (*TopPerformersView, error)
	EngagementGoal(ctx context.Context, window domain.TimeWindow, goal *float64) (*EngagementGoalView, error)
	Trend(ctx context.Context, platform domain.Platform, metric domain.MetricType, window domain.TimeWindow) (*TrendView, error)
	Chart(id string) (chart.Instance, error)
	Warm(ctx context.Context) (int, error)
	Invalidate() int

	ListPlatformRows(ctx context.Context, platform domain.Platform) ([]domain.RawRecord, error)
	ListSales(ctx context.Context, r domain.DateRange) ([]domain.RawRecord, error)
	SalesSummary(ctx context.Context, r domain.DateRange) (float64, error)
	TopProducts(ctx context.Context, r domain.DateRange) ([]domain.TopProduct, error)
	TikTokSummary(ctx context.Context, r domain.DateRange) (*TikTokSummary, error)
}

type Service struct {
	platformRepo repository.PlatformDataRepository
	salesRepo    repository.SalesRepository
	store        *cache.Store
	charts       *chart.Registry
	cfg          config.Analytics
	now          func() time.Time
}

func NewService(
	platformRepo repository.PlatformDataRepository,
	salesRepo repository.SalesRepository,
	store *cache.Store,
	charts *chart.Registry,
	cfg config.Analytics,
) *Service {
	return &Service{
		platformRepo: platformRepo,
		salesRepo:    salesRepo,
		store:        store,
		charts:       charts,
		cfg:          cfg,
		now:          time.Now,
	}
}

func (s *Service) buildPlatform(ctx context.Context, platform domain.Platform, window domain.TimeWindow) (*PlatformView, error) {
	records, err := reporting.SocialRecords(ctx, s.platformRepo, platform, domain.DateRange{})
	if err != nil {
		return nil, err
	}

	buckets, labels := analytics.Aggregate(records, window, s.now())
	return &PlatformView{
		Platform:  platform,
		TimeRange: window,
		Buckets:   buckets,
		Labels:    labels,
		Totals:    analytics.Totals(buckets),
		Charts: []chart.Config{
			chart.ReachChart(labels, buckets),
			chart.EngagementChart(labels, buckets),
		},
	}, nil
}

func (s *Service) Platform(ctx context.Context, platform domain.Platform, window domain.TimeWindow) (*PlatformView, error) {
	v, err := s.store.GetOrLoad(ctx, cache.PlatformDataKey(platform, window), func(ctx context.Context) (any, error) {
		return s.buildPlatform(ctx, platform, window)
	})
	if err != nil {
		return nil, err
	}

	view := v.(*PlatformView)
	for _, cfg := range view.Charts {
		s.charts.Render(cfg.ID, cfg)
	}
	return view, nil
}

func (s *Service) buildSales(ctx context.Context, window domain.TimeWindow) (*SalesView, error) {
	days, err := s.salesRepo.DailyRevenue(ctx, domain.DateRange{})
	if err != nil {
		return nil, fmt.Errorf("load daily revenue: %w", err)
	}

	records := make([]domain.MetricRecord, 0, len(days))
	for _, d := range days {
		records = append(records, domain.MetricRecord{Date: d.Date, Sales: d.Revenue})
	}

	buckets, labels := analytics.Aggregate(records, window, s.now())
	return &SalesView{
		TimeRange: window,
		Buckets:   buckets,
		Labels:    labels,
		Total:     analytics.Totals(buckets).Sales,
		Chart:     chart.SalesChart(labels, buckets),
	}, nil
}

func (s *Service) Sales(ctx context.Context, window domain.TimeWindow) (*SalesView, error) {
	v, err := s.store.GetOrLoad(ctx, cache.SalesDataKey(window), func(ctx context.Context) (any, error) {
		return s.buildSales(ctx, window)
	})
	if err != nil {
		return nil, err
	}

	view := v.(*SalesView)
	s.charts.Render(view.Chart.ID, view.Chart)
	return view, nil
}

func (s *Service) buildTopPerformers(ctx context.Context) (*TopPerformersView, error) {
	products, err := s.TopProducts(ctx, domain.DateRange{})
	if err != nil {
		return nil, err
	}

	return &TopPerformersView{
		Products: products,
		Chart:    chart.TopPerformersChart(products),
	}, nil
}

func (s *Service) TopPerformers(ctx context.Context) (*TopPerformersView, error) {
	v, err := s.store.GetOrLoad(ctx, cache.TopPerformersKey, func(ctx context.Context) (any, error) {
		return s.buildTopPerformers(ctx)
	})
	if err != nil {
		return nil, err
	}

	view := v.(*TopPerformersView)
	s.charts.Render(view.Chart.ID, view.Chart)
	return view, nil
}

// EngagementGoal compares the engagement rate of every platform over window
// with goal, or with the configured goal when nil.
func (s *Service) EngagementGoal(ctx context.Context, window domain.TimeWindow, goal *float64) (*EngagementGoalView, error) {
	target := s.cfg.EngagementGoalPercent
	if goal != nil {
		target = *goal
	}

	platformView, err := s.Platform(ctx, domain.PlatformAll, window)
	if err != nil {
		return nil, err
	}

	summary := analytics.EngagementGoal(platformView.Totals.Engagement, platformView.Totals.Reach, target)
	cfg := chart.EngagementGoalChart(summary)
	s.charts.Render(cfg.ID, cfg)

	return &EngagementGoalView{
		TimeRange: window,
		Summary:   summary,
		Chart:     cfg,
	}, nil
}

// Trend fits a regression line through the monthly values of metric. Sales
// come from the sales table whatever the platform.
func (s *Service) Trend(ctx context.Context, platform domain.Platform, metric domain.MetricType, window domain.TimeWindow) (*TrendView, error) {
	var (
		buckets []domain.AggregatedBucket
		labels  []string
	)

	if metric == domain.MetricSales {
		view, err := s.Sales(ctx, window)
		if err != nil {
			return nil, err
		}
		buckets, labels = view.Buckets, view.Labels
	} else {
		view, err := s.Platform(ctx, platform, window)
		if err != nil {
			return nil, err
		}
		buckets, labels = view.Buckets, view.Labels
	}

	points := analytics.MetricSeries(buckets, metric)
	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.Y
	}

	line := analytics.RegressionLine(points)
	fitted := fittedValues(line, points)

	cfg := chart.TrendChart(fmt.Sprintf("%s Trend", metric.Name()), metric.Name(), labels, values, fitted)
	s.charts.Render(cfg.ID, cfg)

	return &TrendView{
		Platform:  platform,
		Metric:    metric,
		TimeRange: window,
		Labels:    labels,
		Values:    values,
		Line:      line,
		Fitted:    fitted,
		Chart:     cfg,
	}, nil
}

// fittedValues evaluates the line through the two end points at every x.
func fittedValues(line []analytics.Point, points []analytics.Point) []float64 {
	if len(line) != 2 || line[1].X == line[0].X {
		return []float64{}
	}

	slope := (line[1].Y - line[0].Y) / (line[1].X - line[0].X)
	fitted := make([]float64, len(points))
	for i, p := range points {
		fitted[i] = line[0].Y + slope*(p.X-line[0].X)
	}
	return fitted
}

func (s *Service) Chart(id string) (chart.Instance, error) {
	inst, ok := s.charts.Get(id)
	if !ok {
		return chart.Instance{}, fmt.Errorf("%w: %q", ErrChartNotFound, id)
	}
	return inst, nil
}

// Warm rebuilds every dashboard view and stores it, replacing what the cache
// held. It returns the number of entries written.
func (s *Service) Warm(ctx context.Context) (int, error) {
	written := 0

	for _, platform := range warmPlatforms {
		for _, window := range domain.TimeWindows {
			view, err := s.buildPlatform(ctx, platform, window)
			if err != nil {
				return written, fmt.Errorf("warm %s/%s: %w", platform, window, err)
			}
			s.store.Set(cache.PlatformDataKey(platform, window), view)
			written++
		}
	}

	for _, window := range domain.TimeWindows {
		view, err := s.buildSales(ctx, window)
		if err != nil {
			return written, fmt.Errorf("warm sales/%s: %w", window, err)
		}
		s.store.Set(cache.SalesDataKey(window), view)
		written++
	}

	top, err := s.buildTopPerformers(ctx)
	if err != nil {
		return written, fmt.Errorf("warm top performers: %w", err)
	}
	s.store.Set(cache.TopPerformersKey, top)
	written++

	return written, nil
}

// Invalidate drops every cached view.
func (s *Service) Invalidate() int {
	removed := s.store.Invalidate()
	logrus.WithField("entries", removed).Debug("Dashboard cache invalidated")
	return removed
}

// ListPlatformRows returns the stored rows of a single platform, oldest first.
func (s *Service) ListPlatformRows(ctx context.Context, platform domain.Platform) ([]domain.RawRecord, error) {
	switch platform {
	case domain.PlatformTikTok:
		return s.platformRepo.ListTikTok(ctx, domain.DateRange{})
	case domain.PlatformFacebook:
		return s.platformRepo.ListFacebook(ctx, domain.DateRange{})
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrUnknownPlatform, platform)
}

func (s *Service) ListSales(ctx context.Context, r domain.DateRange) ([]domain.RawRecord, error) {
	return s.salesRepo.ListSales(ctx, r)
}

func (s *Service) SalesSummary(ctx context.Context, r domain.DateRange) (float64, error) {
	return s.salesRepo.TotalRevenue(ctx, r)
}

// TopProducts ranks products by revenue within r; an open range covers
// every sale.
func (s *Service) TopProducts(ctx context.Context, r domain.DateRange) ([]domain.TopProduct, error) {
	limit := s.cfg.TopProducts
	if limit <= 0 {
		limit = 5
	}

	products, err := s.salesRepo.TopProducts(ctx, r, limit)
	if err != nil {
		return nil, fmt.Errorf("load top products: %w", err)
	}
	return products, nil
}

func (s *Service) TikTokSummary(ctx context.Context, r domain.DateRange) (*TikTokSummary, error) {
	reach, engagement, err := s.platformRepo.TikTokTotals(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("load tiktok totals: %w", err)
	}
	return &TikTokSummary{TotalReach: reach, TotalEngagement: engagement}, nil
}
