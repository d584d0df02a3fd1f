package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/social-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/social-insights-api/internal/cache"
	"github.com/vfg2006/social-insights-api/internal/chart"
	"github.com/vfg2006/social-insights-api/internal/config"
	"github.com/vfg2006/social-insights-api/internal/domain"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

type fixture struct {
	platformRepo *mocks.MockPlatformDataRepository
	salesRepo    *mocks.MockSalesRepository
	store        *cache.Store
	charts       *chart.Registry
	service      *Service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &fixture{
		platformRepo: mocks.NewMockPlatformDataRepository(ctrl),
		salesRepo:    mocks.NewMockSalesRepository(ctrl),
		store:        cache.New(cache.DefaultPolicy(), cache.WithClock(func() time.Time { return testNow })),
		charts:       chart.NewRegistry(),
	}
	f.service = NewService(f.platformRepo, f.salesRepo, f.store, f.charts, config.Analytics{
		TopProducts:           5,
		EngagementGoalPercent: 5,
	})
	f.service.now = func() time.Time { return testNow }
	return f
}

var tiktokRows = []domain.RawRecord{
	{"date": "2024-04-03", "views": 1000, "likes": 30, "comments": 10, "shares": 10},
	{"date": "2024-05-20", "views": 2000, "likes": 50, "comments": 20, "shares": 30},
	{"date": "2024-06-01", "views": 3000, "likes": 100, "comments": 50, "shares": 50},
}

var facebookRows = []domain.RawRecord{
	{"date": "2023-01-10", "reach": 500, "likes": 5, "comments": 0, "shares": 0},
	{"date": "2024-06-01", "reach": 1000, "likes": 40, "comments": 5, "shares": 5},
}

func TestService_Platform(t *testing.T) {
	tests := []struct {
		name     string
		platform domain.Platform
		window   domain.TimeWindow
		setup    func(f *fixture)
		validate func(t *testing.T, f *fixture, view *PlatformView, err error)
	}{
		{
			name:     "all platforms over the last three months",
			platform: domain.PlatformAll,
			window:   domain.WindowLast3Months,
			setup: func(f *fixture) {
				f.platformRepo.EXPECT().ListTikTok(gomock.Any(), domain.DateRange{}).Return(tiktokRows, nil)
				f.platformRepo.EXPECT().ListFacebook(gomock.Any(), domain.DateRange{}).Return(facebookRows, nil)
			},
			validate: func(t *testing.T, f *fixture, view *PlatformView, err error) {
				require.NoError(t, err)
				assert.Equal(t, []string{"Apr 2024", "May 2024", "Jun 2024"}, view.Labels)
				require.Len(t, view.Buckets, 3)
				assert.Equal(t, "2024-06", view.Buckets[2].PeriodKey)
				assert.Equal(t, int64(4000), view.Buckets[2].Reach)
				assert.Equal(t, int64(250), view.Buckets[2].Engagement)
				assert.Equal(t, int64(7000), view.Totals.Reach)
				assert.Equal(t, int64(400), view.Totals.Engagement)

				assert.ElementsMatch(t, []string{chart.IDEngagement, chart.IDReach}, f.charts.IDs())
			},
		},
		{
			name:     "facebook all time",
			platform: domain.PlatformFacebook,
			window:   domain.WindowAllTime,
			setup: func(f *fixture) {
				f.platformRepo.EXPECT().ListFacebook(gomock.Any(), domain.DateRange{}).Return(facebookRows, nil)
			},
			validate: func(t *testing.T, f *fixture, view *PlatformView, err error) {
				require.NoError(t, err)
				assert.Equal(t, []string{"Jan 2023", "Jun 2024"}, view.Labels)
			},
		},
		{
			name:     "empty data renders no-data charts",
			platform: domain.PlatformTikTok,
			window:   domain.WindowLast6Months,
			setup: func(f *fixture) {
				f.platformRepo.EXPECT().ListTikTok(gomock.Any(), domain.DateRange{}).Return([]domain.RawRecord{}, nil)
			},
			validate: func(t *testing.T, f *fixture, view *PlatformView, err error) {
				require.NoError(t, err)
				assert.Empty(t, view.Buckets)
				assert.NotNil(t, view.Labels)
				for _, cfg := range view.Charts {
					assert.True(t, cfg.NoData)
				}
			},
		},
		{
			name:     "repository errors are not cached",
			platform: domain.PlatformTikTok,
			window:   domain.WindowAllTime,
			setup: func(f *fixture) {
				f.platformRepo.EXPECT().ListTikTok(gomock.Any(), gomock.Any()).Return(nil, errors.New("down"))
			},
			validate: func(t *testing.T, f *fixture, view *PlatformView, err error) {
				assert.Error(t, err)
				assert.Equal(t, 0, f.store.Len())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)
			view, err := f.service.Platform(context.Background(), tt.platform, tt.window)
			tt.validate(t, f, view, err)
		})
	}
}

func TestService_PlatformServesFromCache(t *testing.T) {
	f := newFixture(t)
	f.platformRepo.EXPECT().ListTikTok(gomock.Any(), gomock.Any()).Return(tiktokRows, nil).Times(1)

	first, err := f.service.Platform(context.Background(), domain.PlatformTikTok, domain.WindowAllTime)
	require.NoError(t, err)
	second, err := f.service.Platform(context.Background(), domain.PlatformTikTok, domain.WindowAllTime)
	require.NoError(t, err)

	assert.Same(t, first, second)

	inst, err := f.service.Chart(chart.IDReach)
	require.NoError(t, err)
	assert.Equal(t, 2, inst.Revision)
}

func TestService_InvalidateForcesReload(t *testing.T) {
	f := newFixture(t)
	f.platformRepo.EXPECT().ListTikTok(gomock.Any(), gomock.Any()).Return(tiktokRows, nil).Times(2)

	_, err := f.service.Platform(context.Background(), domain.PlatformTikTok, domain.WindowAllTime)
	require.NoError(t, err)

	assert.Equal(t, 1, f.service.Invalidate())

	_, err = f.service.Platform(context.Background(), domain.PlatformTikTok, domain.WindowAllTime)
	require.NoError(t, err)
}

func TestService_Sales(t *testing.T) {
	f := newFixture(t)
	f.salesRepo.EXPECT().DailyRevenue(gomock.Any(), domain.DateRange{}).Return([]domain.DailyRevenue{
		{Date: time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), Revenue: 10},
		{Date: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), Revenue: 20},
		{Date: time.Date(2024, 5, 9, 0, 0, 0, 0, time.UTC), Revenue: 5.5},
	}, nil)

	view, err := f.service.Sales(context.Background(), domain.WindowLast6Months)
	require.NoError(t, err)
	assert.Equal(t, []string{"May 2024"}, view.Labels)
	assert.Equal(t, 25.5, view.Total)
	assert.Equal(t, chart.IDSales, view.Chart.ID)

	_, ok := f.store.Get(cache.SalesDataKey(domain.WindowLast6Months))
	assert.True(t, ok)
}

func TestService_TopPerformers(t *testing.T) {
	f := newFixture(t)
	f.salesRepo.EXPECT().TopProducts(gomock.Any(), domain.DateRange{}, 5).Return([]domain.TopProduct{
		{ProductName: "Lens", Sales: 300},
		{ProductName: "Frame", Sales: 120},
	}, nil).Times(1)

	view, err := f.service.TopPerformers(context.Background())
	require.NoError(t, err)
	assert.Len(t, view.Products, 2)
	assert.Equal(t, "y", view.Chart.Options.IndexAxis)

	_, err = f.service.TopPerformers(context.Background())
	require.NoError(t, err)

	_, ok := f.store.Get(cache.TopPerformersKey)
	assert.True(t, ok)
}

func TestService_EngagementGoal(t *testing.T) {
	f := newFixture(t)
	f.platformRepo.EXPECT().ListTikTok(gomock.Any(), gomock.Any()).Return(tiktokRows, nil)
	f.platformRepo.EXPECT().ListFacebook(gomock.Any(), gomock.Any()).Return(facebookRows, nil)

	t.Run("configured goal", func(t *testing.T) {
		view, err := f.service.EngagementGoal(context.Background(), domain.WindowLast3Months, nil)
		require.NoError(t, err)
		// 400 engagement over 7000 reach.
		assert.Equal(t, 5.71, view.Summary.Current)
		assert.Equal(t, 5.0, view.Summary.Goal)
		assert.True(t, view.Summary.Met)
	})

	t.Run("explicit goal served from cache", func(t *testing.T) {
		goal := 10.0
		view, err := f.service.EngagementGoal(context.Background(), domain.WindowLast3Months, &goal)
		require.NoError(t, err)
		assert.False(t, view.Summary.Met)
		assert.Equal(t, chart.IDEngagementGoal, view.Chart.ID)
	})
}

func TestService_Trend(t *testing.T) {
	f := newFixture(t)
	f.platformRepo.EXPECT().ListTikTok(gomock.Any(), gomock.Any()).Return(tiktokRows, nil)

	view, err := f.service.Trend(context.Background(), domain.PlatformTikTok, domain.MetricReach, domain.WindowAllTime)
	require.NoError(t, err)

	assert.Equal(t, []float64{1000, 2000, 3000}, view.Values)
	require.Len(t, view.Line, 2)
	assert.InDeltaSlice(t, []float64{1000, 2000, 3000}, view.Fitted, 1e-9)
	assert.Len(t, view.Chart.Data.Datasets, 2)

	inst, err := f.service.Chart(chart.IDTrend)
	require.NoError(t, err)
	assert.Equal(t, 1, inst.Revision)
}

func TestService_ChartNotFound(t *testing.T) {
	f := newFixture(t)
	_, err := f.service.Chart("missing")
	assert.ErrorIs(t, err, ErrChartNotFound)
}

func TestService_Warm(t *testing.T) {
	f := newFixture(t)
	// "all" and the single platform both read each table once per window.
	f.platformRepo.EXPECT().ListTikTok(gomock.Any(), gomock.Any()).Return(tiktokRows, nil).Times(8)
	f.platformRepo.EXPECT().ListFacebook(gomock.Any(), gomock.Any()).Return(facebookRows, nil).Times(8)
	f.salesRepo.EXPECT().DailyRevenue(gomock.Any(), gomock.Any()).Return([]domain.DailyRevenue{}, nil).Times(4)
	f.salesRepo.EXPECT().TopProducts(gomock.Any(), domain.DateRange{}, 5).Return([]domain.TopProduct{}, nil)

	written, err := f.service.Warm(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 17, written)
	assert.Equal(t, 17, f.store.Len())
}

func TestService_ListPlatformRows(t *testing.T) {
	f := newFixture(t)
	f.platformRepo.EXPECT().ListFacebook(gomock.Any(), domain.DateRange{}).Return(facebookRows, nil)

	rows, err := f.service.ListPlatformRows(context.Background(), domain.PlatformFacebook)
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	_, err = f.service.ListPlatformRows(context.Background(), domain.PlatformAll)
	assert.ErrorIs(t, err, domain.ErrUnknownPlatform)
}

func TestService_RangedSummaries(t *testing.T) {
	dr, err := domain.ParseDateRange("2024-01-01", "2024-03-31")
	require.NoError(t, err)

	tests := []struct {
		name     string
		setup    func(f *fixture)
		run      func(f *fixture) (any, error)
		validate func(t *testing.T, got any, err error)
	}{
		{
			name: "top products are ranked within the range",
			setup: func(f *fixture) {
				f.salesRepo.EXPECT().TopProducts(gomock.Any(), dr, 5).Return([]domain.TopProduct{{ProductName: "Lens", Sales: 90}}, nil)
			},
			run: func(f *fixture) (any, error) { return f.service.TopProducts(context.Background(), dr) },
			validate: func(t *testing.T, got any, err error) {
				require.NoError(t, err)
				assert.Equal(t, []domain.TopProduct{{ProductName: "Lens", Sales: 90}}, got)
			},
		},
		{
			name: "tiktok totals are summed within the range",
			setup: func(f *fixture) {
				f.platformRepo.EXPECT().TikTokTotals(gomock.Any(), dr).Return(int64(400), int64(25), nil)
			},
			run: func(f *fixture) (any, error) { return f.service.TikTokSummary(context.Background(), dr) },
			validate: func(t *testing.T, got any, err error) {
				require.NoError(t, err)
				assert.Equal(t, &TikTokSummary{TotalReach: 400, TotalEngagement: 25}, got)
			},
		},
		{
			name: "repository failure is wrapped",
			setup: func(f *fixture) {
				f.platformRepo.EXPECT().TikTokTotals(gomock.Any(), dr).Return(int64(0), int64(0), assert.AnError)
			},
			run: func(f *fixture) (any, error) { return f.service.TikTokSummary(context.Background(), dr) },
			validate: func(t *testing.T, _ any, err error) {
				assert.ErrorIs(t, err, assert.AnError)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			got, err := tt.run(f)
			tt.validate(t, got, err)
		})
	}
}
