package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/social-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/social-insights-api/internal/config"
	"github.com/vfg2006/social-insights-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func day(s string) time.Time {
	t, _ := time.Parse(domain.DateLayout, s)
	return t
}

func TestSocialRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPlatformRepo := mocks.NewMockPlatformDataRepository(ctrl)

	tests := []struct {
		name     string
		platform domain.Platform
		setup    func()
		validate func(t *testing.T, records []domain.MetricRecord, err error)
	}{
		{
			name:     "all merges both platforms by date",
			platform: domain.PlatformAll,
			setup: func() {
				mockPlatformRepo.EXPECT().ListTikTok(gomock.Any(), gomock.Any()).Return([]domain.RawRecord{
					{"date": "2024-01-01", "views": 100, "likes": 1, "comments": 2, "shares": 3},
				}, nil)
				mockPlatformRepo.EXPECT().ListFacebook(gomock.Any(), gomock.Any()).Return([]domain.RawRecord{
					{"date": "2024-01-01", "reach": 50, "likes": 4, "comments": 0, "shares": 0},
					{"date": "2024-01-02", "reach": 10, "likes": 1, "comments": 1, "shares": 1},
				}, nil)
			},
			validate: func(t *testing.T, records []domain.MetricRecord, err error) {
				require.NoError(t, err)
				require.Len(t, records, 2)
				assert.Equal(t, int64(150), records[0].Reach)
				assert.Equal(t, int64(10), records[0].Engagement)
				assert.Equal(t, day("2024-01-02"), records[1].Date)
			},
		},
		{
			name:     "single platform only queries its table",
			platform: domain.PlatformTikTok,
			setup: func() {
				mockPlatformRepo.EXPECT().ListTikTok(gomock.Any(), gomock.Any()).Return([]domain.RawRecord{}, nil)
			},
			validate: func(t *testing.T, records []domain.MetricRecord, err error) {
				require.NoError(t, err)
				assert.Empty(t, records)
			},
		},
		{
			name:     "repository error is wrapped",
			platform: domain.PlatformFacebook,
			setup: func() {
				mockPlatformRepo.EXPECT().ListFacebook(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
			},
			validate: func(t *testing.T, records []domain.MetricRecord, err error) {
				assert.ErrorContains(t, err, "load facebook data")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			records, err := SocialRecords(context.Background(), mockPlatformRepo, tt.platform, domain.DateRange{})
			tt.validate(t, records, err)
		})
	}
}

func TestService_Performance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPlatformRepo := mocks.NewMockPlatformDataRepository(ctrl)
	mockSalesRepo := mocks.NewMockSalesRepository(ctrl)
	service := NewService(mockPlatformRepo, mockSalesRepo, config.Analytics{})

	r, err := domain.ParseDateRange("2024-01-01", "2024-01-03")
	require.NoError(t, err)

	mockPlatformRepo.EXPECT().ListTikTok(gomock.Any(), r).Return([]domain.RawRecord{
		{"date": "2024-01-01", "views": 100, "likes": 10, "comments": 0, "shares": 0},
		{"date": "2024-01-03", "views": 200, "likes": 30, "comments": 0, "shares": 0},
	}, nil)
	mockSalesRepo.EXPECT().DailyRevenue(gomock.Any(), r).Return([]domain.DailyRevenue{
		{Date: day("2024-01-02"), Revenue: 40},
		{Date: day("2024-01-03"), Revenue: 60},
	}, nil)

	report, err := service.Performance(context.Background(), r, domain.PlatformTikTok)
	require.NoError(t, err)

	require.Len(t, report.PerformanceChartsData, 3)
	assert.Equal(t, "2024-01-01", report.PerformanceChartsData[0].Date)
	assert.Equal(t, 10.0, report.PerformanceChartsData[0].Engagement)
	assert.Equal(t, int64(0), report.PerformanceChartsData[1].ReachTotal)
	assert.Equal(t, 15.0, report.PerformanceChartsData[2].Engagement)
	assert.Equal(t, 100.0, report.TotalSalesSummary)
	assert.NotEmpty(t, report.PerformanceInsights)
}

func TestService_Predictive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPlatformRepo := mocks.NewMockPlatformDataRepository(ctrl)
	mockSalesRepo := mocks.NewMockSalesRepository(ctrl)
	service := NewService(mockPlatformRepo, mockSalesRepo, config.Analytics{ForecastPeriods: 12, MinimumMonths: 24})
	service.now = func() time.Time { return time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC) }

	t.Run("sales with a short history", func(t *testing.T) {
		mockSalesRepo.EXPECT().DailyRevenue(gomock.Any(), domain.DateRange{}).Return([]domain.DailyRevenue{
			{Date: day("2024-05-01"), Revenue: 10},
		}, nil)

		report, err := service.Predictive(context.Background(), domain.MetricSales)
		require.NoError(t, err)
		assert.Empty(t, report.ForecastData)
		assert.Contains(t, report.Recommendation, "Sales Revenue")
	})

	t.Run("reach over two full years", func(t *testing.T) {
		var rows []domain.RawRecord
		start := time.Date(2022, 1, 10, 0, 0, 0, 0, time.UTC)
		for i := 0; i < 30; i++ {
			rows = append(rows, domain.RawRecord{
				"date":  start.AddDate(0, i, 0).Format(domain.DateLayout),
				"views": 1000,
			})
		}
		mockPlatformRepo.EXPECT().ListTikTok(gomock.Any(), gomock.Any()).Return(rows, nil)
		mockPlatformRepo.EXPECT().ListFacebook(gomock.Any(), gomock.Any()).Return([]domain.RawRecord{}, nil)

		report, err := service.Predictive(context.Background(), domain.MetricReach)
		require.NoError(t, err)
		assert.Len(t, report.HistoricalData, 30)
		assert.Len(t, report.ForecastData, 12)
		assert.Equal(t, "2024-07-01", report.ForecastData[0].Date)
	})
}

func TestService_Correlation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPlatformRepo := mocks.NewMockPlatformDataRepository(ctrl)
	mockSalesRepo := mocks.NewMockSalesRepository(ctrl)
	service := NewService(mockPlatformRepo, mockSalesRepo, config.Analytics{})

	mockPlatformRepo.EXPECT().ListFacebook(gomock.Any(), gomock.Any()).Return([]domain.RawRecord{
		{"date": "2024-01-01", "reach": 10, "likes": 1},
		{"date": "2024-01-02", "reach": 20, "likes": 2},
		{"date": "2024-01-03", "reach": 30, "likes": 3},
	}, nil)
	mockSalesRepo.EXPECT().DailyRevenue(gomock.Any(), gomock.Any()).Return([]domain.DailyRevenue{
		{Date: day("2024-01-01"), Revenue: 5},
		{Date: day("2024-01-02"), Revenue: 6},
		{Date: day("2024-01-03"), Revenue: 7},
	}, nil)

	report, err := service.Correlation(context.Background(), domain.DateRange{}, domain.PlatformFacebook)
	require.NoError(t, err)
	require.NotNil(t, report.Correlations[domain.PairEngageSales])
	assert.Equal(t, 1.0, *report.Correlations[domain.PairEngageSales])
	assert.Len(t, report.ChartData, 3)
}
