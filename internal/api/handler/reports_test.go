package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/social-insights-api/internal/domain"
	reportmocks "github.com/vfg2006/social-insights-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/social-insights-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestPredictiveAnalytics(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		setup      func(m *reportmocks.MockReporter)
		wantStatus int
	}{
		{
			name:  "sales forecast",
			query: "?metric_type=sales",
			setup: func(m *reportmocks.MockReporter) {
				m.EXPECT().Predictive(gomock.Any(), domain.MetricSales).
					Return(&domain.PredictiveReport{Recommendation: "Sales are trending up."}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing metric",
			query:      "",
			setup:      func(m *reportmocks.MockReporter) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown metric",
			query:      "?metric_type=followers",
			setup:      func(m *reportmocks.MockReporter) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := reportmocks.NewMockReporter(ctrl)
			tt.setup(service)

			rec := httptest.NewRecorder()
			PredictiveAnalytics(service).ServeHTTP(rec, newRequest(http.MethodGet, "/api/predictive-analytics"+tt.query, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusBadRequest {
				assert.Equal(t, apiErrors.ErrInvalidRequest, decodeError(t, rec).Code)
			}
		})
	}
}

func TestPerformanceData(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := reportmocks.NewMockReporter(ctrl)
	service.EXPECT().Performance(gomock.Any(), gomock.Any(), domain.PlatformTikTok).
		Return(&domain.PerformanceReport{}, nil)

	rec := httptest.NewRecorder()
	PerformanceData(service).ServeHTTP(rec, newRequest(http.MethodGet, "/api/performance-data?platform=tiktok", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCorrelationAnalysis(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := reportmocks.NewMockReporter(ctrl)

	rec := httptest.NewRecorder()
	CorrelationAnalysis(service).ServeHTTP(rec, newRequest(http.MethodGet, "/api/correlation-analysis?start_date=01/02/2024", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
