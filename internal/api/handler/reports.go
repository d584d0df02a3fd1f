package handler

import (
	"net/http"

	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/internal/usecases/reporting"
	"github.com/vfg2006/social-insights-api/pkg/apiErrors"
)

func PerformanceData(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dr, err := dateRangeFromQuery(r)
		if err != nil {
			writeServiceError(w, r, err, "Invalid date range")
			return
		}

		platform, err := domain.ParsePlatform(r.URL.Query().Get("platform"))
		if err != nil {
			writeServiceError(w, r, err, "Invalid platform")
			return
		}

		report, err := service.Performance(r.Context(), dr, platform)
		if err != nil {
			writeServiceError(w, r, err, "Error building performance data")
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

func PredictiveAnalytics(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metric, err := domain.ParseMetricType(r.URL.Query().Get("metric_type"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid metric_type. Use sales, engagement or reach.", nil)
			return
		}

		report, err := service.Predictive(r.Context(), metric)
		if err != nil {
			writeServiceError(w, r, err, "Error building forecast")
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

func CorrelationAnalysis(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dr, err := dateRangeFromQuery(r)
		if err != nil {
			writeServiceError(w, r, err, "Invalid date range")
			return
		}

		platform, err := domain.ParsePlatform(r.URL.Query().Get("platform"))
		if err != nil {
			writeServiceError(w, r, err, "Invalid platform")
			return
		}

		report, err := service.Correlation(r.Context(), dr, platform)
		if err != nil {
			writeServiceError(w, r, err, "Error building correlation analysis")
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}
