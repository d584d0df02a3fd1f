package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/internal/usecases/dashboard"
	"github.com/vfg2006/social-insights-api/pkg/apiErrors"
)

func DashboardPlatform(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		platform, err := domain.ParsePlatform(q.Get("platform"))
		if err != nil {
			writeServiceError(w, r, err, "Invalid platform")
			return
		}
		window, err := domain.ParseTimeWindow(q.Get("time_range"))
		if err != nil {
			writeServiceError(w, r, err, "Invalid time range")
			return
		}

		view, err := service.Platform(r.Context(), platform, window)
		if err != nil {
			writeServiceError(w, r, err, "Error loading platform data")
			return
		}

		writeJSON(w, http.StatusOK, view)
	}
}

func DashboardSales(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		window, err := domain.ParseTimeWindow(r.URL.Query().Get("time_range"))
		if err != nil {
			writeServiceError(w, r, err, "Invalid time range")
			return
		}

		view, err := service.Sales(r.Context(), window)
		if err != nil {
			writeServiceError(w, r, err, "Error loading sales data")
			return
		}

		writeJSON(w, http.StatusOK, view)
	}
}

func DashboardTopPerformers(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := service.TopPerformers(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Error loading top performers")
			return
		}

		writeJSON(w, http.StatusOK, view)
	}
}

// DashboardEngagementGoal reads an optional numeric goal; without one the
// configured goal applies.
func DashboardEngagementGoal(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		window, err := domain.ParseTimeWindow(q.Get("time_range"))
		if err != nil {
			writeServiceError(w, r, err, "Invalid time range")
			return
		}

		var goal *float64
		if raw := q.Get("goal"); raw != "" {
			parsed, err := strconv.ParseFloat(raw, 64)
			if err != nil || parsed < 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "goal must be a non-negative number", nil)
				return
			}
			goal = &parsed
		}

		view, err := service.EngagementGoal(r.Context(), window, goal)
		if err != nil {
			writeServiceError(w, r, err, "Error loading engagement goal")
			return
		}

		writeJSON(w, http.StatusOK, view)
	}
}

func DashboardTrend(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		platform, err := domain.ParsePlatform(q.Get("platform"))
		if err != nil {
			writeServiceError(w, r, err, "Invalid platform")
			return
		}
		metric, err := domain.ParseMetricType(q.Get("metric"))
		if err != nil {
			writeServiceError(w, r, err, "Invalid metric")
			return
		}
		window, err := domain.ParseTimeWindow(q.Get("time_range"))
		if err != nil {
			writeServiceError(w, r, err, "Invalid time range")
			return
		}

		view, err := service.Trend(r.Context(), platform, metric, window)
		if err != nil {
			writeServiceError(w, r, err, "Error loading trend")
			return
		}

		writeJSON(w, http.StatusOK, view)
	}
}

func DashboardChart(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		inst, err := service.Chart(id)
		if err != nil {
			if errors.Is(err, dashboard.ErrChartNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)
				return
			}
			writeServiceError(w, r, err, "Error loading chart")
			return
		}

		writeJSON(w, http.StatusOK, inst)
	}
}
