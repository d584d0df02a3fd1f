package handler

import (
	"net/http"

	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/internal/usecases/dashboard"
)

type SalesSummaryResponse struct {
	TotalSales float64 `json:"total_sales"`
}

type ReachSummaryResponse struct {
	TotalTikTokReach int64 `json:"total_tiktok_reach"`
}

type EngagementSummaryResponse struct {
	TotalTikTokEngagement int64 `json:"total_tiktok_engagement"`
}

// ListPlatformData returns every stored row of platform, oldest first.
func ListPlatformData(service dashboard.Dashboarder, platform domain.Platform) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := service.ListPlatformRows(r.Context(), platform)
		if err != nil {
			writeServiceError(w, r, err, "Error fetching "+string(platform)+" data")
			return
		}
		if rows == nil {
			rows = []domain.RawRecord{}
		}

		writeJSON(w, http.StatusOK, rows)
	}
}

func ListSalesData(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dr, err := dateRangeFromQuery(r)
		if err != nil {
			writeServiceError(w, r, err, "Invalid date range")
			return
		}

		rows, err := service.ListSales(r.Context(), dr)
		if err != nil {
			writeServiceError(w, r, err, "Error fetching sales data")
			return
		}
		if rows == nil {
			rows = []domain.RawRecord{}
		}

		writeJSON(w, http.StatusOK, rows)
	}
}

func SalesSummary(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dr, err := dateRangeFromQuery(r)
		if err != nil {
			writeServiceError(w, r, err, "Invalid date range")
			return
		}

		total, err := service.SalesSummary(r.Context(), dr)
		if err != nil {
			writeServiceError(w, r, err, "Error fetching sales summary")
			return
		}

		writeJSON(w, http.StatusOK, SalesSummaryResponse{TotalSales: total})
	}
}

func TopSales(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dr, err := dateRangeFromQuery(r)
		if err != nil {
			writeServiceError(w, r, err, "Invalid date range")
			return
		}

		products, err := service.TopProducts(r.Context(), dr)
		if err != nil {
			writeServiceError(w, r, err, "Error fetching top products")
			return
		}
		if products == nil {
			products = []domain.TopProduct{}
		}

		writeJSON(w, http.StatusOK, products)
	}
}

func TikTokReachSummary(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dr, err := dateRangeFromQuery(r)
		if err != nil {
			writeServiceError(w, r, err, "Invalid date range")
			return
		}

		summary, err := service.TikTokSummary(r.Context(), dr)
		if err != nil {
			writeServiceError(w, r, err, "Error fetching TikTok reach")
			return
		}

		writeJSON(w, http.StatusOK, ReachSummaryResponse{TotalTikTokReach: summary.TotalReach})
	}
}

func TikTokEngagementSummary(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dr, err := dateRangeFromQuery(r)
		if err != nil {
			writeServiceError(w, r, err, "Invalid date range")
			return
		}

		summary, err := service.TikTokSummary(r.Context(), dr)
		if err != nil {
			writeServiceError(w, r, err, "Error fetching TikTok engagement")
			return
		}

		writeJSON(w, http.StatusOK, EngagementSummaryResponse{TotalTikTokEngagement: summary.TotalEngagement})
	}
}
