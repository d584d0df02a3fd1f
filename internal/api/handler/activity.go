package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/internal/usecases/auditing"
	"github.com/vfg2006/social-insights-api/pkg/apiErrors"
)

type LogActivityResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

func LogActivity(service auditing.Auditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentClaims(w, r)
		if !ok {
			return
		}

		var req domain.LogActivityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}

		entry, err := service.LogActivity(r.Context(), claims.UID, req)
		if err != nil {
			if errors.Is(err, auditing.ErrMissingAction) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Action is required", nil)
				return
			}
			writeServiceError(w, r, err, "Error logging activity")
			return
		}

		writeJSON(w, http.StatusCreated, LogActivityResponse{Message: "Activity logged", ID: entry.ID})
	}
}

// ListActivityLogs pages through the activity log, newest first.
func ListActivityLogs(service auditing.Auditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		page, err := optionalInt(q.Get("page"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "page must be a number", nil)
			return
		}
		limit, err := optionalInt(q.Get("limit"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit must be a number", nil)
			return
		}

		dr, err := dateRangeFromQuery(r)
		if err != nil {
			writeServiceError(w, r, err, "Invalid date range")
			return
		}

		result, err := service.ListActivity(r.Context(), domain.ActivityLogFilter{
			Page:   page,
			Limit:  limit,
			Range:  dr,
			UserID: q.Get("user_id"),
		})
		if err != nil {
			writeServiceError(w, r, err, "Error fetching activity logs")
			return
		}
		if result.Logs == nil {
			result.Logs = []*domain.ActivityLog{}
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func optionalInt(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
