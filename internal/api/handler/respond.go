package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/pkg/apiErrors"
	"github.com/vfg2006/social-insights-api/pkg/log"
	"github.com/vfg2006/social-insights-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Error("error encoding response")
	}
}

func currentClaims(w http.ResponseWriter, r *http.Request) (*domain.Claims, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "User is not authenticated", nil)
	}
	return claims, ok
}

// isBadInput reports errors caused by query parameters rather than the server.
func isBadInput(err error) bool {
	return errors.Is(err, domain.ErrUnknownPlatform) ||
		errors.Is(err, domain.ErrUnknownTimeWindow) ||
		errors.Is(err, domain.ErrUnknownMetric) ||
		errors.Is(err, domain.ErrInvalidDateRange)
}

// writeServiceError answers 400 for bad input and 500 otherwise, logging the
// latter with the request's correlation id.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, message string) {
	if isBadInput(err) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error(message)
	apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, message, nil)
}

func dateRangeFromQuery(r *http.Request) (domain.DateRange, error) {
	q := r.URL.Query()
	return domain.ParseDateRange(q.Get("start_date"), q.Get("end_date"))
}
