package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/internal/usecases/ingesting"
	"github.com/vfg2006/social-insights-api/pkg/apiErrors"
	"github.com/vfg2006/social-insights-api/pkg/log"
)

const defaultUploadMaxBytes = 32 << 20

// UploadData accepts a multipart form with an app name and one data file.
func UploadData(service ingesting.Ingester, maxBytes int64) http.HandlerFunc {
	if maxBytes <= 0 {
		maxBytes = defaultUploadMaxBytes
	}

	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

		if err := r.ParseMultipartForm(maxBytes); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				apiErrors.WriteError(w, apiErrors.ErrPayloadTooLarge, "The uploaded file is too large.", nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "App name and file are required.", nil)
			return
		}
		defer r.MultipartForm.RemoveAll()

		rawApp := r.FormValue("app")
		file, header, err := r.FormFile("file")
		if rawApp == "" || err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "App name and file are required.", nil)
			return
		}
		defer file.Close()

		app, err := domain.ParseUploadApp(rawApp)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest,
				"Unsupported app name provided: '"+rawApp+"'. Please select 'Facebook', 'TikTok', or 'Sales'.", nil)
			return
		}

		result, err := service.Upload(r.Context(), app, header.Filename, file)
		if err != nil {
			if ve, ok := ingesting.AsValidationError(err); ok {
				apiErrors.WriteError(w, ve.Code, ve.Message, nil)
				return
			}
			log.ForContext(r.Context()).WithError(err).Error("upload failed")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "An error occurred while saving the uploaded data.", nil)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}
