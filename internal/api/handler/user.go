package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/social-insights-api/pkg/apiErrors"
)

type CreateUserResponse struct {
	Message string `json:"message"`
	UID     string `json:"uid"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func ListUsers(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := service.ListUsers(r.Context())
		if err != nil {
			handleAuthError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, users)
	}
}

func CreateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}

		user, err := service.CreateUser(r.Context(), &req)
		if err != nil {
			handleAuthError(w, err)
			return
		}

		logrus.WithField("uid", user.UID).Info("user created")
		writeJSON(w, http.StatusCreated, CreateUserResponse{
			Message: "User created successfully",
			UID:     user.UID,
		})
	}
}

// UpdateUser changes the display name and, when roles is present, replaces
// the user's roles.
func UpdateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := httprouter.ParamsFromContext(r.Context()).ByName("uid")

		var req domain.UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}
		req.UID = uid

		user, err := service.UpdateUser(r.Context(), &req)
		if err != nil {
			handleAuthError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, user.Record())
	}
}

func DeleteUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentClaims(w, r)
		if !ok {
			return
		}

		uid := httprouter.ParamsFromContext(r.Context()).ByName("uid")
		if err := service.DeleteUser(r.Context(), claims.UID, uid); err != nil {
			handleAuthError(w, err)
			return
		}

		logrus.WithFields(logrus.Fields{"uid": uid, "deleted_by": claims.UID}).Info("user deleted")
		writeJSON(w, http.StatusOK, MessageResponse{Message: "User deleted successfully"})
	}
}
