package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/pkg/apiErrors"
)

// RequireRoles restricts a route to users holding at least one of allowed.
func RequireRoles(allowed ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				logrus.Warn("Access attempt without authentication")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "User is not authenticated", nil)
				return
			}

			if len(allowed) > 0 && !claims.HasAnyRole(allowed...) {
				logrus.WithFields(logrus.Fields{
					"user_id": claims.UID,
					"roles":   claims.Roles,
					"path":    r.URL.Path,
				}).Warn("Access denied")
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "You do not have permission to access this resource", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func AdminOnly() func(http.Handler) http.Handler {
	return RequireRoles(domain.RoleAdmin)
}

// UploadRoles allows the roles that may upload data files.
func UploadRoles() func(http.Handler) http.Handler {
	return RequireRoles(domain.RoleAdmin, domain.RoleMarketingTeam)
}

// AllRoles only requires an authenticated user.
func AllRoles() func(http.Handler) http.Handler {
	return RequireRoles()
}
