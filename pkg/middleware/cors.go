package middleware

import (
	"net/http"
	"strings"
)

const (
	corsAllowMethods  = "GET, POST, PUT, DELETE, OPTIONS"
	corsAllowHeaders  = "Accept, Authorization, Content-Type, X-Requested-With"
	corsExposeHeaders = "X-Correlation-ID"
	corsMaxAge        = "86400"
)

// originMatches accepts an exact origin, "*", or a single leading wildcard
// label such as "https://*.example.com".
func originMatches(pattern, origin string) bool {
	if pattern == "*" || pattern == origin {
		return true
	}

	scheme, host, ok := strings.Cut(pattern, "://*.")
	if !ok {
		return false
	}

	rest, found := strings.CutPrefix(origin, scheme+"://")
	if !found {
		return false
	}
	return strings.HasSuffix(rest, "."+host)
}

// Cors answers preflight requests and echoes allowed origins back so the
// dashboard can send credentials.
func Cors(allowedOrigins []string) func(http.Handler) http.Handler {
	allowed := func(origin string) bool {
		for _, pattern := range allowedOrigins {
			if originMatches(pattern, origin) {
				return true
			}
		}
		return false
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if origin := r.Header.Get("Origin"); origin != "" && allowed(origin) {
				h := w.Header()
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Methods", corsAllowMethods)
				h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
				h.Set("Access-Control-Expose-Headers", corsExposeHeaders)
				h.Set("Access-Control-Allow-Credentials", "true")
				h.Set("Access-Control-Max-Age", corsMaxAge)
				h.Add("Vary", "Origin")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
