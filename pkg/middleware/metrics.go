package middleware

import (
	"net/http"
	"time"
)

// RequestObserver records one finished request.
type RequestObserver interface {
	ObserveHTTPRequest(route, method string, status int, elapsed time.Duration)
}

// MetricsMiddleware is applied per route so the route pattern, not the raw
// path, becomes the label.
func MetricsMiddleware(observer RequestObserver, route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if observer == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			lrw := newLoggingResponseWriter(w)
			next.ServeHTTP(lrw, r)
			observer.ObserveHTTPRequest(route, r.Method, lrw.statusCode, time.Since(start))
		})
	}
}
