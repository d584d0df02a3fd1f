package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/social-insights-api/pkg/apiErrors"
	"github.com/vfg2006/social-insights-api/pkg/middleware"
)

var (
	WithRoutes = func(routes ...Route) ConfigRouter {
		return func(router *Router) {
			router.pending = append(router.pending, routes...)
		}
	}

	// WithObserver labels request metrics of every route with its pattern.
	WithObserver = func(observer middleware.RequestObserver) ConfigRouter {
		return func(router *Router) {
			router.observer = observer
		}
	}
)

type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler // run in order, before Handler
}

type Router struct {
	router   *httprouter.Router
	observer middleware.RequestObserver
	pending  []Route
}

type ConfigRouter func(router *Router)

// New applies every config, then registers the collected routes, so the
// order of WithObserver and WithRoutes does not matter.
func New(configs ...ConfigRouter) Router {
	router := &Router{
		router: httprouter.New(),
	}
	router.router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Route not found", nil)
	})
	router.router.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, "Method not allowed", nil)
	})

	for _, config := range configs {
		config(router)
	}

	router.AddRoutes(router.pending...)
	router.pending = nil

	return *router
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// AddRoutes registers routes with their own middlewares, the metrics one
// outermost.
func (r Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		var handler http.Handler = route.Handler

		for i := len(route.Middlewares) - 1; i >= 0; i-- {
			handler = route.Middlewares[i](handler)
		}

		if r.observer != nil {
			handler = middleware.MetricsMiddleware(r.observer, route.Path)(handler)
		}

		r.router.Handler(route.Method, route.Path, handler)
	}
}
