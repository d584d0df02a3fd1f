package handler

import (
	"net/http"

	"github.com/vfg2006/social-insights-api/internal/api/handler/router"
	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/internal/usecases/auditing"
	"github.com/vfg2006/social-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/social-insights-api/internal/usecases/dashboard"
	"github.com/vfg2006/social-insights-api/internal/usecases/ingesting"
	"github.com/vfg2006/social-insights-api/internal/usecases/reporting"
	"github.com/vfg2006/social-insights-api/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

// Metrics exposes the Prometheus registry; a nil handler registers nothing.
func Metrics(h http.Handler) []router.Route {
	if h == nil {
		return nil
	}
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: h,
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/api/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/api/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/api/users/:uid",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/api/users/:uid",
			Method:      http.MethodDelete,
			Handler:     DeleteUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Data(service dashboard.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:        "/api/facebookdata",
			Method:      http.MethodGet,
			Handler:     ListPlatformData(service, domain.PlatformFacebook),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/api/tiktokdata",
			Method:      http.MethodGet,
			Handler:     ListPlatformData(service, domain.PlatformTikTok),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/api/salesdata",
			Method:      http.MethodGet,
			Handler:     ListSalesData(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/api/sales/summary",
			Method:      http.MethodGet,
			Handler:     SalesSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/api/sales/top",
			Method:      http.MethodGet,
			Handler:     TopSales(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/api/tiktok/reach_summary",
			Method:      http.MethodGet,
			Handler:     TikTokReachSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/api/tiktok/engagement_summary",
			Method:      http.MethodGet,
			Handler:     TikTokEngagementSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/api/performance-data",
			Method:      http.MethodGet,
			Handler:     PerformanceData(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/api/predictive-analytics",
			Method:      http.MethodGet,
			Handler:     PredictiveAnalytics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/api/correlation-analysis",
			Method:      http.MethodGet,
			Handler:     CorrelationAnalysis(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Dashboard(service dashboard.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:        "/api/dashboard/platform",
			Method:      http.MethodGet,
			Handler:     DashboardPlatform(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/api/dashboard/sales",
			Method:      http.MethodGet,
			Handler:     DashboardSales(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/api/dashboard/top-performers",
			Method:      http.MethodGet,
			Handler:     DashboardTopPerformers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/api/dashboard/engagement-goal",
			Method:      http.MethodGet,
			Handler:     DashboardEngagementGoal(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/api/dashboard/trend",
			Method:      http.MethodGet,
			Handler:     DashboardTrend(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/api/dashboard/charts/:id",
			Method:      http.MethodGet,
			Handler:     DashboardChart(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Upload(service ingesting.Ingester, maxBytes int64) []router.Route {
	return []router.Route{
		{
			Path:        "/api/upload-data",
			Method:      http.MethodPost,
			Handler:     UploadData(service, maxBytes),
			Middlewares: []func(http.Handler) http.Handler{middleware.UploadRoles()},
		},
	}
}

func Activity(service auditing.Auditor) []router.Route {
	return []router.Route{
		{
			Path:        "/api/log_activity",
			Method:      http.MethodPost,
			Handler:     LogActivity(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/api/activity_logs",
			Method:      http.MethodGet,
			Handler:     ListActivityLogs(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
