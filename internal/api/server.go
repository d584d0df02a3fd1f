package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/social-insights-api/internal/api/handler"
	"github.com/vfg2006/social-insights-api/internal/api/handler/router"
	"github.com/vfg2006/social-insights-api/internal/config"
	"github.com/vfg2006/social-insights-api/internal/usecases/auditing"
	"github.com/vfg2006/social-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/social-insights-api/internal/usecases/dashboard"
	"github.com/vfg2006/social-insights-api/internal/usecases/ingesting"
	"github.com/vfg2006/social-insights-api/internal/usecases/reporting"
	"github.com/vfg2006/social-insights-api/pkg/metrics"
	"github.com/vfg2006/social-insights-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

// Services are the use cases served over HTTP.
type Services struct {
	Authenticator authenticating.Authenticator
	Dashboard     dashboard.Dashboarder
	Reporter      reporting.Reporter
	Ingester      ingesting.Ingester
	Auditor       auditing.Auditor
	CronJobs      handler.CronJobServices
	Metrics       *metrics.Manager

	// Database, when set, is pinged by the healthcheck.
	Database handler.Pinger
}

// NewHandler builds the routed handler wrapped in the global middleware chain.
func NewHandler(cfg *config.Config, services Services) http.Handler {
	configs := []router.ConfigRouter{
		router.WithRoutes(handler.Healthcheck(services.Database)...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.User(services.Authenticator)...),
		router.WithRoutes(handler.Data(services.Dashboard)...),
		router.WithRoutes(handler.Reports(services.Reporter)...),
		router.WithRoutes(handler.Dashboard(services.Dashboard)...),
		router.WithRoutes(handler.Upload(services.Ingester, cfg.Upload.MaxBytes)...),
		router.WithRoutes(handler.Activity(services.Auditor)...),
		router.WithRoutes(handler.CronJobs(services.CronJobs)...),
	}
	if services.Metrics != nil {
		configs = append(configs,
			router.WithRoutes(handler.Metrics(services.Metrics.Handler())...),
			router.WithObserver(services.Metrics),
		)
	}

	rt := router.New(configs...)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.CORS.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(cfg *config.Config, services Services) (*Server, error) {
	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, services),
			ReadHeaderTimeout: 2 * time.Second,
			ReadTimeout:       cfg.Server.ReadTimeout,
			WriteTimeout:      cfg.Server.WriteTimeout,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Server stopped unexpectedly")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Interrupt signal received")
	case <-ctx.Done():
		logrus.Info("Application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Shutting down server")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Error during server shutdown")
		return err
	}

	logrus.Info("Server stopped")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("HTTP server shut down")
	return nil
}
