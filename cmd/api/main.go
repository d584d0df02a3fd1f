package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/social-insights-api/infrastructure/database/migrations"
	"github.com/vfg2006/social-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/social-insights-api/infrastructure/repository"
	"github.com/vfg2006/social-insights-api/internal/api"
	"github.com/vfg2006/social-insights-api/internal/api/handler"
	"github.com/vfg2006/social-insights-api/internal/cache"
	"github.com/vfg2006/social-insights-api/internal/chart"
	"github.com/vfg2006/social-insights-api/internal/config"
	"github.com/vfg2006/social-insights-api/internal/scheduler"
	"github.com/vfg2006/social-insights-api/internal/usecases/auditing"
	"github.com/vfg2006/social-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/social-insights-api/internal/usecases/dashboard"
	"github.com/vfg2006/social-insights-api/internal/usecases/ingesting"
	"github.com/vfg2006/social-insights-api/internal/usecases/reporting"
	"github.com/vfg2006/social-insights-api/pkg/metrics"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Invalid log level %q, using info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Log level set to %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Database.MigrateOnStart {
		if err := migrations.Up(pgConn.DB); err != nil {
			logrus.WithError(err).Fatal("Error applying migrations")
		}
	}

	metricsManager := metrics.NewManager(
		metrics.WithNamespace(cfg.Metrics.Namespace),
		metrics.WithMetricsEnabled(cfg.Metrics.Enabled),
	)

	policy, err := cache.LoadPolicy(cfg.Cache.PolicyFile, cfg.Cache.TTL)
	if err != nil {
		logrus.WithError(err).Fatal("Error loading cache policy")
	}
	store := cache.New(policy, cache.WithObserver(metricsManager.CacheLookup))
	charts := chart.NewRegistry()

	userRepo := repository.NewUserRepository(pgConn)
	platformRepo := repository.NewPlatformDataRepository(pgConn)
	salesRepo := repository.NewSalesRepository(pgConn)
	activityRepo := repository.NewActivityLogRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg.Auth)
	if err := authenticator.EnsureAdmin(ctx, cfg.Auth.BootstrapAdminEmail, cfg.Auth.BootstrapAdminPassword); err != nil {
		logrus.WithError(err).Error("Error creating bootstrap admin")
	}

	dashboardService := dashboard.NewService(platformRepo, salesRepo, store, charts, cfg.Analytics)
	reportingService := reporting.NewService(platformRepo, salesRepo, cfg.Analytics)
	ingestingService := ingesting.NewService(platformRepo, salesRepo, dashboardService, metricsManager)
	auditingService := auditing.NewService(activityRepo)

	cacheWarmupService := scheduler.NewCacheWarmupService(dashboardService, cfg.CacheWarmup, metricsManager)
	activityRetentionService := scheduler.NewActivityRetentionService(auditingService, cfg.ActivityRetention, metricsManager)

	if err := cacheWarmupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Error starting cache warmup scheduler")
	}
	if err := activityRetentionService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Error starting activity retention scheduler")
	}

	server, err := api.New(cfg, api.Services{
		Authenticator: authenticator,
		Dashboard:     dashboardService,
		Reporter:      reportingService,
		Ingester:      ingestingService,
		Auditor:       auditingService,
		CronJobs: handler.CronJobServices{
			CacheWarmupService:       cacheWarmupService,
			ActivityRetentionService: activityRetentionService,
		},
		Metrics:  metricsManager,
		Database: pgConn,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Error connecting to PostgreSQL")
	}

	logrus.Info("Connected to PostgreSQL")
	return conn
}
