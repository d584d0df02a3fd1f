package scheduler

//go:generate mockgen -source=cache_warmup.go -destination=mocks/cache_warmup.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/social-insights-api/internal/config"
)

const (
	JobCacheWarmup = "cache-warmup"

	warmupTimeout = 5 * time.Minute
)

// Warmer rebuilds the cached dashboard views.
type Warmer interface {
	Warm(ctx context.Context) (int, error)
}

// CacheWarmupService periodically rebuilds every dashboard view.
type CacheWarmupService struct {
	scheduler *gocron.Scheduler
	config    config.CacheWarmup
	warmer    Warmer
	guard     *jobGuard
}

func NewCacheWarmupService(warmer Warmer, cfg config.CacheWarmup, recorder JobRecorder) *CacheWarmupService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.CronSchedule,
		"enabled":       cfg.Enabled,
	}).Info("Cache warmup scheduler configured")

	return &CacheWarmupService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    cfg,
		warmer:    warmer,
		guard:     &jobGuard{name: JobCacheWarmup, recorder: recorder},
	}
}

func (s *CacheWarmupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cache warmup disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Starting cache warmup scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.warm(ctx)
	})
	if err != nil {
		return fmt.Errorf("schedule cache warmup: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Stopping cache warmup scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *CacheWarmupService) warm(ctx context.Context) bool {
	return s.guard.run(func() error {
		runCtx, cancel := context.WithTimeout(ctx, warmupTimeout)
		defer cancel()

		written, err := s.warmer.Warm(runCtx)
		if err != nil {
			logrus.WithError(err).WithField("written", written).Error("Cache warmup failed")
			return err
		}

		logrus.WithField("entries", written).Info("Cache warmup finished")
		return nil
	})
}

// TriggerManualSync starts a run in the background unless one is going.
func (s *CacheWarmupService) TriggerManualSync() {
	if s.guard.isRunning() {
		logrus.Info("Cache warmup already running, ignoring manual request")
		return
	}

	logrus.Info("Starting manual cache warmup")
	go s.warm(context.Background())
}

func (s *CacheWarmupService) GetStatus() map[string]any {
	status := s.guard.status()
	status["sync_enabled"] = s.config.Enabled
	status["sync_cron"] = s.config.CronSchedule
	return status
}
