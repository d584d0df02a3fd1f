package scheduler

//go:generate mockgen -source=activity_retention.go -destination=mocks/activity_retention.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/social-insights-api/internal/config"
)

const (
	JobActivityRetention = "activity-retention"

	defaultRetentionDays = 365
	purgeTimeout         = 2 * time.Minute
)

type Purger interface {
	PurgeOlderThan(ctx context.Context, days int) (int64, error)
}

// ActivityRetentionService deletes activity log entries past the retention
// window.
type ActivityRetentionService struct {
	scheduler *gocron.Scheduler
	config    config.ActivityRetention
	purger    Purger
	guard     *jobGuard
}

func NewActivityRetentionService(purger Purger, cfg config.ActivityRetention, recorder JobRecorder) *ActivityRetentionService {
	if cfg.Days <= 0 {
		cfg.Days = defaultRetentionDays
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  cfg.CronSchedule,
		"retention_days": cfg.Days,
		"enabled":        cfg.Enabled,
	}).Info("Activity retention scheduler configured")

	return &ActivityRetentionService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    cfg,
		purger:    purger,
		guard:     &jobGuard{name: JobActivityRetention, recorder: recorder},
	}
}

func (s *ActivityRetentionService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Activity retention disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Starting activity retention scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.purge(ctx)
	})
	if err != nil {
		return fmt.Errorf("schedule activity retention: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Stopping activity retention scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *ActivityRetentionService) purge(ctx context.Context) bool {
	return s.guard.run(func() error {
		runCtx, cancel := context.WithTimeout(ctx, purgeTimeout)
		defer cancel()

		deleted, err := s.purger.PurgeOlderThan(runCtx, s.config.Days)
		if err != nil {
			logrus.WithError(err).Error("Activity retention failed")
			return err
		}

		logrus.WithFields(logrus.Fields{
			"deleted":        deleted,
			"retention_days": s.config.Days,
		}).Info("Activity retention finished")
		return nil
	})
}

func (s *ActivityRetentionService) TriggerManualSync() {
	if s.guard.isRunning() {
		logrus.Info("Activity retention already running, ignoring manual request")
		return
	}

	logrus.Info("Starting manual activity retention")
	go s.purge(context.Background())
}

func (s *ActivityRetentionService) GetStatus() map[string]any {
	status := s.guard.status()
	status["sync_enabled"] = s.config.Enabled
	status["sync_cron"] = s.config.CronSchedule
	status["retention_days"] = s.config.Days
	return status
}
