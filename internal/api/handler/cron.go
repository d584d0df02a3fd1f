package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/social-insights-api/internal/scheduler"
	"github.com/vfg2006/social-insights-api/pkg/apiErrors"
)

const CronJobTypeAll = "all"

// CronJob is a scheduled job that can also be run on demand.
type CronJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices holds the jobs that can be run manually.
type CronJobServices struct {
	CacheWarmupService       *scheduler.CacheWarmupService
	ActivityRetentionService *scheduler.ActivityRetentionService
}

func (s CronJobServices) jobs() map[string]CronJob {
	jobs := make(map[string]CronJob)
	if s.CacheWarmupService != nil {
		jobs[scheduler.JobCacheWarmup] = s.CacheWarmupService
	}
	if s.ActivityRetentionService != nil {
		jobs[scheduler.JobActivityRetention] = s.ActivityRetentionService
	}
	return jobs
}

// RunCronJob triggers one job, or every job for "all".
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Cron job type is required", nil)
			return
		}

		jobs := services.jobs()

		switch cronType {
		case CronJobTypeAll:
			for _, job := range jobs {
				job.TriggerManualSync()
			}
		case scheduler.JobCacheWarmup, scheduler.JobActivityRetention:
			job, ok := jobs[cronType]
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Cron job "+cronType+" is not available", nil)
				return
			}
			job.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest,
				"Invalid cron job type. Accepted values: cache-warmup, activity-retention, all", nil)
			return
		}

		logrus.WithField("type", cronType).Info("Cron job triggered manually")
		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Cron job started",
			"type":    cronType,
		})
	}
}

func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any)
		for name, job := range services.jobs() {
			status[name] = job.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
