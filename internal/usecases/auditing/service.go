// Package auditing records and lists user activity.
package auditing

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/social-insights-api/infrastructure/repository"
	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/pkg/utils"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

var ErrMissingAction = errors.New("action is required")

type Auditor interface {
	LogActivity(ctx context.Context, uid string, req domain.LogActivityRequest) (*domain.ActivityLog, error)
	ListActivity(ctx context.Context, filter domain.ActivityLogFilter) (*domain.ActivityLogPage, error)
	PurgeOlderThan(ctx context.Context, days int) (int64, error)
}

type Service struct {
	activityRepo repository.ActivityLogRepository
	now          func() time.Time
}

func NewService(activityRepo repository.ActivityLogRepository) *Service {
	return &Service{
		activityRepo: activityRepo,
		now:          time.Now,
	}
}

func (s *Service) LogActivity(ctx context.Context, uid string, req domain.LogActivityRequest) (*domain.ActivityLog, error) {
	action := utils.SanitizeText(req.Action)
	if action == "" {
		return nil, ErrMissingAction
	}

	entry := &domain.ActivityLog{
		ID:        utils.NewUUID(),
		UserID:    uid,
		Action:    action,
		Details:   utils.SanitizeText(req.Details),
		Timestamp: s.now().UTC(),
	}

	if err := s.activityRepo.Insert(ctx, entry); err != nil {
		return nil, fmt.Errorf("log activity: %w", err)
	}

	return entry, nil
}

// ListActivity applies page and limit defaults before querying.
func (s *Service) ListActivity(ctx context.Context, filter domain.ActivityLogFilter) (*domain.ActivityLogPage, error) {
	if filter.Page < 1 {
		filter.Page = DefaultPage
	}
	if filter.Limit < 1 {
		filter.Limit = DefaultLimit
	}
	if filter.Limit > MaxLimit {
		filter.Limit = MaxLimit
	}

	logs, total, err := s.activityRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}

	return &domain.ActivityLogPage{
		Logs:       logs,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// PurgeOlderThan deletes entries whose timestamp is more than days old.
func (s *Service) PurgeOlderThan(ctx context.Context, days int) (int64, error) {
	if days <= 0 {
		return 0, fmt.Errorf("retention days must be positive, got %d", days)
	}

	cutoff := s.now().UTC().AddDate(0, 0, -days)
	deleted, err := s.activityRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge activity: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"cutoff":  cutoff.Format(time.RFC3339),
		"deleted": deleted,
	}).Info("Activity logs purged")

	return deleted, nil
}
