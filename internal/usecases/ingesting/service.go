// Package ingesting turns uploaded Facebook, TikTok and sales files into
// stored rows.
package ingesting

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/social-insights-api/infrastructure/repository"
	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/pkg/apiErrors"
	"github.com/vfg2006/social-insights-api/pkg/utils"
)

type Ingester interface {
	Upload(ctx context.Context, app domain.UploadApp, filename string, r io.Reader) (*domain.UploadResult, error)
}

// CacheInvalidator drops derived views once new rows are stored.
type CacheInvalidator interface {
	Invalidate() int
}

// RowRecorder counts stored rows per table.
type RowRecorder interface {
	UploadRows(table string, n int)
}

type Service struct {
	platformRepo repository.PlatformDataRepository
	salesRepo    repository.SalesRepository
	invalidator  CacheInvalidator
	recorder     RowRecorder
	now          func() time.Time
}

func NewService(
	platformRepo repository.PlatformDataRepository,
	salesRepo repository.SalesRepository,
	invalidator CacheInvalidator,
	recorder RowRecorder,
) *Service {
	return &Service{
		platformRepo: platformRepo,
		salesRepo:    salesRepo,
		invalidator:  invalidator,
		recorder:     recorder,
		now:          time.Now,
	}
}

// Upload parses the file, stores its rows in one transaction per dataset and
// invalidates the dashboard cache.
func (s *Service) Upload(ctx context.Context, app domain.UploadApp, filename string, r io.Reader) (*domain.UploadResult, error) {
	table, err := ParseFile(filename, r)
	if err != nil {
		return nil, err
	}
	if len(table.Rows) == 0 {
		return nil, newValidationError(ErrNoRows, apiErrors.ErrMissingRequiredData, "The uploaded file contains no data rows.")
	}

	batchID := utils.NewBatchID(s.now())
	logger := logrus.WithFields(logrus.Fields{
		"app":      app,
		"file":     filename,
		"batch_id": batchID,
		"rows":     len(table.Rows),
	})
	logger.Info("Processing upload")

	var counts map[string]int
	switch app {
	case domain.UploadFacebook:
		counts, err = s.storeFacebook(ctx, table)
	case domain.UploadTikTok:
		counts, err = s.storeTikTok(ctx, table)
	case domain.UploadSales:
		counts, err = s.storeSales(ctx, table)
	default:
		return nil, newValidationError(domain.ErrUnknownUploadApp, apiErrors.ErrInvalidRequest,
			"Unsupported app name provided: '%s'. Please select 'Facebook', 'TikTok', or 'Sales'.", app)
	}
	if err != nil {
		if _, ok := AsValidationError(err); !ok {
			logger.WithError(err).Error("Upload failed")
		}
		return nil, err
	}

	for name, n := range counts {
		if s.recorder != nil {
			s.recorder.UploadRows(name, n)
		}
	}
	if s.invalidator != nil {
		s.invalidator.Invalidate()
	}

	logger.WithField("stored", counts).Info("Upload stored")

	return &domain.UploadResult{
		Message: fmt.Sprintf("%s data uploaded successfully.", uploadLabel(app)),
		BatchID: batchID,
		Rows:    counts,
	}, nil
}

func (s *Service) storeFacebook(ctx context.Context, t Table) (map[string]int, error) {
	rows, err := facebookRows(t)
	if err != nil {
		return nil, err
	}

	n, err := s.platformRepo.SaveFacebook(ctx, rows)
	if err != nil {
		return nil, fmt.Errorf("save facebook rows: %w", err)
	}
	return map[string]int{domain.PlatformFacebook.Table(): n}, nil
}

func (s *Service) storeTikTok(ctx context.Context, t Table) (map[string]int, error) {
	rows, err := tiktokRows(t)
	if err != nil {
		return nil, err
	}

	n, err := s.platformRepo.SaveTikTok(ctx, rows)
	if err != nil {
		return nil, fmt.Errorf("save tiktok rows: %w", err)
	}
	return map[string]int{domain.PlatformTikTok.Table(): n}, nil
}

func (s *Service) storeSales(ctx context.Context, t Table) (map[string]int, error) {
	batch, err := salesBatch(t)
	if err != nil {
		return nil, err
	}

	counts, err := s.salesRepo.SaveBatch(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("save sales batch: %w", err)
	}
	return counts, nil
}

func uploadLabel(app domain.UploadApp) string {
	switch app {
	case domain.UploadFacebook:
		return "Facebook"
	case domain.UploadTikTok:
		return "TikTok"
	}
	return "Sales"
}
