package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/social-insights-api/internal/config"
	"github.com/vfg2006/social-insights-api/internal/scheduler/mocks"
	"go.uber.org/mock/gomock"
)

func TestActivityRetentionService_purge(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.ActivityRetention
		setup    func(purger *mocks.MockPurger, recorder *mocks.MockJobRecorder)
		validate func(t *testing.T, s *ActivityRetentionService)
	}{
		{
			name: "uses the configured window",
			cfg:  config.ActivityRetention{Days: 30, Enabled: true},
			setup: func(purger *mocks.MockPurger, recorder *mocks.MockJobRecorder) {
				purger.EXPECT().PurgeOlderThan(gomock.Any(), 30).Return(int64(12), nil)
				recorder.EXPECT().JobRun(JobActivityRetention, gomock.Any(), nil)
			},
			validate: func(t *testing.T, s *ActivityRetentionService) {
				assert.Equal(t, 30, s.GetStatus()["retention_days"])
			},
		},
		{
			name: "defaults to a year",
			cfg:  config.ActivityRetention{},
			setup: func(purger *mocks.MockPurger, recorder *mocks.MockJobRecorder) {
				purger.EXPECT().PurgeOlderThan(gomock.Any(), 365).Return(int64(0), nil)
				recorder.EXPECT().JobRun(JobActivityRetention, gomock.Any(), nil)
			},
			validate: func(t *testing.T, s *ActivityRetentionService) {
				assert.Equal(t, false, s.GetStatus()["sync_enabled"])
			},
		},
		{
			name: "failure is reported",
			cfg:  config.ActivityRetention{Days: 7},
			setup: func(purger *mocks.MockPurger, recorder *mocks.MockJobRecorder) {
				purger.EXPECT().PurgeOlderThan(gomock.Any(), 7).Return(int64(0), errors.New("timeout"))
				recorder.EXPECT().JobRun(JobActivityRetention, gomock.Any(), gomock.Not(nil))
			},
			validate: func(t *testing.T, s *ActivityRetentionService) {
				assert.Equal(t, "timeout", s.GetStatus()["last_error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			purger := mocks.NewMockPurger(ctrl)
			recorder := mocks.NewMockJobRecorder(ctrl)
			tt.setup(purger, recorder)

			s := NewActivityRetentionService(purger, tt.cfg, recorder)
			assert.True(t, s.purge(context.Background()))

			tt.validate(t, s)
		})
	}
}
