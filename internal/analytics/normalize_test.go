package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/social-insights-api/internal/domain"
)

func day(s string) time.Time {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		platform domain.Platform
		raw      domain.RawRecord
		validate func(t *testing.T, r domain.MetricRecord)
	}{
		{
			name:     "tiktok views become reach and interactions are summed",
			platform: domain.PlatformTikTok,
			raw:      domain.RawRecord{"date": "2024-01-05", "views": 100.0, "likes": 10.0, "comments": 5.0, "shares": 2.0},
			validate: func(t *testing.T, r domain.MetricRecord) {
				assert.Equal(t, day("2024-01-05"), r.Date)
				assert.Equal(t, int64(100), r.Reach)
				assert.Equal(t, int64(17), r.Engagement)
				assert.Zero(t, r.Sales)
			},
		},
		{
			name:     "counts beyond int64 saturate instead of wrapping negative",
			platform: domain.PlatformTikTok,
			raw:      domain.RawRecord{"date": "2024-01-05", "views": 1e20, "likes": 1e20, "comments": 10},
			validate: func(t *testing.T, r domain.MetricRecord) {
				assert.Equal(t, int64(math.MaxInt64), r.Reach)
				assert.Equal(t, int64(math.MaxInt64), r.Engagement)
			},
		},
		{
			name:     "tiktok sales are always zero",
			platform: domain.PlatformTikTok,
			raw:      domain.RawRecord{"date": "2024-01-05", "views": 1, "sales": 99.0},
			validate: func(t *testing.T, r domain.MetricRecord) {
				assert.Zero(t, r.Sales)
			},
		},
		{
			name:     "facebook falls back to capitalized keys and numeric strings",
			platform: domain.PlatformFacebook,
			raw:      domain.RawRecord{"Date": "2024-02-01", "Reach": "50", "Likes": 1, "Comments": int64(2), "Shares": "oops", "Sales": 20.5},
			validate: func(t *testing.T, r domain.MetricRecord) {
				assert.Equal(t, day("2024-02-01"), r.Date)
				assert.Equal(t, int64(50), r.Reach)
				assert.Equal(t, int64(3), r.Engagement)
				assert.Equal(t, 20.5, r.Sales)
			},
		},
		{
			name:     "lowercase key wins over capitalized",
			platform: domain.PlatformFacebook,
			raw:      domain.RawRecord{"date": "2024-02-01", "reach": 7, "Reach": 70},
			validate: func(t *testing.T, r domain.MetricRecord) {
				assert.Equal(t, int64(7), r.Reach)
			},
		},
		{
			name:     "missing fields default to zero",
			platform: domain.PlatformFacebook,
			raw:      domain.RawRecord{"date": "2024-02-01"},
			validate: func(t *testing.T, r domain.MetricRecord) {
				assert.Zero(t, r.Reach)
				assert.Zero(t, r.Engagement)
				assert.Zero(t, r.Sales)
			},
		},
		{
			name:     "negative values are clamped",
			platform: domain.PlatformFacebook,
			raw:      domain.RawRecord{"date": "2024-02-01", "reach": -5, "likes": -1, "sales": -3.0},
			validate: func(t *testing.T, r domain.MetricRecord) {
				assert.Zero(t, r.Reach)
				assert.Zero(t, r.Engagement)
				assert.Zero(t, r.Sales)
			},
		},
		{
			name:     "http date format is understood",
			platform: domain.PlatformTikTok,
			raw:      domain.RawRecord{"date": "Fri, 05 Jan 2024 00:00:00 GMT", "views": 1},
			validate: func(t *testing.T, r domain.MetricRecord) {
				assert.Equal(t, day("2024-01-05"), r.Date)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, Normalize(tt.platform, tt.raw))
		})
	}
}

func TestNormalizeAll_DropsUndatedRows(t *testing.T) {
	rows := []domain.RawRecord{
		{"date": "2024-01-01", "views": 1},
		{"views": 2},
		{"date": "not a date", "views": 3},
	}

	records := NormalizeAll(domain.PlatformTikTok, rows)

	assert.Len(t, records, 1)
	assert.Equal(t, int64(1), records[0].Reach)
}
