package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeWindowStart(t *testing.T) {
	now := time.Date(2024, 2, 29, 18, 30, 0, 0, time.UTC)

	tests := []struct {
		window    TimeWindow
		want      time.Time
		wantBound bool
	}{
		{window: WindowLast3Months, want: time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), wantBound: true},
		{window: WindowLast6Months, want: time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC), wantBound: true},
		{window: WindowLastYear, want: time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC), wantBound: true},
		{window: WindowAllTime, wantBound: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.window), func(t *testing.T) {
			got, bounded := tt.window.Start(now)
			assert.Equal(t, tt.wantBound, bounded)
			if bounded {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseTimeWindow(t *testing.T) {
	w, err := ParseTimeWindow("")
	require.NoError(t, err)
	assert.Equal(t, WindowAllTime, w)

	w, err = ParseTimeWindow("last6months")
	require.NoError(t, err)
	assert.Equal(t, WindowLast6Months, w)

	_, err = ParseTimeWindow("lastDecade")
	assert.ErrorIs(t, err, ErrUnknownTimeWindow)
}

func TestParseDateRange(t *testing.T) {
	r, err := ParseDateRange("2024-01-01", "2024-01-31")
	require.NoError(t, err)
	assert.True(t, r.Bounded())
	assert.True(t, r.Contains(time.Date(2024, 1, 31, 23, 59, 0, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)))

	open, err := ParseDateRange("2024-01-01", "")
	require.NoError(t, err)
	assert.False(t, open.Bounded())
	assert.True(t, open.Contains(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)))

	_, err = ParseDateRange("2024-02-01", "2024-01-01")
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = ParseDateRange("01/02/2024", "")
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestParsePlatform(t *testing.T) {
	p, err := ParsePlatform("")
	require.NoError(t, err)
	assert.Equal(t, PlatformAll, p)
	assert.True(t, p.Includes(PlatformTikTok))
	assert.True(t, p.Includes(PlatformFacebook))

	p, err = ParsePlatform("facebook")
	require.NoError(t, err)
	assert.False(t, p.Includes(PlatformTikTok))

	_, err = ParsePlatform("myspace")
	assert.ErrorIs(t, err, ErrUnknownPlatform)
}
