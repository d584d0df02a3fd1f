package analytics

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/social-insights-api/internal/domain"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []domain.MetricRecord
		validate func(t *testing.T, merged []domain.MetricRecord)
	}{
		{
			name: "shared date is summed",
			a:    []domain.MetricRecord{{Date: day("2024-01-05"), Reach: 100, Engagement: 17}},
			b:    []domain.MetricRecord{{Date: day("2024-01-05"), Reach: 50, Engagement: 3, Sales: 20}},
			validate: func(t *testing.T, merged []domain.MetricRecord) {
				require.Len(t, merged, 1)
				assert.Equal(t, domain.MetricRecord{Date: day("2024-01-05"), Reach: 150, Engagement: 20, Sales: 20}, merged[0])
			},
		},
		{
			name: "disjoint dates keep every record in order",
			a: []domain.MetricRecord{
				{Date: day("2024-01-07"), Reach: 1},
				{Date: day("2024-01-01"), Reach: 2},
			},
			b: []domain.MetricRecord{
				{Date: day("2024-01-03"), Reach: 3},
			},
			validate: func(t *testing.T, merged []domain.MetricRecord) {
				require.Len(t, merged, 3)
				assert.True(t, sort.SliceIsSorted(merged, func(i, j int) bool {
					return merged[i].Date.Before(merged[j].Date)
				}))
				assert.Equal(t, day("2024-01-01"), merged[0].Date)
				assert.Equal(t, day("2024-01-07"), merged[2].Date)
			},
		},
		{
			name: "duplicate dates inside one input collapse",
			a: []domain.MetricRecord{
				{Date: day("2024-01-01"), Reach: 2, Engagement: 1},
				{Date: day("2024-01-01"), Reach: 3, Engagement: 1},
			},
			validate: func(t *testing.T, merged []domain.MetricRecord) {
				require.Len(t, merged, 1)
				assert.Equal(t, int64(5), merged[0].Reach)
				assert.Equal(t, int64(2), merged[0].Engagement)
			},
		},
		{
			name: "empty inputs give an empty series",
			validate: func(t *testing.T, merged []domain.MetricRecord) {
				assert.NotNil(t, merged)
				assert.Empty(t, merged)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, Merge(tt.a, tt.b))
		})
	}
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	a := []domain.MetricRecord{{Date: day("2024-01-05"), Reach: 100}}
	b := []domain.MetricRecord{{Date: day("2024-01-05"), Reach: 50}}

	Merge(a, b)

	assert.Equal(t, int64(100), a[0].Reach)
	assert.Equal(t, int64(50), b[0].Reach)
}
