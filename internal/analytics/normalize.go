// Package analytics shapes platform rows into chart-ready series. Every function
// here is pure: the same input always yields the same output.
package analytics

import (
	"strings"
	"time"

	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/pkg/utils"
)

// Normalize maps a raw platform row onto the common record shape. Fields are
// looked up by lowercase key first, then capitalized; missing values are zero.
func Normalize(platform domain.Platform, raw domain.RawRecord) domain.MetricRecord {
	record := domain.MetricRecord{Date: recordDate(lookup(raw, "date"))}

	engagement := utils.AddCounts(
		utils.ToCount(lookup(raw, "likes")),
		utils.ToCount(lookup(raw, "comments")),
		utils.ToCount(lookup(raw, "shares")),
	)

	switch platform {
	case domain.PlatformTikTok:
		record.Reach = utils.ToCount(lookup(raw, "views"))
		record.Engagement = engagement
	case domain.PlatformFacebook:
		record.Reach = utils.ToCount(lookup(raw, "reach"))
		record.Engagement = engagement
		if sales := utils.ToFloat(lookup(raw, "sales")); sales > 0 {
			record.Sales = sales
		}
	}

	return record
}

// NormalizeAll normalizes every row, dropping rows without a readable date.
func NormalizeAll(platform domain.Platform, rows []domain.RawRecord) []domain.MetricRecord {
	records := make([]domain.MetricRecord, 0, len(rows))
	for _, raw := range rows {
		record := Normalize(platform, raw)
		if record.Date.IsZero() {
			continue
		}
		records = append(records, record)
	}
	return records
}

func lookup(raw domain.RawRecord, key string) any {
	if v, ok := raw[key]; ok && v != nil {
		return v
	}
	if v, ok := raw[strings.ToUpper(key[:1])+key[1:]]; ok && v != nil {
		return v
	}
	return nil
}

func recordDate(v any) time.Time {
	switch d := v.(type) {
	case time.Time:
		return utils.TruncateDay(d)
	case string:
		if t, ok := utils.ParseFlexibleDate(d); ok {
			return t
		}
	}
	return time.Time{}
}
