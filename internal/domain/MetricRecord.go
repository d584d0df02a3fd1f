package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DateLayout is the calendar-date format used on the wire and in storage.
const DateLayout = "2006-01-02"

// Platform identifies a social-media data source.
type Platform string

const (
	PlatformTikTok   Platform = "tiktok"
	PlatformFacebook Platform = "facebook"
	PlatformAll      Platform = "all"
)

var ErrUnknownPlatform = errors.New("unknown platform")

// ParsePlatform accepts any casing; an empty value means all platforms.
func ParsePlatform(s string) (Platform, error) {
	switch Platform(strings.ToLower(strings.TrimSpace(s))) {
	case "", PlatformAll:
		return PlatformAll, nil
	case PlatformTikTok:
		return PlatformTikTok, nil
	case PlatformFacebook:
		return PlatformFacebook, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPlatform, s)
}

// Includes reports whether data from other is part of p.
func (p Platform) Includes(other Platform) bool {
	return p == PlatformAll || p == other
}

// Sources expands p into the concrete platforms it covers.
func (p Platform) Sources() []Platform {
	if p == PlatformAll {
		return []Platform{PlatformTikTok, PlatformFacebook}
	}
	return []Platform{p}
}

// Table is the storage table holding the platform's raw rows.
func (p Platform) Table() string {
	switch p {
	case PlatformTikTok:
		return "tiktokdata"
	case PlatformFacebook:
		return "facebookdata"
	}
	return ""
}

// RawRecord is an untyped row as returned by a platform listing.
type RawRecord map[string]any

// MetricRecord is the common per-day shape every platform is normalized into.
type MetricRecord struct {
	Date       time.Time
	Reach      int64
	Engagement int64
	Sales      float64
}

type metricRecordJSON struct {
	Date       string  `json:"date"`
	Reach      int64   `json:"reach"`
	Engagement int64   `json:"engagement"`
	Sales      float64 `json:"sales"`
}

func (m MetricRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(metricRecordJSON{
		Date:       m.Date.Format(DateLayout),
		Reach:      m.Reach,
		Engagement: m.Engagement,
		Sales:      m.Sales,
	})
}

func (m *MetricRecord) UnmarshalJSON(data []byte) error {
	var aux metricRecordJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	date, err := time.Parse(DateLayout, aux.Date)
	if err != nil {
		return fmt.Errorf("invalid metric date %q: %w", aux.Date, err)
	}

	m.Date = date
	m.Reach = aux.Reach
	m.Engagement = aux.Engagement
	m.Sales = aux.Sales
	return nil
}

// AggregatedBucket holds the sums of one calendar month.
type AggregatedBucket struct {
	PeriodKey  string  `json:"period_key"`
	Reach      int64   `json:"reach"`
	Engagement int64   `json:"engagement"`
	Sales      float64 `json:"sales"`
}

// SummaryTotals are the headline numbers shown next to the charts.
type SummaryTotals struct {
	Reach      int64   `json:"total_reach"`
	Engagement int64   `json:"total_engagement"`
	Sales      float64 `json:"total_sales"`
}

// EngagementGoalSummary compares the engagement rate of a period with a target.
type EngagementGoalSummary struct {
	Current float64 `json:"current"`
	Goal    float64 `json:"goal"`
	Met     bool    `json:"met"`
	Text    string  `json:"text"`
}
