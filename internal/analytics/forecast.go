package analytics

import (
	"fmt"
	"time"

	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/pkg/utils"
	"gonum.org/v1/gonum/stat"
)

const (
	DefaultForecastPeriods = 36
	DefaultMinimumMonths   = 24

	forecastChangeThreshold = 5.0
	forecastBoundFactor     = 0.1
)

// DatedValue is a single metric observation.
type DatedValue struct {
	Date  time.Time
	Value float64
}

type ForecastOptions struct {
	Periods       int
	MinimumMonths int
}

func (o ForecastOptions) withDefaults() ForecastOptions {
	if o.Periods <= 0 {
		o.Periods = DefaultForecastPeriods
	}
	if o.MinimumMonths <= 0 {
		o.MinimumMonths = DefaultMinimumMonths
	}
	return o
}

// MonthlyTotals sums values per calendar month. Months between the first and
// last observation without data are present with a zero total.
func MonthlyTotals(values []DatedValue) []DatedValue {
	dates := make([]time.Time, len(values))
	sums := make(map[time.Time]float64)
	for i, v := range values {
		dates[i] = v.Date
		sums[BucketAnchor(v.Date, domain.FrequencyMonthly)] += v.Value
	}

	months := anchorSpan(dates, domain.FrequencyMonthly)
	totals := make([]DatedValue, 0, len(months))
	for _, m := range months {
		totals = append(totals, DatedValue{Date: m, Value: sums[m]})
	}
	return totals
}

// LastCompleteMonth is the start of the latest month whose data is final. The
// current month only counts on its last day.
func LastCompleteMonth(now time.Time) time.Time {
	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	if now.Day() < utils.LastDayOfMonth(now) {
		return current.AddDate(0, -1, 0)
	}
	return current
}

// Predict builds the forecast report for one metric.
func Predict(values []DatedValue, metric domain.MetricType, now time.Time, opts ForecastOptions) domain.PredictiveReport {
	opts = opts.withDefaults()

	cutoff := LastCompleteMonth(now)
	var history []DatedValue
	for _, m := range MonthlyTotals(values) {
		if m.Date.After(cutoff) {
			continue
		}
		history = append(history, m)
	}

	if len(history) < opts.MinimumMonths {
		return domain.PredictiveReport{
			HistoricalData: []domain.HistoricalPoint{},
			ForecastData:   []domain.ForecastPoint{},
			Recommendation: fmt.Sprintf(
				"Not enough complete historical data (at least %d months) to generate a robust monthly forecast for %s. Please upload more complete historical data.",
				opts.MinimumMonths, metric.Name(),
			),
			Message: "Not enough complete historical data for forecasting.",
		}
	}

	forecast := LinearForecast(history, opts.Periods)

	historical := make([]domain.HistoricalPoint, 0, len(history))
	for _, h := range history {
		historical = append(historical, domain.HistoricalPoint{
			Date:  h.Date.Format(domain.DateLayout),
			Value: utils.RoundWithTwoDecimalPlace(h.Value),
		})
	}

	return domain.PredictiveReport{
		HistoricalData: historical,
		ForecastData:   forecast,
		Recommendation: ForecastRecommendation(history, forecast, metric.Name()),
		Message:        "Predictive analytics successful.",
	}
}

// LinearForecast fits value against days since the first month and projects
// it over the month starts following the last observation. Values are clamped
// at zero and carry a ±10% band.
func LinearForecast(history []DatedValue, periods int) []domain.ForecastPoint {
	forecast := make([]domain.ForecastPoint, 0, periods)
	if len(history) < 2 {
		return forecast
	}

	first := history[0].Date
	xs := make([]float64, len(history))
	ys := make([]float64, len(history))
	for i, h := range history {
		xs[i] = daysBetween(first, h.Date)
		ys[i] = h.Value
	}

	intercept, slope := stat.LinearRegression(xs, ys, nil, false)

	next := history[len(history)-1].Date.AddDate(0, 0, 1)
	if next.Day() != 1 {
		next = time.Date(next.Year(), next.Month()+1, 1, 0, 0, 0, 0, time.UTC)
	}

	for i := 0; i < periods; i++ {
		date := next.AddDate(0, i, 0)

		value := utils.RoundWithTwoDecimalPlace(intercept + slope*daysBetween(first, date))
		if value < 0 {
			value = 0
		}

		forecast = append(forecast, domain.ForecastPoint{
			Date:       date.Format(domain.DateLayout),
			Value:      value,
			LowerBound: utils.RoundWithTwoDecimalPlace(value * (1 - forecastBoundFactor)),
			UpperBound: utils.RoundWithTwoDecimalPlace(value * (1 + forecastBoundFactor)),
		})
	}

	return forecast
}

// ForecastRecommendation compares the first and last forecast values.
func ForecastRecommendation(history []DatedValue, forecast []domain.ForecastPoint, metricName string) string {
	if len(history) == 0 || len(forecast) == 0 {
		return fmt.Sprintf("Not enough data to provide a comprehensive recommendation for %s. Please upload more historical data to enable robust forecasting and insights.", metricName)
	}

	var change float64
	if len(forecast) > 1 {
		change = percentChange(forecast[0].Value, forecast[len(forecast)-1].Value)
	} else {
		change = percentChange(history[len(history)-1].Value, forecast[0].Value)
	}

	recommendation := fmt.Sprintf(
		"Based on historical data and projected trends, your %s is forecasted to be around %s next month.",
		metricName, utils.FormatThousands(forecast[0].Value, 0),
	)

	switch {
	case change > forecastChangeThreshold:
		recommendation += fmt.Sprintf(" The long-term forecast indicates a strong positive growth of approximately +%s%% over the next 3 years. ", oneDecimal(change)) +
			fmt.Sprintf("This is an excellent sign for %s performance and suggests sustained positive momentum. ", metricName) +
			"Consider doubling down on successful strategies that have driven this growth, and explore opportunities to scale up initiatives contributing to this positive outlook. " +
			"Proactive investment in these areas can lead to significant long-term gains."
	case change < -forecastChangeThreshold:
		recommendation += fmt.Sprintf(" The long-term forecast indicates a potential decline of approximately -%s%% over the next 3 years. ", oneDecimal(-change)) +
			"This trend could significantly impact overall business objectives. " +
			"It's crucial to immediately analyze recent activities and market shifts to identify root causes of this projected decline. " +
			fmt.Sprintf("We recommend re-evaluating your current strategy for %s to mitigate this trend and implement corrective actions to stabilize or reverse the decline. ", metricName) +
			"Early intervention is key to preventing further losses."
	default:
		recommendation += fmt.Sprintf(" The long-term forecast indicates a relatively stable trend (%s%%) over the next 3 years. ", oneDecimal(change)) +
			"While stability can be good, it also suggests a lack of significant growth. " +
			fmt.Sprintf("Continue optimizing current efforts, but also explore new avenues or innovative strategies to stimulate further growth and achieve higher %s targets. ", metricName) +
			"Consider A/B testing new approaches, targeting new segments, or diversifying your efforts to break through current plateaus."
	}

	return recommendation
}

func daysBetween(from, to time.Time) float64 {
	return float64(int(to.Sub(from).Hours() / 24))
}
