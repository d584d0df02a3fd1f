package analytics

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/pkg/utils"
	"gonum.org/v1/gonum/stat"
)

const (
	strongCorrelation   = 0.7
	moderateCorrelation = 0.3

	significantIncreasePercent = 50.0
	significantIncreaseLimit   = 3
	deeperDiveMinimumPoints    = 10
)

// DailyTotals is one row of the outer join between social and sales data.
type DailyTotals struct {
	Date       time.Time
	Engagement float64
	Reach      float64
	Sales      float64
}

// JoinDaily outer-joins social records and daily revenue on the calendar day.
// Days missing on one side count as zero.
func JoinDaily(social []domain.MetricRecord, sales []domain.DailyRevenue) []DailyTotals {
	byDay := make(map[string]*DailyTotals)
	row := func(t time.Time) *DailyTotals {
		key := t.Format(domain.DateLayout)
		r, ok := byDay[key]
		if !ok {
			r = &DailyTotals{Date: utils.TruncateDay(t)}
			byDay[key] = r
		}
		return r
	}

	for _, s := range social {
		r := row(s.Date)
		r.Engagement += float64(s.Engagement)
		r.Reach += float64(s.Reach)
	}
	for _, s := range sales {
		row(s.Date).Sales += s.Revenue
	}

	rows := make([]DailyTotals, 0, len(byDay))
	for _, r := range byDay {
		rows = append(rows, *r)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })
	return rows
}

type correlationPair struct {
	key          string
	name1, name2 string
	pick1, pick2 func(DailyTotals) float64
}

var correlationPairs = []correlationPair{
	{domain.PairEngageReach, "Engagement", "Reach", engagementOf, reachOf},
	{domain.PairEngageSales, "Engagement", "Sales", engagementOf, salesOf},
	{domain.PairReachSales, "Reach", "Sales", reachOf, salesOf},
}

func engagementOf(r DailyTotals) float64 { return r.Engagement }
func reachOf(r DailyTotals) float64      { return r.Reach }
func salesOf(r DailyTotals) float64      { return r.Sales }

// BuildCorrelationReport computes the Spearman correlation of each metric pair
// over the days where all three metrics are positive.
func BuildCorrelationReport(rows []DailyTotals) domain.CorrelationReport {
	report := domain.CorrelationReport{
		Message:         "Correlation analysis successful.",
		Correlations:    make(map[string]*float64, len(correlationPairs)),
		Recommendations: make(map[string]string, len(correlationPairs)),
		ChartData:       make([]domain.CorrelationChartPoint, 0, len(rows)),
	}

	var complete []DailyTotals
	for _, r := range rows {
		report.ChartData = append(report.ChartData, domain.CorrelationChartPoint{
			Date:       r.Date.Format(domain.DateLayout),
			Engagement: r.Engagement,
			Reach:      r.Reach,
			Sales:      r.Sales,
		})
		if r.Engagement > 0 && r.Reach > 0 && r.Sales > 0 {
			complete = append(complete, r)
		}
	}

	for _, pair := range correlationPairs {
		s1 := make([]float64, len(complete))
		s2 := make([]float64, len(complete))
		dates := make([]time.Time, len(complete))
		for i, r := range complete {
			s1[i], s2[i], dates[i] = pair.pick1(r), pair.pick2(r), r.Date
		}

		corr, ok := math.NaN(), false
		if len(complete) >= 2 && stat.StdDev(s1, nil) > 0 && stat.StdDev(s2, nil) > 0 {
			corr, ok = Spearman(s1, s2)
		}

		if !ok {
			report.Correlations[pair.key] = nil
			report.Recommendations[pair.key] = CorrelationRecommendation(math.NaN(), pair.name1, pair.name2, nil, nil, len(rows))
			continue
		}

		rounded := utils.RoundWithTwoDecimalPlace(corr)
		report.Correlations[pair.key] = &rounded
		report.Recommendations[pair.key] = CorrelationRecommendation(
			corr, pair.name1, pair.name2,
			dailySeries(dates, s1), dailySeries(dates, s2),
			len(rows),
		)
	}

	return report
}

// Spearman returns the rank correlation of x and y. The second value is false
// when it is undefined.
func Spearman(x, y []float64) (float64, bool) {
	if len(x) != len(y) || len(x) < 2 {
		return 0, false
	}

	rx, ry := Rank(x), Rank(y)
	if stat.StdDev(rx, nil) == 0 || stat.StdDev(ry, nil) == 0 {
		return 0, false
	}

	c := stat.Correlation(rx, ry, nil)
	if math.IsNaN(c) {
		return 0, false
	}
	return c, true
}

// Rank assigns 1-based ranks; ties share the average of their positions.
func Rank(values []float64) []float64 {
	idx := make([]int, len(values))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return values[idx[a]] < values[idx[b]] })

	ranks := make([]float64, len(values))
	for i := 0; i < len(idx); {
		j := i
		for j+1 < len(idx) && values[idx[j+1]] == values[idx[i]] {
			j++
		}
		avg := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			ranks[idx[k]] = avg
		}
		i = j + 1
	}
	return ranks
}

func dailySeries(dates []time.Time, values []float64) []DatedValue {
	series := make([]DatedValue, len(values))
	for i := range values {
		series[i] = DatedValue{Date: dates[i], Value: values[i]}
	}
	return series
}

// CorrelationRecommendation explains a correlation coefficient in business
// terms. The text carries <br> line breaks for the dashboard.
func CorrelationRecommendation(corr float64, name1, name2 string, s1, s2 []DatedValue, totalPoints int) string {
	if math.IsNaN(corr) {
		return fmt.Sprintf("Not enough meaningful data to calculate a correlation between %s and %s for the selected period/platform. Please ensure you have sufficient non-zero data points for both metrics.<br>", name1, name2)
	}

	abs := math.Abs(corr)
	strength := "weak or negligible"
	switch {
	case abs >= strongCorrelation:
		strength = "strong"
	case abs >= moderateCorrelation:
		strength = "moderate"
	}

	var message string
	switch {
	case corr > moderateCorrelation && strength == "strong":
		message = fmt.Sprintf("There is a strong positive relationship between your %[1]s and %[2]s. "+
			"This means when %[1]s increases, %[2]s also significantly increases. <br>"+
			"This is a powerful connection for your business. We recommend identifying the specific campaigns, content, or actions that led to high %[1]s on dates where %[2]s also saw significant boosts. Focus your efforts and investment on replicating and scaling these successful strategies to maximize %[2]s's performance.<br>", name1, name2)
	case corr > moderateCorrelation:
		message = fmt.Sprintf("There is a moderate positive relationship between your %[1]s and %[2]s. "+
			"This suggests that as %[1]s increases, %[2]s tends to increase, but not always dramatically. <br>"+
			"This relationship offers opportunities for improvement. Analyze periods where both %[1]s and %[2]s performed well simultaneously. Can you identify any common factors or specific activities during those times? Experiment with initiatives that aim to strengthen this positive link, such as optimizing your content to drive both engagement and sales.<br>", name1, name2)
	case corr < -moderateCorrelation && strength == "strong":
		message = fmt.Sprintf("There is a strong negative relationship between your %[1]s and %[2]s. "+
			"This indicates that as %[1]s increases, %[2]s significantly decreases. <br>"+
			"This is a critical area for immediate attention. Identify specific dates or campaigns where %[1]s was high but %[2]s was low. What happened during those periods? It's crucial to investigate potential conflicts in your strategy, such as ad campaigns that drive clicks but not conversions, and adjust your approach for %[1]s to mitigate its negative impact on %[2]s.<br>", name1, name2)
	case corr < -moderateCorrelation:
		message = fmt.Sprintf("There is a moderate negative relationship between your %[1]s and %[2]s. "+
			"This suggests that as %[1]s increases, %[2]s tends to decrease. <br>"+
			"This inverse trend warrants investigation. Look for specific instances where this negative pattern was most pronounced. Are certain types of content or activities for %[1]s inadvertently detracting from %[2]s? Adjust your approach to minimize any adverse effects and ensure your efforts are aligned with overall business goals.<br>", name1, name2)
	default:
		message = fmt.Sprintf("There is a weak or negligible relationship between your %[1]s and %[2]s. "+
			"This means changes in %[1]s do not consistently or significantly influence %[2]s in a direct or inverse manner. <br>"+
			"From a business perspective, %[1]s is likely not a primary driver for %[2]s in its current state. "+
			"Consider exploring other factors that might have a stronger impact on %[2]s, or refine your strategies for %[1]s to see if a more direct link can be established. For example, if you want %[1]s to drive %[2]s, ensure your calls-to-action are clear and your funnels are optimized.<br>", name1, name2)
	}

	var additional []string
	points := len(s1)
	if points > 0 {
		if totalPoints > points {
			gap := float64(totalPoints-points) / float64(totalPoints) * 100
			additional = append(additional, fmt.Sprintf("Data Gaps: Approximately %s%% of the potential daily data points had zero or missing values for one or both metrics. This can make it harder to see a complete picture of their relationship. We recommend ensuring consistent data collection and investigating why data might be missing or zero on certain days.<br>", oneDecimal(gap)))
		}

		top1, total1 := significantIncreases(s1)
		top2, total2 := significantIncreases(s2)
		if len(top1) > 0 || len(top2) > 0 {
			msg := "Significant Increases Detected: We observed notable increases that stand out from the typical daily fluctuations."
			if len(top1) > 0 {
				msg += fmt.Sprintf("<br>For %s, the top increases occurred on: %s.", name1, strings.Join(top1, "; "))
				if len(top1) < total1 {
					msg += " (and potentially more)."
				}
			}
			if len(top2) > 0 {
				msg += fmt.Sprintf("<br>For %s, the top increases occurred on: %s.", name2, strings.Join(top2, "; "))
				if len(top2) < total2 {
					msg += " (and potentially more)."
				}
			}
			msg += "<br>For these dates, we highly recommend reviewing your activities, campaigns, or external events that might have contributed to these surges. Understanding these drivers can help you replicate success.<br>"
			additional = append(additional, msg)
		}

		if strength == "weak or negligible" && points > deeperDiveMinimumPoints {
			additional = append(additional, fmt.Sprintf("Deeper Dive Recommended: Given the weak relationship, it's beneficial to manually examine the periods where %[1]s and %[2]s moved in the same direction (both up or both down) or in opposite directions. This qualitative analysis can reveal patterns or external factors that a simple correlation might miss. For instance, did a specific marketing push for %[1]s coincide with an unexpected dip in %[2]s?<br>", name1, name2))
		}
	}

	if len(additional) > 0 {
		message += "<br>Further Insights & Recommendations:<br>" + strings.Join(additional, "")
	}

	return message
}

// significantIncreases lists the largest step increases above the threshold,
// formatted for display, plus how many qualified in total.
func significantIncreases(series []DatedValue) ([]string, int) {
	if len(series) < 2 {
		return nil, 0
	}

	type change struct {
		at      DatedValue
		percent float64
	}

	var changes []change
	for i := 1; i < len(series); i++ {
		prev := series[i-1].Value
		if prev == 0 {
			continue
		}
		pct := (series[i].Value - prev) / prev * 100
		if pct > significantIncreasePercent {
			changes = append(changes, change{at: series[i], percent: pct})
		}
	}

	sort.SliceStable(changes, func(a, b int) bool { return changes[a].percent > changes[b].percent })

	limit := significantIncreaseLimit
	if len(changes) < limit {
		limit = len(changes)
	}

	formatted := make([]string, 0, limit)
	for _, c := range changes[:limit] {
		formatted = append(formatted, fmt.Sprintf("%s (Value: %s, Change: +%s%%)",
			c.at.Date.Format(domain.DateLayout), utils.FormatThousands(c.at.Value, 0), oneDecimal(c.percent)))
	}
	return formatted, len(changes)
}
