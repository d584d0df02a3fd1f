package analytics

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/pkg/utils"
)

// Change thresholds, in percent, between the last two buckets of a report.
const (
	salesChangeThreshold  = 5.0
	socialChangeThreshold = 10.0
)

// PerformanceInsights writes the plain-text summary shown under the
// performance charts.
func PerformanceInsights(social []domain.PerformancePoint, sales []domain.SalesPoint, r domain.DateRange, platform domain.Platform) string {
	var insights []string

	period := ""
	if r.Bounded() {
		period = fmt.Sprintf(" from %s to %s", r.Start.Format(domain.DateLayout), r.End.Format(domain.DateLayout))
	}

	on := ""
	if platform != domain.PlatformAll && platform != "" {
		on = " on " + capitalize(string(platform))
	}

	if len(sales) > 0 {
		var total float64
		for _, s := range sales {
			total += s.SalesTotal
		}
		insights = append(insights, fmt.Sprintf("Your total sales revenue%s is approximately $%s. ", period, utils.FormatThousands(total, 2)))

		if n := len(sales); n >= 2 {
			change := percentChange(sales[n-2].SalesTotal, sales[n-1].SalesTotal)
			switch {
			case change > salesChangeThreshold:
				insights = append(insights, fmt.Sprintf("Sales show strong recent growth (+%s%%). Continue to invest in high-performing products and sales channels. ", oneDecimal(change)))
			case change < -salesChangeThreshold:
				insights = append(insights, fmt.Sprintf("Sales have recently declined (-%s%%). Investigate recent market changes or campaign performance to address this. ", oneDecimal(-change)))
			default:
				insights = append(insights, "Sales are stable. Look for new market opportunities or product launches to drive further growth. ")
			}
		}
	} else {
		insights = append(insights, fmt.Sprintf("No sales data available for the selected period%s. ", period))
	}

	if len(social) > 0 {
		var totalEngagement, totalReach int64
		var rateSum float64
		for _, p := range social {
			totalEngagement += p.EngagementTotal
			totalReach += p.ReachTotal
			rateSum += p.Engagement
		}
		avgRate := rateSum / float64(len(social))

		insights = append(insights, fmt.Sprintf(
			"Your social media campaigns%s generated a total of %s engagements with an average engagement rate of %s%%%s. ",
			on, utils.FormatThousands(float64(totalEngagement), 0), strconv.FormatFloat(avgRate, 'f', 2, 64), period,
		))

		n := len(social)
		if n >= 2 {
			change := percentChange(float64(social[n-2].EngagementTotal), float64(social[n-1].EngagementTotal))
			switch {
			case change > socialChangeThreshold:
				insights = append(insights, fmt.Sprintf("Engagement is surging (+%s%%). Identify top-performing content and replicate its success. ", oneDecimal(change)))
			case change < -socialChangeThreshold:
				insights = append(insights, fmt.Sprintf("Engagement has dropped (-%s%%). Re-evaluate content strategy and audience targeting. ", oneDecimal(-change)))
			default:
				insights = append(insights, "Engagement is consistent. Experiment with new content formats or call-to-actions to boost interaction. ")
			}
		}

		insights = append(insights, fmt.Sprintf("Your total social media reach%s%s was %s. ", on, period, utils.FormatThousands(float64(totalReach), 0)))

		if n >= 2 {
			change := percentChange(float64(social[n-2].ReachTotal), float64(social[n-1].ReachTotal))
			switch {
			case change > socialChangeThreshold:
				insights = append(insights, fmt.Sprintf("Reach is expanding (+%s%%). Consider allocating more budget to channels or content types that are driving this reach. ", oneDecimal(change)))
			case change < -socialChangeThreshold:
				insights = append(insights, fmt.Sprintf("Reach has contracted (-%s%%). Review ad spend, targeting, and content distribution strategies. ", oneDecimal(-change)))
			default:
				insights = append(insights, "Reach is stable. Explore new platforms or partnerships to expand your audience. ")
			}
		}
	} else {
		insights = append(insights,
			fmt.Sprintf("No social media engagement data available%s for the selected period. ", on),
			fmt.Sprintf("No social media reach data available%s for the selected period. ", on),
		)
	}

	return strings.Join(insights, " ")
}

// percentChange is zero when the previous value is zero.
func percentChange(previous, current float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

func oneDecimal(f float64) string {
	return strconv.FormatFloat(f, 'f', 1, 64)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	s = strings.ToLower(s)
	return strings.ToUpper(s[:1]) + s[1:]
}
