// Package chart builds Chart.js configuration objects for the dashboard and
// keeps the latest rendered instance per chart id.
package chart

import (
	"fmt"

	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/pkg/utils"
)

type Type string

const (
	TypeLine Type = "line"
	TypeBar  Type = "bar"
)

// Well-known chart ids used by the dashboard.
const (
	IDReach           = "reachChart"
	IDEngagement      = "engagementChart"
	IDSales           = "salesChart"
	IDTopPerformers   = "topPerformersChart"
	IDEngagementGoal  = "engagementGoalChart"
	IDTrend           = "trendChart"
	defaultFontFamily = "Roboto"
	titleColor        = "#333"
	tickColor         = "#666"
	gridColor         = "rgba(0, 0, 0, 0.05)"
	NoDataText        = "No data available for the selected period."
)

type Font struct {
	Family string `json:"family,omitempty"`
	Size   int    `json:"size,omitempty"`
	Weight string `json:"weight,omitempty"`
}

type Title struct {
	Display bool   `json:"display"`
	Text    string `json:"text,omitempty"`
	Font    Font   `json:"font"`
	Color   string `json:"color,omitempty"`
}

type Grid struct {
	Color      string `json:"color"`
	DrawBorder bool   `json:"drawBorder"`
}

type Ticks struct {
	Font  Font   `json:"font"`
	Color string `json:"color"`
}

type Axis struct {
	BeginAtZero bool     `json:"beginAtZero"`
	Max         *float64 `json:"max,omitempty"`
	Grid        Grid     `json:"grid"`
	Ticks       Ticks    `json:"ticks"`
	Title       Title    `json:"title"`
}

type Tooltip struct {
	BackgroundColor string `json:"backgroundColor"`
	TitleFont       Font   `json:"titleFont"`
	BodyFont        Font   `json:"bodyFont"`
	Padding         int    `json:"padding"`
	CornerRadius    int    `json:"cornerRadius"`
	Mode            string `json:"mode,omitempty"`
	Intersect       *bool  `json:"intersect,omitempty"`
}

type Legend struct {
	Display bool `json:"display"`
}

type Plugins struct {
	Legend  Legend  `json:"legend"`
	Tooltip Tooltip `json:"tooltip"`
	Title   Title   `json:"title"`
}

type Options struct {
	Responsive          bool            `json:"responsive"`
	MaintainAspectRatio bool            `json:"maintainAspectRatio"`
	IndexAxis           string          `json:"indexAxis,omitempty"`
	Plugins             Plugins         `json:"plugins"`
	Scales              map[string]Axis `json:"scales"`
}

type Dataset struct {
	Label                string    `json:"label"`
	Data                 []float64 `json:"data"`
	BackgroundColor      string    `json:"backgroundColor,omitempty"`
	BorderColor          string    `json:"borderColor,omitempty"`
	BorderWidth          int       `json:"borderWidth,omitempty"`
	BorderRadius         int       `json:"borderRadius,omitempty"`
	BorderDash           []int     `json:"borderDash,omitempty"`
	Fill                 bool      `json:"fill,omitempty"`
	Tension              float64   `json:"tension,omitempty"`
	PointBackgroundColor string    `json:"pointBackgroundColor,omitempty"`
	PointRadius          int       `json:"pointRadius,omitempty"`
}

type Data struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// Config is a complete chart definition. NoData is set when every dataset is
// empty; clients show NoDataText instead of an empty canvas.
type Config struct {
	ID         string  `json:"id"`
	Type       Type    `json:"type"`
	Data       Data    `json:"data"`
	Options    Options `json:"options"`
	NoData     bool    `json:"no_data"`
	NoDataText string  `json:"no_data_text,omitempty"`
}

func font(size int, weight string) Font {
	return Font{Family: defaultFontFamily, Size: size, Weight: weight}
}

func axis(title string) Axis {
	return Axis{
		BeginAtZero: true,
		Grid:        Grid{Color: gridColor},
		Ticks:       Ticks{Font: font(0, ""), Color: tickColor},
		Title:       Title{Display: true, Text: title, Font: font(0, "bold"), Color: titleColor},
	}
}

func baseOptions(title, xTitle, yTitle string) Options {
	return Options{
		Responsive:          true,
		MaintainAspectRatio: false,
		Plugins: Plugins{
			Tooltip: Tooltip{
				BackgroundColor: "rgba(30, 30, 30, 0.9)",
				TitleFont:       font(0, "bold"),
				BodyFont:        font(0, ""),
				Padding:         10,
				CornerRadius:    5,
			},
			Title: Title{Display: true, Text: title, Font: font(16, "bold"), Color: titleColor},
		},
		Scales: map[string]Axis{
			"x": axis(xTitle),
			"y": axis(yTitle),
		},
	}
}

func newConfig(id string, t Type, labels []string, opts Options, datasets ...Dataset) Config {
	if labels == nil {
		labels = []string{}
	}

	cfg := Config{
		ID:      id,
		Type:    t,
		Data:    Data{Labels: labels, Datasets: datasets},
		Options: opts,
		NoData:  true,
	}

	for i := range cfg.Data.Datasets {
		if cfg.Data.Datasets[i].Data == nil {
			cfg.Data.Datasets[i].Data = []float64{}
		}
		if len(cfg.Data.Datasets[i].Data) > 0 {
			cfg.NoData = false
		}
	}
	if cfg.NoData {
		cfg.NoDataText = NoDataText
	}

	return cfg
}

// Line builds a filled, smoothed single-series line chart.
func Line(id, title, xTitle, yTitle, label string, labels []string, values []float64) Config {
	opts := baseOptions(title, xTitle, yTitle)
	intersect := false
	opts.Plugins.Tooltip.Mode = "index"
	opts.Plugins.Tooltip.Intersect = &intersect

	return newConfig(id, TypeLine, labels, opts, Dataset{
		Label:                label,
		Data:                 values,
		Fill:                 true,
		BackgroundColor:      "rgba(90, 76, 209, 0.2)",
		BorderColor:          "rgba(90, 76, 209, 1)",
		Tension:              0.4,
		PointBackgroundColor: "rgba(90, 76, 209, 1)",
		PointRadius:          5,
	})
}

// Bar builds a vertical single-series bar chart; rgb is "r, g, b".
func Bar(id, title, xTitle, yTitle, label, rgb string, labels []string, values []float64) Config {
	return newConfig(id, TypeBar, labels, baseOptions(title, xTitle, yTitle), Dataset{
		Label:           label,
		Data:            values,
		BackgroundColor: fmt.Sprintf("rgba(%s, 0.7)", rgb),
		BorderColor:     fmt.Sprintf("rgba(%s, 1)", rgb),
		BorderWidth:     1,
		BorderRadius:    5,
	})
}

// HorizontalBar is a bar chart with categories on the y axis.
func HorizontalBar(id, title, xTitle, yTitle, label string, labels []string, values []float64) Config {
	opts := baseOptions(title, xTitle, yTitle)
	opts.IndexAxis = "y"

	return newConfig(id, TypeBar, labels, opts, Dataset{
		Label:           label,
		Data:            values,
		BackgroundColor: "rgba(123, 104, 238, 0.7)",
		BorderColor:     "rgba(123, 104, 238, 1)",
		BorderWidth:     1,
		BorderRadius:    5,
	})
}

// GoalBar compares a single current value with its goal.
func GoalBar(id, title, label string, current, goal float64) Config {
	opts := baseOptions(title, "", label)
	opts.Plugins.Legend.Display = true

	if upper := utils.RoundWithTwoDecimalPlace(max(current, goal) * 1.2); upper > 0 {
		y := opts.Scales["y"]
		y.Max = &upper
		opts.Scales["y"] = y
	}

	color := "rgba(220, 53, 69, 0.7)"
	if current >= goal {
		color = "rgba(40, 167, 69, 0.7)"
	}

	return newConfig(id, TypeBar, []string{"Current", "Goal"}, opts, Dataset{
		Label:           label,
		Data:            []float64{current, goal},
		BackgroundColor: color,
		BorderWidth:     1,
		BorderRadius:    5,
	})
}

const (
	reachColor = "123, 104, 238"
	salesColor = "170, 150, 250"
)

func ReachChart(labels []string, buckets []domain.AggregatedBucket) Config {
	values := make([]float64, len(buckets))
	for i, b := range buckets {
		values[i] = float64(b.Reach)
	}
	return Bar(IDReach, "Monthly Reach", "Month and Year", "Total Reach", "Reach", reachColor, labels, values)
}

func EngagementChart(labels []string, buckets []domain.AggregatedBucket) Config {
	values := make([]float64, len(buckets))
	for i, b := range buckets {
		values[i] = float64(b.Engagement)
	}
	return Line(IDEngagement, "Monthly Engagement", "Month and Year", "Total Engagement", "Engagement", labels, values)
}

func SalesChart(labels []string, buckets []domain.AggregatedBucket) Config {
	values := make([]float64, len(buckets))
	for i, b := range buckets {
		values[i] = b.Sales
	}
	return Bar(IDSales, "Monthly Sales", "Month and Year", "Total Sales", "Sales", salesColor, labels, values)
}

func TopPerformersChart(products []domain.TopProduct) Config {
	labels := make([]string, len(products))
	values := make([]float64, len(products))
	for i, p := range products {
		labels[i], values[i] = p.ProductName, p.Sales
	}
	return HorizontalBar(IDTopPerformers, "Top Performers by Sales", "Total Sales", "Product", "Sales", labels, values)
}

func EngagementGoalChart(summary domain.EngagementGoalSummary) Config {
	return GoalBar(IDEngagementGoal, "Engagement Rate vs Goal", "Engagement Rate (%)", summary.Current, summary.Goal)
}

// TrendChart overlays the fitted line on the observed values; line holds the
// fitted value at every label.
func TrendChart(title, metricName string, labels []string, values []float64, line []float64) Config {
	cfg := Line(IDTrend, title, "Month and Year", metricName, metricName, labels, values)
	if len(line) == 0 {
		return cfg
	}

	cfg.Data.Datasets = append(cfg.Data.Datasets, Dataset{
		Label:       "Trend",
		Data:        line,
		BorderColor: "rgba(255, 159, 64, 1)",
		BorderDash:  []int{6, 4},
	})
	return cfg
}
