package export

import (
	"errors"
	"fmt"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/lotterich/cli/internal/client/collection"
	"github.com/lotterich/cli/internal/client/stats"
)

// ErrNoChartData signals there is nothing to draw for the requested chart.
var ErrNoChartData = errors.New("no data to chart")

const (
	chartWidth  = 800
	chartHeight = 450
)

// WriteWeeklySpendingChart draws the four weekly spending buckets of one
// month as a bar chart.
func WriteWeeklySpendingChart(w io.Writer, weeks [4]int) error {
	bars := make([]chart.Value, 0, len(weeks))
	total := 0
	for i, amount := range weeks {
		total += amount
		bars = append(bars, chart.Value{
			Value: float64(amount),
			Label: fmt.Sprintf("Week %d", i+1),
		})
	}
	if total == 0 {
		return ErrNoChartData
	}
	bc := chart.BarChart{
		Title:    "Weekly Spending",
		Width:    chartWidth,
		Height:   chartHeight,
		BarWidth: 80,
		Bars:     bars,
	}
	return bc.Render(chart.PNG, w)
}

// WriteMonthlySpendingChart draws the monthly spending series as a line.
func WriteMonthlySpendingChart(w io.Writer, series []collection.MonthSpend) error {
	xs := make([]float64, 0, len(series))
	ys := make([]float64, 0, len(series))
	ticks := make([]chart.Tick, 0, len(series))
	total := 0
	for i, m := range series {
		total += m.Amount
		xs = append(xs, float64(i))
		ys = append(ys, float64(m.Amount))
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: m.Label})
	}
	if total == 0 {
		return ErrNoChartData
	}
	c := chart.Chart{
		Title:  "Monthly Spending",
		Width:  chartWidth,
		Height: chartHeight,
		XAxis:  chart.XAxis{Ticks: ticks},
		Series: []chart.Series{
			chart.ContinuousSeries{XValues: xs, YValues: ys},
		},
	}
	return c.Render(chart.PNG, w)
}

// WriteWinRateChart draws the win/lose split of announced tickets as a
// donut.
func WriteWinRateChart(w io.Writer, s collection.Summary) error {
	if s.WinCount+s.LoseCount == 0 {
		return ErrNoChartData
	}
	dc := chart.DonutChart{
		Title:  "Win Rate",
		Width:  chartHeight,
		Height: chartHeight,
		Values: []chart.Value{
			{Value: float64(s.WinCount), Label: "Won"},
			{Value: float64(s.LoseCount), Label: "No prize"},
		},
	}
	return dc.Render(chart.PNG, w)
}

// WriteProfitChart draws total prize money against total spending as a
// donut.
func WriteProfitChart(w io.Writer, s collection.Summary) error {
	if s.TotalPrize+s.TotalSpent == 0 {
		return ErrNoChartData
	}
	dc := chart.DonutChart{
		Title:  "Prize vs Spending",
		Width:  chartHeight,
		Height: chartHeight,
		Values: []chart.Value{
			{Value: float64(s.TotalPrize), Label: "Prize"},
			{Value: float64(s.TotalSpent), Label: "Spent"},
		},
	}
	return dc.Render(chart.PNG, w)
}

// WriteTopEndingsChart draws the most frequent two-digit endings as a
// bar chart.
func WriteTopEndingsChart(w io.Writer, top []stats.EndingCount) error {
	if len(top) == 0 {
		return ErrNoChartData
	}
	bars := make([]chart.Value, 0, len(top))
	for _, e := range top {
		bars = append(bars, chart.Value{Value: float64(e.Count), Label: e.Digits})
	}
	bc := chart.BarChart{
		Title:    "Frequent Endings",
		Width:    chartWidth,
		Height:   chartHeight,
		BarWidth: 60,
		Bars:     bars,
	}
	return bc.Render(chart.PNG, w)
}
