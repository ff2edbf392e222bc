package report

import (
	"errors"
	"io"
	"time"

	"github.com/wcharczuk/go-chart/v2"
)

// ErrNoData is returned when there is nothing to chart; callers show a
// message in place of the chart instead of failing.
var ErrNoData = errors.New("no data to chart")

// RenderProfitChart writes a PNG line chart of the daily profit series.
func RenderProfitChart(w io.Writer, series []DailyProfit) error {
	if len(series) == 0 {
		return ErrNoData
	}

	xs := make([]time.Time, 0, len(series)+1)
	ys := make([]float64, 0, len(series)+1)
	for _, p := range series {
		xs = append(xs, p.Day)
		ys = append(ys, p.GrossProfit)
	}
	if len(xs) == 1 {
		// The renderer needs two points to draw a range; extend a lone day
		// into a flat one-day segment.
		xs = append(xs, xs[0].AddDate(0, 0, 1))
		ys = append(ys, ys[0])
	}

	// A flat series has a zero value range, which the renderer rejects.
	minY, maxY := ys[0], ys[0]
	for _, y := range ys {
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}
	var yAxis chart.YAxis
	if minY == maxY {
		yAxis = chart.YAxis{Range: &chart.ContinuousRange{Min: minY - 1, Max: maxY + 1}}
	}

	graph := chart.Chart{
		Title:  "Daily gross profit",
		Width:  900,
		Height: 450,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		YAxis: yAxis,
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Gross profit (DZD)",
				XValues: xs,
				YValues: ys,
			},
		},
	}

	return graph.Render(chart.PNG, w)
}
