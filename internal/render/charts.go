package render

import (
	"fmt"
	"io"
	"math"

	"frauddash/domain/dataset"
	"frauddash/internal/analysis"

	chart "github.com/wcharczuk/go-chart/v2"
)

// LabeledCurve is a density curve for one partition
type LabeledCurve struct {
	Label dataset.Label
	Curve analysis.DensityCurve
}

// DensityTitle is the heading of the density chart for feature
func DensityTitle(feature string) string {
	return fmt.Sprintf("Density Plot for %s", feature)
}

// CategoricalTitle is the heading of the grouped bar chart for feature
func CategoricalTitle(feature string) string {
	return fmt.Sprintf("%s Distribution by Fraud Status", feature)
}

// DensityChart draws one line per non-empty curve as SVG. When every curve
// is empty a placeholder is written instead.
func DensityChart(w io.Writer, feature string, curves []LabeledCurve) error {
	var series []chart.Series
	xMin, xMax := math.Inf(1), math.Inf(-1)
	yMax := 0.0

	for _, lc := range curves {
		if lc.Curve.IsEmpty() {
			continue
		}
		for k, x := range lc.Curve.X {
			xMin = math.Min(xMin, x)
			xMax = math.Max(xMax, x)
			yMax = math.Max(yMax, lc.Curve.Y[k])
		}
		color := GroupColor(lc.Label)
		series = append(series, chart.ContinuousSeries{
			Name:    string(lc.Label),
			XValues: lc.Curve.X,
			YValues: lc.Curve.Y,
			Style: chart.Style{
				StrokeColor: color,
				StrokeWidth: 2,
			},
		})
	}

	if len(series) == 0 {
		return Placeholder(w, DensityTitle(feature), "Not enough data to estimate a density")
	}
	if xMax <= xMin {
		xMax = xMin + 1
	}

	graph := chart.Chart{
		Title:      DensityTitle(feature),
		Width:      ChartWidth,
		Height:     ChartHeight,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:  feature,
			Range: &chart.ContinuousRange{Min: xMin, Max: xMax},
		},
		YAxis: chart.YAxis{
			Name:  "Density",
			Range: &chart.ContinuousRange{Min: 0, Max: niceMax(yMax)},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(chart.SVG, w); err != nil {
		return fmt.Errorf("failed to render density chart for %s: %w", feature, err)
	}
	return nil
}

// CategoricalChart draws grouped bars, one bar per partition per category,
// in the table's category order.
func CategoricalChart(w io.Writer, table analysis.CountTable) error {
	title := CategoricalTitle(table.Column)
	if len(table.Categories) == 0 || table.Total() == 0 {
		return Placeholder(w, title, "No values to count")
	}

	var bars []chart.Value
	maxCount := 0
	for i, category := range table.Categories {
		for g, group := range table.Groups {
			label := ""
			if g == 0 {
				label = category
			}
			color := GroupColor(group.Label)
			bars = append(bars, chart.Value{
				Label: label,
				Value: float64(group.Counts[i]),
				Style: chart.Style{
					FillColor:   color,
					StrokeColor: color,
					StrokeWidth: 1,
				},
			})
			maxCount = max(maxCount, group.Counts[i])
		}
	}

	const barWidth, barSpacing = 28, 6
	width := max(ChartWidth, len(bars)*(barWidth+barSpacing)+160)

	graph := chart.BarChart{
		Title:      title,
		Width:      width,
		Height:     ChartHeight,
		BarWidth:   barWidth,
		BarSpacing: barSpacing,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		YAxis: chart.YAxis{
			Name:  "Count",
			Range: &chart.ContinuousRange{Min: 0, Max: niceMax(float64(maxCount))},
		},
		Bars: bars,
	}

	if err := graph.Render(chart.SVG, w); err != nil {
		return fmt.Errorf("failed to render categorical chart for %s: %w", table.Column, err)
	}
	return nil
}

// niceMax rounds v up with a 5% margin to one significant step so the
// axis range is never empty
func niceMax(v float64) float64 {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 1
	}
	v *= 1.05
	mag := math.Pow(10, math.Floor(math.Log10(v)))
	return math.Ceil(v/mag) * mag
}
