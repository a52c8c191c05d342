package render

import (
	"math"
	"strconv"

	"frauddash/internal/analysis"
)

// HeatmapTitle heads the correlation section
const HeatmapTitle = "Feature Correlation Heatmap"

// HeatmapCell is one rendered matrix entry
type HeatmapCell struct {
	Text  string
	Fill  string
	Ink   string
	Title string
}

// HeatmapRow is one matrix row
type HeatmapRow struct {
	Name  string
	Cells []HeatmapCell
}

// Heatmap is a correlation matrix laid out for an HTML table
type Heatmap struct {
	Title   string
	Columns []string
	Rows    []HeatmapRow
	Legend  []HeatmapCell
}

const (
	fillUndefined = "#d9d9d9"
	inkLight      = "#ffffff"
	inkDark       = "#111111"
)

// BuildHeatmap colors each coefficient on a viridis scale spanning [-1, 1].
// NaN entries render as grey "n/a" cells.
func BuildHeatmap(m analysis.CorrelationMatrix) Heatmap {
	h := Heatmap{
		Title:   HeatmapTitle,
		Columns: append([]string(nil), m.Columns...),
		Rows:    make([]HeatmapRow, len(m.Columns)),
	}
	for i, name := range m.Columns {
		row := HeatmapRow{Name: name, Cells: make([]HeatmapCell, len(m.Columns))}
		for j, other := range m.Columns {
			cell := heatmapCell(m.Values[i][j])
			cell.Title = name + " / " + other + ": " + cell.Text
			row.Cells[j] = cell
		}
		h.Rows[i] = row
	}
	for _, v := range []float64{-1, -0.5, 0, 0.5, 1} {
		h.Legend = append(h.Legend, heatmapCell(v))
	}
	return h
}

func heatmapCell(v float64) HeatmapCell {
	if math.IsNaN(v) {
		return HeatmapCell{Text: "n/a", Fill: fillUndefined, Ink: inkDark}
	}
	t := (v + 1) / 2
	ink := inkLight
	if t > 0.6 {
		ink = inkDark
	}
	return HeatmapCell{
		Text: strconv.FormatFloat(v, 'f', 2, 64),
		Fill: hex(Viridis(t)),
		Ink:  ink,
	}
}
