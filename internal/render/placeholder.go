package render

import (
	"fmt"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
)

// Placeholder writes an SVG with a title and a centered message, used when
// a chart has nothing to draw
func Placeholder(w io.Writer, title, message string) error {
	r, err := chart.SVG(ChartWidth, ChartHeight)
	if err != nil {
		return fmt.Errorf("failed to create svg renderer: %w", err)
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return fmt.Errorf("failed to load chart font: %w", err)
	}
	r.SetFont(font)

	r.SetFontColor(colorText)
	r.SetFontSize(16)
	box := r.MeasureText(title)
	r.Text(title, (ChartWidth-box.Width())/2, 40)

	r.SetFontColor(colorMuted)
	r.SetFontSize(13)
	box = r.MeasureText(message)
	r.Text(message, (ChartWidth-box.Width())/2, ChartHeight/2)

	return r.Save(w)
}
