package render

import (
	"fmt"

	"frauddash/domain/dataset"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Chart dimensions in pixels
const (
	ChartWidth  = 900
	ChartHeight = 450
)

var (
	colorLegitimate = drawing.ColorFromHex("1f77b4")
	colorFraud      = drawing.ColorFromHex("d62728")
	colorMuted      = drawing.ColorFromHex("777777")
	colorText       = drawing.ColorFromHex("222222")
)

// GroupColor returns the fill and stroke color used for a partition label
func GroupColor(label dataset.Label) drawing.Color {
	if label == dataset.LabelFraud {
		return colorFraud
	}
	return colorLegitimate
}

// viridis stops sampled at equal intervals
var viridis = []drawing.Color{
	{R: 0x44, G: 0x01, B: 0x54, A: 255},
	{R: 0x3b, G: 0x52, B: 0x8b, A: 255},
	{R: 0x21, G: 0x91, B: 0x8c, A: 255},
	{R: 0x5e, G: 0xc9, B: 0x62, A: 255},
	{R: 0xfd, G: 0xe7, B: 0x25, A: 255},
}

// Viridis maps t in [0, 1] onto the viridis scale, clamping out-of-range input
func Viridis(t float64) drawing.Color {
	if t <= 0 {
		return viridis[0]
	}
	if t >= 1 {
		return viridis[len(viridis)-1]
	}

	pos := t * float64(len(viridis)-1)
	i := int(pos)
	frac := pos - float64(i)
	a, b := viridis[i], viridis[i+1]
	return drawing.Color{
		R: lerp(a.R, b.R, frac),
		G: lerp(a.G, b.G, frac),
		B: lerp(a.B, b.B, frac),
		A: 255,
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}

// hex formats a color for CSS
func hex(c drawing.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
