package analysis

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// DensityCurve is a Gaussian kernel density estimate sampled on a grid
type DensityCurve struct {
	X         []float64 `json:"x"`
	Y         []float64 `json:"y"`
	Bandwidth float64   `json:"bandwidth"`
}

// IsEmpty reports whether no curve could be estimated
func (c DensityCurve) IsEmpty() bool { return len(c.X) == 0 }

// Density estimates the distribution of values with a Gaussian kernel and
// Scott's bandwidth (sample sd * n^-1/5), evaluated at points positions
// spaced evenly from min(values) toward max(values). NaN and infinite inputs
// are ignored.
// Fewer than two values or zero spread yields an empty curve.
func Density(values []float64, points int) DensityCurve {
	clean := finite(values)
	if len(clean) < 2 || points < 1 {
		return DensityCurve{X: []float64{}, Y: []float64{}}
	}

	sd, err := stats.StandardDeviationSample(clean)
	if err != nil || sd == 0 || math.IsNaN(sd) {
		return DensityCurve{X: []float64{}, Y: []float64{}}
	}
	lo, _ := stats.Min(clean)
	hi, _ := stats.Max(clean)

	n := float64(len(clean))
	bw := sd * math.Pow(n, -0.2)
	step := (hi - lo) / float64(points)

	curve := DensityCurve{
		X:         make([]float64, points),
		Y:         make([]float64, points),
		Bandwidth: bw,
	}
	for k := 0; k < points; k++ {
		x := lo + float64(k)*step
		sum := 0.0
		for _, v := range clean {
			sum += distuv.UnitNormal.Prob((x - v) / bw)
		}
		curve.X[k] = x
		curve.Y[k] = sum / (n * bw)
	}
	return curve
}
