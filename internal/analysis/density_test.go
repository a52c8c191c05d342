package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDensity_Grid(t *testing.T) {
	values := []float64{1, 2, 3, 4, 8}
	curve := Density(values, 100)

	require.Len(t, curve.X, 100)
	require.Len(t, curve.Y, 100)
	assert.Equal(t, 1.0, curve.X[0])
	assert.Less(t, curve.X[99], 8.0)
	for k := 1; k < len(curve.X); k++ {
		assert.Greater(t, curve.X[k], curve.X[k-1])
	}
	for _, y := range curve.Y {
		assert.GreaterOrEqual(t, y, 0.0)
	}
}

func TestDensity_ScottBandwidth(t *testing.T) {
	values := []float64{1, 2, 3, 4}
	curve := Density(values, 10)

	sd := math.Sqrt(5.0 / 3.0)
	assert.InDelta(t, sd*math.Pow(4, -0.2), curve.Bandwidth, 1e-12)
}

func TestDensity_IntegratesBelowOne(t *testing.T) {
	values := []float64{10, 12, 13, 15, 15, 16, 18, 20, 21, 25}
	curve := Density(values, 500)

	area := 0.0
	for k := 1; k < len(curve.X); k++ {
		area += (curve.X[k] - curve.X[k-1]) * (curve.Y[k] + curve.Y[k-1]) / 2
	}
	// The grid stops at the sample range so kernel tails fall outside it
	assert.Greater(t, area, 0.5)
	assert.Less(t, area, 1.0)
}

func TestDensity_Degenerate(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
	}{
		{"nil", nil},
		{"single", []float64{3}},
		{"constant", []float64{2, 2, 2}},
		{"nan only", []float64{math.NaN(), math.NaN()}},
		{"one after nan", []float64{math.NaN(), 5}},
		{"one finite", []float64{math.Inf(1), 5, math.Inf(-1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			curve := Density(tt.values, 50)
			assert.True(t, curve.IsEmpty())
			assert.NotNil(t, curve.X)
			assert.NotNil(t, curve.Y)
		})
	}
}
