package analysis

import (
	"math"

	"frauddash/domain/dataset"

	"gonum.org/v1/gonum/stat"
)

// CorrelationMatrix is a symmetric matrix of Pearson coefficients over the
// numeric columns of a relation. Undefined entries are NaN.
type CorrelationMatrix struct {
	Columns []string    `json:"columns"`
	Values  [][]float64 `json:"values"`
}

// At returns the coefficient for the named pair
func (m CorrelationMatrix) At(a, b string) (float64, bool) {
	i, j := -1, -1
	for k, name := range m.Columns {
		if name == a {
			i = k
		}
		if name == b {
			j = k
		}
	}
	if i < 0 || j < 0 {
		return math.NaN(), false
	}
	return m.Values[i][j], true
}

// Correlation computes pairwise-complete Pearson coefficients over every
// numeric column in relation order. A pair with fewer than two complete rows
// or zero variance on either side is NaN, so a constant column is NaN across
// its whole row and column, diagonal included.
func Correlation(rel *dataset.Relation) CorrelationMatrix {
	var cols []*dataset.Column
	for _, col := range rel.Columns() {
		if col.IsNumeric() {
			cols = append(cols, col)
		}
	}

	m := CorrelationMatrix{
		Columns: make([]string, len(cols)),
		Values:  make([][]float64, len(cols)),
	}
	for i, col := range cols {
		m.Columns[i] = col.Name()
		m.Values[i] = make([]float64, len(cols))
	}

	for i := range cols {
		m.Values[i][i] = selfCorrelation(cols[i])
		for j := i + 1; j < len(cols); j++ {
			r := pearson(cols[i], cols[j])
			m.Values[i][j] = r
			m.Values[j][i] = r
		}
	}
	return m
}

func selfCorrelation(col *dataset.Column) float64 {
	values := nonNull(col)
	if len(values) < 2 || stat.Variance(values, nil) == 0 {
		return math.NaN()
	}
	return 1
}

func pearson(a, b *dataset.Column) float64 {
	x := make([]float64, 0, a.Len())
	y := make([]float64, 0, a.Len())
	for i := 0; i < a.Len(); i++ {
		va, okA := a.Float(i)
		vb, okB := b.Float(i)
		if okA && okB {
			x = append(x, va)
			y = append(y, vb)
		}
	}
	if len(x) < 2 || stat.Variance(x, nil) == 0 || stat.Variance(y, nil) == 0 {
		return math.NaN()
	}

	r := stat.Correlation(x, y, nil)
	return math.Max(-1, math.Min(1, r))
}

// finite drops NaN and infinite values
func finite(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out = append(out, v)
		}
	}
	return out
}

func nonNull(col *dataset.Column) []float64 {
	values := make([]float64, 0, col.Len())
	for i := 0; i < col.Len(); i++ {
		if v, ok := col.Float(i); ok {
			values = append(values, v)
		}
	}
	return values
}
