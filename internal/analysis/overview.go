package analysis

import (
	"frauddash/domain/dataset"

	"github.com/montanaflynn/stats"
)

// ColumnProfile describes one column of the relation
type ColumnProfile struct {
	Name     string             `json:"name"`
	Kind     dataset.ColumnKind `json:"kind"`
	NonNull  int                `json:"non_null"`
	Nulls    int                `json:"nulls"`
	Distinct int                `json:"distinct"`
	Numeric  *NumericProfile    `json:"numeric,omitempty"`
}

// NumericProfile holds descriptive statistics of a numeric column's
// non-null values. StdDev is the sample deviation and is 0 below two values.
type NumericProfile struct {
	Min    float64 `json:"min"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Max    float64 `json:"max"`
	StdDev float64 `json:"std_dev"`
}

// Overview is the dataset shape, a preview of leading rows and per-column profiles
type Overview struct {
	Source   string          `json:"source"`
	Rows     int             `json:"rows"`
	Columns  int             `json:"columns"`
	Header   []string        `json:"header"`
	Head     [][]string      `json:"head"`
	Profiles []ColumnProfile `json:"profiles"`
}

// BuildOverview reports shape and profiles of rel with up to headRows
// leading rows
func BuildOverview(rel *dataset.Relation, headRows int) Overview {
	n := min(max(headRows, 0), rel.RowCount())

	ov := Overview{
		Source:   rel.Source(),
		Rows:     rel.RowCount(),
		Columns:  rel.ColumnCount(),
		Header:   rel.ColumnNames(),
		Head:     make([][]string, 0, n),
		Profiles: make([]ColumnProfile, 0, rel.ColumnCount()),
	}
	for i := 0; i < n; i++ {
		ov.Head = append(ov.Head, rel.Row(i))
	}
	for _, col := range rel.Columns() {
		ov.Profiles = append(ov.Profiles, profileColumn(col))
	}
	return ov
}

func profileColumn(col *dataset.Column) ColumnProfile {
	p := ColumnProfile{Name: col.Name(), Kind: col.Kind(), Nulls: col.NullCount()}
	p.NonNull = col.Len() - p.Nulls

	distinct := make(map[string]struct{})
	for i := 0; i < col.Len(); i++ {
		if !col.IsNull(i) {
			distinct[col.Label(i)] = struct{}{}
		}
	}
	p.Distinct = len(distinct)

	if !col.IsNumeric() {
		return p
	}

	p.Numeric = Describe(nonNull(col))
	return p
}

// Describe summarizes the finite values. It returns nil when none are left.
func Describe(values []float64) *NumericProfile {
	data := stats.Float64Data(finite(values))
	if len(data) == 0 {
		return nil
	}

	np := &NumericProfile{}
	np.Min, _ = data.Min()
	np.Max, _ = data.Max()
	np.Mean, _ = data.Mean()
	np.Median, _ = data.Median()
	if len(data) > 1 {
		np.StdDev, _ = data.StandardDeviationSample()
	}
	return np
}
