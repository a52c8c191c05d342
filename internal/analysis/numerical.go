package analysis

import (
	"fmt"
	"math"

	"frauddash/domain/core"
	"frauddash/domain/dataset"
)

// SeriesGroup is one partition's values for a numerical feature
type SeriesGroup struct {
	Label  dataset.Label `json:"label"`
	Values []float64     `json:"values"`
	Nulls  int           `json:"nulls"`
}

// NumericalSeries holds the per-partition values of a numerical column.
// Groups follow the order of the partitions passed to NumericalSummary.
type NumericalSeries struct {
	Column string        `json:"column"`
	Groups []SeriesGroup `json:"groups"`
}

// Group returns the group for label, if present
func (s NumericalSeries) Group(label dataset.Label) (SeriesGroup, bool) {
	for _, g := range s.Groups {
		if g.Label == label {
			return g, true
		}
	}
	return SeriesGroup{}, false
}

// NumericalSummary extracts column's values from each partition in row
// order. Under NullsExclude null cells are dropped and counted; under
// NullsKeep they are kept as NaN.
func NumericalSummary(p0, p1 dataset.Partition, column string, policy dataset.NullPolicy) (NumericalSeries, error) {
	rel, err := sharedRelation(p0, p1)
	if err != nil {
		return NumericalSeries{}, err
	}

	col, ok := rel.Column(column)
	if !ok {
		return NumericalSeries{}, core.NewColumnMissingError(column)
	}
	if !col.IsNumeric() {
		return NumericalSeries{}, core.NewColumnTypeError(column, string(dataset.KindNumeric), string(col.Kind()))
	}

	series := NumericalSeries{Column: column}
	for _, p := range []dataset.Partition{p0, p1} {
		group := SeriesGroup{Label: p.Label, Values: make([]float64, 0, p.Len())}
		for _, row := range p.Rows() {
			v, ok := col.Float(row)
			if !ok {
				group.Nulls++
				if policy == dataset.NullsKeep {
					group.Values = append(group.Values, math.NaN())
				}
				continue
			}
			group.Values = append(group.Values, v)
		}
		series.Groups = append(series.Groups, group)
	}
	return series, nil
}

// sharedRelation returns the relation both partitions view
func sharedRelation(p0, p1 dataset.Partition) (*dataset.Relation, error) {
	rel := p0.Relation()
	if rel == nil {
		rel = p1.Relation()
	}
	if rel == nil {
		return nil, fmt.Errorf("partitions carry no relation")
	}
	if p1.Relation() != nil && p1.Relation() != rel {
		return nil, fmt.Errorf("partitions come from different relations")
	}
	return rel, nil
}
