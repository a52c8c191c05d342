package analysis

import (
	"fmt"

	"frauddash/domain/core"
	"frauddash/domain/dataset"
)

// CountGroup is one partition's counts aligned to CountTable.Categories
type CountGroup struct {
	Label  dataset.Label `json:"label"`
	Counts []int         `json:"counts"`
	Nulls  int           `json:"nulls"`
}

// CountTable holds per-category counts for each partition over one shared
// category list, so a category seen on only one side is zero on the other.
type CountTable struct {
	Column     string       `json:"column"`
	Categories []string     `json:"categories"`
	Groups     []CountGroup `json:"groups"`
}

// Group returns the group for label, if present
func (t CountTable) Group(label dataset.Label) (CountGroup, bool) {
	for _, g := range t.Groups {
		if g.Label == label {
			return g, true
		}
	}
	return CountGroup{}, false
}

// Total returns the number of non-null rows counted across all groups
func (t CountTable) Total() int {
	total := 0
	for _, g := range t.Groups {
		for _, c := range g.Counts {
			total += c
		}
	}
	return total
}

// CategoricalSummary counts column values per partition. Categories are the
// distinct non-null values of the whole relation in order of first
// appearance. Nulls are reported per group and never become a category.
func CategoricalSummary(rel *dataset.Relation, p0, p1 dataset.Partition, column string) (CountTable, error) {
	for _, p := range []dataset.Partition{p0, p1} {
		if p.Relation() != nil && p.Relation() != rel {
			return CountTable{}, fmt.Errorf("partition %s comes from a different relation", p.Label)
		}
	}

	col, ok := rel.Column(column)
	if !ok {
		return CountTable{}, core.NewColumnMissingError(column)
	}

	index := make(map[string]int)
	var categories []string
	for i := 0; i < col.Len(); i++ {
		if col.IsNull(i) {
			continue
		}
		label := col.Label(i)
		if _, seen := index[label]; !seen {
			index[label] = len(categories)
			categories = append(categories, label)
		}
	}
	if categories == nil {
		categories = []string{}
	}

	table := CountTable{Column: column, Categories: categories}
	for _, p := range []dataset.Partition{p0, p1} {
		group := CountGroup{Label: p.Label, Counts: make([]int, len(categories))}
		for _, row := range p.Rows() {
			if col.IsNull(row) {
				group.Nulls++
				continue
			}
			group.Counts[index[col.Label(row)]]++
		}
		table.Groups = append(table.Groups, group)
	}
	return table, nil
}
