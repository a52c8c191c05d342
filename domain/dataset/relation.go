package dataset

import (
	"fmt"
)

// ColumnKind classifies a relation column for analysis
type ColumnKind string

const (
	KindNumeric     ColumnKind = "numeric"
	KindCategorical ColumnKind = "categorical"
	KindBoolean     ColumnKind = "boolean"
)

// Column is one immutable, typed column of a Relation.
// Numeric and boolean columns carry float values (booleans as 0/1); every kind
// carries a display label per row. Null rows have an empty label and NaN value.
type Column struct {
	name    string
	kind    ColumnKind
	numbers []float64
	labels  []string
	nulls   []bool
}

// NewColumn builds a column and takes ownership of the given slices.
// numbers may be nil for categorical columns.
func NewColumn(name string, kind ColumnKind, numbers []float64, labels []string, nulls []bool) (*Column, error) {
	if name == "" {
		return nil, fmt.Errorf("column name cannot be empty")
	}
	if len(labels) != len(nulls) {
		return nil, fmt.Errorf("column %q: %d labels but %d null flags", name, len(labels), len(nulls))
	}
	if kind != KindCategorical && len(numbers) != len(labels) {
		return nil, fmt.Errorf("column %q: %d values but %d labels", name, len(numbers), len(labels))
	}
	return &Column{name: name, kind: kind, numbers: numbers, labels: labels, nulls: nulls}, nil
}

// Name returns the column header
func (c *Column) Name() string { return c.name }

// Kind returns the column kind
func (c *Column) Kind() ColumnKind { return c.kind }

// Len returns the number of rows
func (c *Column) Len() int { return len(c.labels) }

// IsNumeric reports whether the column holds int or float data
func (c *Column) IsNumeric() bool { return c.kind == KindNumeric }

// IsNull reports whether row i is null
func (c *Column) IsNull(i int) bool { return c.nulls[i] }

// Float returns the numeric value of row i. Categorical columns have no
// numeric values and return false.
func (c *Column) Float(i int) (float64, bool) {
	if c.kind == KindCategorical || c.nulls[i] {
		return 0, false
	}
	return c.numbers[i], true
}

// Label returns the display value of row i ("" when null)
func (c *Column) Label(i int) string { return c.labels[i] }

// NullCount returns how many rows are null
func (c *Column) NullCount() int {
	n := 0
	for _, null := range c.nulls {
		if null {
			n++
		}
	}
	return n
}

// Relation is the immutable in-memory table loaded from the source file.
type Relation struct {
	source  string
	columns []*Column
	index   map[string]int
	rows    int
}

// NewRelation assembles columns into a relation. All columns must have the
// same length and unique names.
func NewRelation(source string, columns []*Column) (*Relation, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("relation has no columns")
	}

	rows := columns[0].Len()
	index := make(map[string]int, len(columns))
	for i, col := range columns {
		if col.Len() != rows {
			return nil, fmt.Errorf("column %q has %d rows, expected %d", col.Name(), col.Len(), rows)
		}
		if _, dup := index[col.Name()]; dup {
			return nil, fmt.Errorf("duplicate column %q", col.Name())
		}
		index[col.Name()] = i
	}

	return &Relation{
		source:  source,
		columns: columns,
		index:   index,
		rows:    rows,
	}, nil
}

// Source returns the path the relation was loaded from
func (r *Relation) Source() string { return r.source }

// RowCount returns the number of rows
func (r *Relation) RowCount() int { return r.rows }

// ColumnCount returns the number of columns
func (r *Relation) ColumnCount() int { return len(r.columns) }

// ColumnNames returns the headers in file order
func (r *Relation) ColumnNames() []string {
	names := make([]string, len(r.columns))
	for i, col := range r.columns {
		names[i] = col.Name()
	}
	return names
}

// Columns returns the columns in file order
func (r *Relation) Columns() []*Column {
	out := make([]*Column, len(r.columns))
	copy(out, r.columns)
	return out
}

// Column looks up a column by name
func (r *Relation) Column(name string) (*Column, bool) {
	i, ok := r.index[name]
	if !ok {
		return nil, false
	}
	return r.columns[i], true
}

// Row returns the display values of row i in column order
func (r *Relation) Row(i int) []string {
	out := make([]string, len(r.columns))
	for j, col := range r.columns {
		out[j] = col.Label(i)
	}
	return out
}
