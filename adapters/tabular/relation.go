package tabular

import (
	"fmt"
	"strconv"

	"frauddash/domain/dataset"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// BuildRelation detects column types and assembles an immutable relation.
// records[0] is the header; every row must match its width.
func BuildRelation(source string, records [][]string, nullTokens []string) (*dataset.Relation, error) {
	if len(records) < 2 {
		return nil, fmt.Errorf("no data rows")
	}

	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.NaNValues(nullTokens),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("failed to type columns: %w", df.Err)
	}

	nulls := make(map[string]bool, len(nullTokens))
	for _, tok := range nullTokens {
		nulls[tok] = true
	}

	columns := make([]*dataset.Column, 0, df.Ncol())
	for j, name := range df.Names() {
		col, err := buildColumn(name, df.Col(name), records[1:], j, nulls)
		if err != nil {
			return nil, err
		}
		columns = append(columns, col)
	}

	return dataset.NewRelation(source, columns)
}

func buildColumn(name string, s series.Series, rows [][]string, idx int, nullTokens map[string]bool) (*dataset.Column, error) {
	n := s.Len()
	missing := s.IsNaN()
	labels := make([]string, n)

	switch s.Type() {
	case series.Int, series.Float:
		values := s.Float()
		for i := 0; i < n; i++ {
			if !missing[i] {
				labels[i] = strconv.FormatFloat(values[i], 'f', -1, 64)
			}
		}
		return dataset.NewColumn(name, dataset.KindNumeric, values, labels, missing)

	case series.Bool:
		values := s.Float()
		for i := 0; i < n; i++ {
			if !missing[i] {
				labels[i] = strconv.FormatBool(values[i] == 1)
			}
		}
		return dataset.NewColumn(name, dataset.KindBoolean, values, labels, missing)

	default:
		// Raw cells keep their original spelling for category labels
		for i := 0; i < n; i++ {
			cell := rows[i][idx]
			if nullTokens[cell] {
				missing[i] = true
				continue
			}
			missing[i] = false
			labels[i] = cell
		}
		return dataset.NewColumn(name, dataset.KindCategorical, nil, labels, missing)
	}
}
