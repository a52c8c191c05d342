package analysis

import (
	"strings"

	"frauddash/domain/core"
	"frauddash/domain/dataset"
)

// Partition splits the relation into legitimate (flag 0) and fraud (flag 1)
// row sets. Every row lands in exactly one partition, in original order.
// A missing flag column or any null/unmappable flag value fails the whole
// split with no partial result.
func Partition(rel *dataset.Relation, flagColumn string) (legit, fraud dataset.Partition, err error) {
	col, ok := rel.Column(flagColumn)
	if !ok {
		return dataset.Partition{}, dataset.Partition{}, core.NewColumnMissingError(flagColumn)
	}

	var zeros, ones []int
	for i := 0; i < col.Len(); i++ {
		flag, ok := flagValue(col, i)
		if !ok {
			return dataset.Partition{}, dataset.Partition{}, core.NewInvalidFlagError(flagColumn, i, col.Label(i))
		}
		if flag == dataset.FlagFraud {
			ones = append(ones, i)
		} else {
			zeros = append(zeros, i)
		}
	}

	legit = dataset.NewPartition(rel, dataset.LabelLegitimate, dataset.FlagLegitimate, zeros)
	fraud = dataset.NewPartition(rel, dataset.LabelFraud, dataset.FlagFraud, ones)
	return legit, fraud, nil
}

// flagValue maps numeric 0/1, booleans and their string spellings to a flag
func flagValue(col *dataset.Column, i int) (int, bool) {
	if col.IsNull(i) {
		return 0, false
	}

	if v, ok := col.Float(i); ok {
		switch v {
		case 0:
			return dataset.FlagLegitimate, true
		case 1:
			return dataset.FlagFraud, true
		}
		return 0, false
	}

	switch strings.ToLower(strings.TrimSpace(col.Label(i))) {
	case "0", "false":
		return dataset.FlagLegitimate, true
	case "1", "true":
		return dataset.FlagFraud, true
	}
	return 0, false
}
