package analysis

import (
	"testing"

	"frauddash/domain/core"
	"frauddash/domain/dataset"
	"frauddash/internal/synth"
	"frauddash/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartition_ToyRelation(t *testing.T) {
	rel, err := testkit.ToyRelation()
	require.NoError(t, err)

	legit, fraud, err := Partition(rel, "flag")
	require.NoError(t, err)

	assert.Equal(t, dataset.LabelLegitimate, legit.Label)
	assert.Equal(t, dataset.LabelFraud, fraud.Label)
	assert.Equal(t, []int{0, 1}, legit.Rows())
	assert.Equal(t, []int{2, 3}, fraud.Rows())
	assert.Same(t, rel, legit.Relation())
	assert.Same(t, rel, fraud.Relation())
}

func TestPartition_DisjointAndComplete(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 42} {
		config := synth.TransactionConfig{Rows: 250, FraudRate: 0.2, NullRate: 0.05, Seed: seed}
		rel, err := testkit.TransactionRelation(config)
		require.NoError(t, err)

		legit, fraud, err := Partition(rel, "flag")
		require.NoError(t, err)
		assert.Equal(t, rel.RowCount(), legit.Len()+fraud.Len())

		seen := make(map[int]bool)
		for _, rows := range [][]int{legit.Rows(), fraud.Rows()} {
			for i, row := range rows {
				assert.False(t, seen[row], "row %d in both partitions", row)
				seen[row] = true
				if i > 0 {
					assert.Less(t, rows[i-1], row, "order not preserved")
				}
			}
		}
	}
}

func TestPartition_Deterministic(t *testing.T) {
	rel, err := testkit.TransactionRelation(synth.DefaultTransactionConfig())
	require.NoError(t, err)

	l1, f1, err := Partition(rel, "flag")
	require.NoError(t, err)
	l2, f2, err := Partition(rel, "flag")
	require.NoError(t, err)

	assert.Equal(t, l1.Rows(), l2.Rows())
	assert.Equal(t, f1.Rows(), f2.Rows())
}

func TestPartition_FlagEncodings(t *testing.T) {
	tests := []struct {
		name  string
		flags []string
		legit []int
		fraud []int
	}{
		{"integers", []string{"0", "1", "1"}, []int{0}, []int{1, 2}},
		{"floats", []string{"1.0", "0.0", "0"}, []int{1, 2}, []int{0}},
		{"booleans", []string{"true", "false", "false"}, []int{1, 2}, []int{0}},
		{"all legitimate", []string{"0", "0", "0"}, []int{0, 1, 2}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := [][]string{{"flag", "amount"}}
			for i, f := range tt.flags {
				records = append(records, []string{f, string(rune('1' + i))})
			}
			rel, err := testkit.RelationFromRecords(records)
			require.NoError(t, err)

			legit, fraud, err := Partition(rel, "flag")
			require.NoError(t, err)
			assert.Equal(t, tt.legit, legit.Rows())
			assert.Equal(t, tt.fraud, fraud.Rows())
		})
	}
}

func TestPartition_Errors(t *testing.T) {
	rel, err := testkit.ToyRelation()
	require.NoError(t, err)

	_, _, err = Partition(rel, "is_fraud")
	assert.ErrorIs(t, err, core.ErrColumnMissing)

	tests := []struct {
		name  string
		flags []string
	}{
		{"out of range", []string{"0", "2"}},
		{"null", []string{"0", ""}},
		{"word", []string{"yes", "no"}},
		{"fraction", []string{"0", "0.5"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := [][]string{{"flag", "amount"}, {tt.flags[0], "1"}, {tt.flags[1], "2"}}
			rel, err := testkit.RelationFromRecords(records)
			require.NoError(t, err)

			legit, fraud, err := Partition(rel, "flag")
			assert.ErrorIs(t, err, core.ErrInvalidFlag)
			assert.Zero(t, legit.Len())
			assert.Zero(t, fraud.Len())
		})
	}
}
