package analysis

import (
	"math"
	"testing"

	"frauddash/domain/core"
	"frauddash/domain/dataset"
	"frauddash/internal/synth"
	"frauddash/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func partitionRecords(t *testing.T, records [][]string) (*dataset.Relation, dataset.Partition, dataset.Partition) {
	t.Helper()
	rel, err := testkit.RelationFromRecords(records)
	require.NoError(t, err)
	legit, fraud, err := Partition(rel, "flag")
	require.NoError(t, err)
	return rel, legit, fraud
}

func TestSummaries_ToyRelation(t *testing.T) {
	rel, legit, fraud := partitionRecords(t, testkit.ToyRecords())

	series, err := NumericalSummary(legit, fraud, "amount", dataset.NullsExclude)
	require.NoError(t, err)
	require.Len(t, series.Groups, 2)
	assert.Equal(t, []float64{10, 20}, series.Groups[0].Values)
	assert.Equal(t, []float64{30, 40}, series.Groups[1].Values)

	table, err := CategoricalSummary(rel, legit, fraud, "device")
	require.NoError(t, err)
	assert.Equal(t, []string{"mobile", "web"}, table.Categories)

	lg, ok := table.Group(dataset.LabelLegitimate)
	require.True(t, ok)
	fg, ok := table.Group(dataset.LabelFraud)
	require.True(t, ok)
	assert.Equal(t, []int{1, 1}, lg.Counts)
	assert.Equal(t, []int{2, 0}, fg.Counts)
	assert.Equal(t, 4, table.Total())
}

func TestNumericalSummary_Nulls(t *testing.T) {
	records := [][]string{
		{"flag", "amount"},
		{"0", "5"},
		{"0", ""},
		{"1", "NA"},
		{"1", "7.5"},
	}
	_, legit, fraud := partitionRecords(t, records)

	series, err := NumericalSummary(legit, fraud, "amount", dataset.NullsExclude)
	require.NoError(t, err)
	assert.Equal(t, []float64{5}, series.Groups[0].Values)
	assert.Equal(t, []float64{7.5}, series.Groups[1].Values)
	assert.Equal(t, 1, series.Groups[0].Nulls)
	assert.Equal(t, 1, series.Groups[1].Nulls)

	kept, err := NumericalSummary(legit, fraud, "amount", dataset.NullsKeep)
	require.NoError(t, err)
	require.Len(t, kept.Groups[0].Values, 2)
	assert.Equal(t, 5.0, kept.Groups[0].Values[0])
	assert.True(t, math.IsNaN(kept.Groups[0].Values[1]))
	assert.True(t, math.IsNaN(kept.Groups[1].Values[0]))
}

func TestNumericalSummary_EmptyPartition(t *testing.T) {
	records := [][]string{{"flag", "amount"}, {"0", "1"}, {"0", "2"}}
	_, legit, fraud := partitionRecords(t, records)
	require.True(t, fraud.IsEmpty())

	series, err := NumericalSummary(legit, fraud, "amount", dataset.NullsExclude)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, series.Groups[0].Values)
	assert.NotNil(t, series.Groups[1].Values)
	assert.Empty(t, series.Groups[1].Values)

	g, ok := series.Group(dataset.LabelFraud)
	require.True(t, ok)
	assert.Empty(t, g.Values)
}

func TestNumericalSummary_Errors(t *testing.T) {
	_, legit, fraud := partitionRecords(t, testkit.ToyRecords())

	_, err := NumericalSummary(legit, fraud, "balance", dataset.NullsExclude)
	assert.ErrorIs(t, err, core.ErrColumnMissing)

	_, err = NumericalSummary(legit, fraud, "device", dataset.NullsExclude)
	assert.ErrorIs(t, err, core.ErrColumnType)

	_, err = NumericalSummary(dataset.Partition{}, dataset.Partition{}, "amount", dataset.NullsExclude)
	assert.Error(t, err)
}

func TestCategoricalSummary_Alignment(t *testing.T) {
	records := [][]string{
		{"flag", "method"},
		{"1", "crypto"},
		{"0", "card"},
		{"0", "paypal"},
		{"1", "crypto"},
		{"0", ""},
		{"1", "card"},
	}
	rel, legit, fraud := partitionRecords(t, records)

	table, err := CategoricalSummary(rel, legit, fraud, "method")
	require.NoError(t, err)
	assert.Equal(t, []string{"crypto", "card", "paypal"}, table.Categories)
	require.Len(t, table.Groups, 2)

	for _, g := range table.Groups {
		assert.Len(t, g.Counts, len(table.Categories))
	}
	assert.Equal(t, []int{0, 1, 1}, table.Groups[0].Counts)
	assert.Equal(t, []int{2, 1, 0}, table.Groups[1].Counts)
	assert.Equal(t, 1, table.Groups[0].Nulls)
	assert.Equal(t, 0, table.Groups[1].Nulls)
}

func TestCategoricalSummary_NumericColumn(t *testing.T) {
	rel, legit, fraud := partitionRecords(t, testkit.ToyRecords())

	table, err := CategoricalSummary(rel, legit, fraud, "amount")
	require.NoError(t, err)
	assert.Equal(t, []string{"10", "20", "30", "40"}, table.Categories)
	assert.Equal(t, []int{1, 1, 0, 0}, table.Groups[0].Counts)
	assert.Equal(t, []int{0, 0, 1, 1}, table.Groups[1].Counts)
}

func TestCategoricalSummary_Errors(t *testing.T) {
	rel, legit, fraud := partitionRecords(t, testkit.ToyRecords())

	_, err := CategoricalSummary(rel, legit, fraud, "browser")
	assert.ErrorIs(t, err, core.ErrColumnMissing)

	other, err := testkit.ToyRelation()
	require.NoError(t, err)
	_, err = CategoricalSummary(other, legit, fraud, "device")
	assert.Error(t, err)
}

func TestCategoricalSummary_GeneratedData(t *testing.T) {
	config := synth.DefaultTransactionConfig()
	config.NullRate = 0.1
	rel, err := testkit.TransactionRelation(config)
	require.NoError(t, err)
	legit, fraud, err := Partition(rel, "flag")
	require.NoError(t, err)

	for _, feature := range dataset.CategoricalFeatures {
		table, err := CategoricalSummary(rel, legit, fraud, feature)
		require.NoError(t, err, feature)
		nulls := table.Groups[0].Nulls + table.Groups[1].Nulls
		assert.Equal(t, rel.RowCount(), table.Total()+nulls, feature)
	}
}
