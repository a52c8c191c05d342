package analysis

import (
	"math"
	"testing"

	"frauddash/internal/synth"
	"frauddash/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorrelation_ToyRelation(t *testing.T) {
	rel, err := testkit.ToyRelation()
	require.NoError(t, err)

	m := Correlation(rel)
	assert.Equal(t, []string{"flag", "amount"}, m.Columns)

	r, ok := m.At("flag", "amount")
	require.True(t, ok)
	assert.InDelta(t, 2/math.Sqrt(5), r, 1e-9)
	assert.Equal(t, 1.0, m.Values[0][0])
	assert.Equal(t, 1.0, m.Values[1][1])

	_, ok = m.At("flag", "device")
	assert.False(t, ok)
}

func TestCorrelation_SymmetricAndBounded(t *testing.T) {
	config := synth.DefaultTransactionConfig()
	config.NullRate = 0.05
	rel, err := testkit.TransactionRelation(config)
	require.NoError(t, err)

	m := Correlation(rel)
	require.Len(t, m.Columns, 4)
	for i := range m.Values {
		assert.Equal(t, 1.0, m.Values[i][i])
		for j := range m.Values[i] {
			assert.Equal(t, m.Values[i][j], m.Values[j][i])
			assert.GreaterOrEqual(t, m.Values[i][j], -1.0)
			assert.LessOrEqual(t, m.Values[i][j], 1.0)
		}
	}
}

func TestCorrelation_ZeroVariance(t *testing.T) {
	records := [][]string{
		{"flag", "amount", "fee", "score"},
		{"0", "10", "2", "1"},
		{"0", "20", "2", "3"},
		{"1", "30", "2", "2"},
	}
	rel, err := testkit.RelationFromRecords(records)
	require.NoError(t, err)

	m := Correlation(rel)
	require.Equal(t, []string{"flag", "amount", "fee", "score"}, m.Columns)

	for _, other := range m.Columns {
		r, _ := m.At("fee", other)
		assert.True(t, math.IsNaN(r), "fee/%s", other)
		r, _ = m.At(other, "fee")
		assert.True(t, math.IsNaN(r), "%s/fee", other)
	}
	r, _ := m.At("amount", "score")
	assert.InDelta(t, 0.5, r, 1e-9)
}

func TestCorrelation_PairwiseComplete(t *testing.T) {
	records := [][]string{
		{"a", "b"},
		{"1", "2"},
		{"2", "4"},
		{"", "100"},
		{"3", "6"},
		{"4", ""},
	}
	rel, err := testkit.RelationFromRecords(records)
	require.NoError(t, err)

	r, ok := Correlation(rel).At("a", "b")
	require.True(t, ok)
	assert.InDelta(t, 1.0, r, 1e-9)
}

func TestCorrelation_NoNumericColumns(t *testing.T) {
	rel, err := testkit.RelationFromRecords([][]string{{"device"}, {"web"}, {"mobile"}})
	require.NoError(t, err)

	m := Correlation(rel)
	assert.Empty(t, m.Columns)
	assert.Empty(t, m.Values)
}
