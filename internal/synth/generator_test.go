package synth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionGenerator_Basic(t *testing.T) {
	config := TransactionConfig{Rows: 200, FraudRate: 0.3, Seed: 7}

	records, err := NewTransactionGenerator(config).GenerateRecords()
	require.NoError(t, err)
	require.Len(t, records, 201)
	assert.Equal(t, TransactionHeader, records[0])

	for i, row := range records[1:] {
		require.Len(t, row, len(TransactionHeader), "row %d", i)
		assert.Contains(t, []string{"0", "1"}, row[0])
	}
}

func TestTransactionGenerator_Deterministic(t *testing.T) {
	config := DefaultTransactionConfig()
	config.Rows = 50

	a, err := NewTransactionGenerator(config).GenerateRecords()
	require.NoError(t, err)
	b, err := NewTransactionGenerator(config).GenerateRecords()
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestTransactionGenerator_InvalidConfig(t *testing.T) {
	_, err := NewTransactionGenerator(TransactionConfig{Rows: 0}).GenerateRecords()
	assert.Error(t, err)

	_, err = NewTransactionGenerator(TransactionConfig{Rows: 10, FraudRate: 2}).GenerateRecords()
	assert.Error(t, err)
}
