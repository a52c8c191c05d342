package synth

import (
	"path/filepath"
	"testing"

	"frauddash/adapters/tabular"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteRecords_Formats(t *testing.T) {
	records, err := NewTransactionGenerator(TransactionConfig{Rows: 15, FraudRate: 0.5, Seed: 3}).GenerateRecords()
	require.NoError(t, err)
	dir := t.TempDir()

	for _, name := range []string{"sample.csv", "sample.xlsx"} {
		path := filepath.Join(dir, name)
		require.NoError(t, WriteRecords(path, records), name)

		rel, err := tabular.ReadRelation(tabular.DefaultReaderConfig(path), nil)
		require.NoError(t, err, name)
		assert.Equal(t, 15, rel.RowCount(), name)
		assert.Equal(t, len(TransactionHeader), rel.ColumnCount(), name)
	}

	assert.Error(t, WriteRecords(filepath.Join(dir, "sample.json"), records))
}
