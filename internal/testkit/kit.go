package testkit

import (
	"path/filepath"

	"frauddash/adapters/tabular"
	"frauddash/domain/dataset"
	"frauddash/internal/synth"
)

// ToyRecords is the four-row table used throughout the tests
func ToyRecords() [][]string {
	return [][]string{
		{"flag", "amount", "device"},
		{"0", "10", "mobile"},
		{"0", "20", "web"},
		{"1", "30", "mobile"},
		{"1", "40", "mobile"},
	}
}

// RelationFromRecords types records the same way the file reader does
func RelationFromRecords(records [][]string) (*dataset.Relation, error) {
	return tabular.BuildRelation("memory", records, tabular.DefaultReaderConfig("").NullTokens)
}

// ToyRelation builds the relation for ToyRecords
func ToyRelation() (*dataset.Relation, error) {
	return RelationFromRecords(ToyRecords())
}

// TransactionRelation generates a seeded transaction table and types it
func TransactionRelation(config synth.TransactionConfig) (*dataset.Relation, error) {
	records, err := synth.NewTransactionGenerator(config).GenerateRecords()
	if err != nil {
		return nil, err
	}
	return RelationFromRecords(records)
}

// WriteTransactionCSV generates a seeded transaction table into dir and
// returns the file path
func WriteTransactionCSV(dir string, config synth.TransactionConfig) (string, error) {
	records, err := synth.NewTransactionGenerator(config).GenerateRecords()
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, "Cleaned.csv")
	return path, synth.WriteCSV(path, records)
}
