package tabular

import (
	"time"

	"frauddash/domain/core"
	"frauddash/domain/dataset"
	"frauddash/internal"
)

// ReadRelation reads the configured file and builds the relation. Any failure
// is reported as core.ErrDataUnavailable and no relation is returned.
func ReadRelation(config ReaderConfig, logger *internal.Logger) (*dataset.Relation, error) {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	start := time.Now()

	records, err := NewDataReader(config, logger).ReadRecords()
	if err != nil {
		return nil, core.NewDataUnavailableError(config.FilePath, err)
	}

	rel, err := BuildRelation(config.FilePath, records, config.NullTokens)
	if err != nil {
		return nil, core.NewDataUnavailableError(config.FilePath, err)
	}

	logger.Info("[ReadRelation] Loaded %s (%d rows, %d columns) in %s",
		config.FilePath, rel.RowCount(), rel.ColumnCount(), time.Since(start).Round(time.Millisecond))
	return rel, nil
}
