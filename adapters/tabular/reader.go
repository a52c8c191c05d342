package tabular

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"frauddash/internal"

	"github.com/xuri/excelize/v2"
)

// DataReader handles reading CSV and Excel files into raw records
type DataReader struct {
	config   ReaderConfig
	fileType string // "csv" or "xlsx"
	logger   *internal.Logger
}

// NewDataReader creates a reader for the configured file; the file type
// follows the extension
func NewDataReader(config ReaderConfig, logger *internal.Logger) *DataReader {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	fileType := "csv"
	if strings.EqualFold(filepath.Ext(config.FilePath), ".xlsx") {
		fileType = "xlsx"
	}
	return &DataReader{config: config, fileType: fileType, logger: logger}
}

// ReadRecords reads the header row and all data rows. Every returned row has
// exactly as many cells as the header.
func (r *DataReader) ReadRecords() ([][]string, error) {
	r.logger.Debug("[DataReader] Starting to read %s file: %s", r.fileType, r.config.FilePath)

	if _, err := os.Stat(r.config.FilePath); err != nil {
		return nil, fmt.Errorf("%s file not accessible: %w", strings.ToUpper(r.fileType), err)
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	case "xlsx":
		rows, err = r.readExcelRows()
	default:
		return nil, fmt.Errorf("unsupported file type: %s", r.fileType)
	}
	if err != nil {
		return nil, err
	}

	return normalizeRows(rows)
}

// readCSVRows reads CSV data; the csv package rejects rows whose field count
// differs from the header
func (r *DataReader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	readStart := time.Now()
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	r.logger.Debug("[DataReader] CSV file read in %.2fms (%d rows)", float64(time.Since(readStart).Nanoseconds())/1e6, len(rows))

	return rows, nil
}

// readExcelRows reads the configured sheet, or the first one
func (r *DataReader) readExcelRows() ([][]string, error) {
	startTime := time.Now()
	f, err := excelize.OpenFile(r.config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheet := r.config.SheetName
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("Excel file has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	r.logger.Debug("[DataReader] Sheet %s read in %.2fms (%d rows)", sheet, float64(time.Since(startTime).Nanoseconds())/1e6, len(rows))

	// excelize drops trailing empty cells, so short rows are padded
	if len(rows) > 0 {
		width := len(rows[0])
		for i := 1; i < len(rows); i++ {
			if len(rows[i]) > width {
				return nil, fmt.Errorf("row %d has %d cells, header has %d", i+1, len(rows[i]), width)
			}
			for len(rows[i]) < width {
				rows[i] = append(rows[i], "")
			}
		}
	}

	return rows, nil
}

// normalizeRows trims cells and validates the header
func normalizeRows(rows [][]string) ([][]string, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("file must have at least a header row and one data row")
	}

	header := rows[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	seen := make(map[string]bool, len(header))
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
		if header[i] == "" {
			return nil, fmt.Errorf("header column %d is empty", i+1)
		}
		if seen[header[i]] {
			return nil, fmt.Errorf("duplicate header %q", header[i])
		}
		seen[header[i]] = true
	}

	for _, row := range rows[1:] {
		if len(row) != len(header) {
			return nil, fmt.Errorf("row has %d cells, header has %d", len(row), len(header))
		}
		for j := range row {
			row[j] = strings.TrimSpace(row[j])
		}
	}

	return rows, nil
}
