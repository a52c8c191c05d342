package synth

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// WriteRecords writes records as CSV or XLSX depending on the path extension
func WriteRecords(path string, records [][]string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return WriteCSV(path, records)
	case ".xlsx":
		return WriteXLSX(path, records)
	default:
		return fmt.Errorf("unsupported output extension %q (want .csv or .xlsx)", filepath.Ext(path))
	}
}

// WriteXLSX writes records to the first sheet of a new workbook
func WriteXLSX(path string, records [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for r, row := range records {
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			return err
		}
		values := make([]interface{}, len(row))
		for c, v := range row {
			values[c] = v
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", r+1, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}
