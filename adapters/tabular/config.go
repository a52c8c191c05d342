package tabular

// ReaderConfig holds configuration for the tabular data source
type ReaderConfig struct {
	FilePath   string   `json:"file_path"`
	SheetName  string   `json:"sheet_name,omitempty"` // xlsx only; first sheet when empty
	NullTokens []string `json:"null_tokens"`
}

// DefaultReaderConfig returns sensible defaults for reading the source file
func DefaultReaderConfig(filePath string) ReaderConfig {
	return ReaderConfig{
		FilePath:   filePath,
		NullTokens: []string{"", "NA", "NaN", "N/A", "null", "NULL", "<nil>"},
	}
}
