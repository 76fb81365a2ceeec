package excel

// ExcelConfig holds configuration for the employee data source
type ExcelConfig struct {
	FilePath string `json:"file_path"`
	Sheet    string `json:"sheet,omitempty"` // XLSX only; empty means the first sheet
}

// DefaultExcelConfig returns sensible defaults for a data source at path
func DefaultExcelConfig(path string) ExcelConfig {
	return ExcelConfig{
		FilePath: path,
	}
}
