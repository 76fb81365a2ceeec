package excel

// RawRowData represents a row of raw source data as string key-value pairs
type RawRowData map[string]string

// ExcelData represents the complete raw dataset before typing
type ExcelData struct {
	Headers []string     // Column headers
	Rows    []RawRowData // Data rows
}

// HasHeader reports whether the header row contains name
func (d *ExcelData) HasHeader(name string) bool {
	for _, h := range d.Headers {
		if h == name {
			return true
		}
	}
	return false
}
