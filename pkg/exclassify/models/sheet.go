package models

// SheetData represents a loaded sheet: its header and its data rows in source order.
type SheetData struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// Columns lists header names in column order.
	Columns []string `json:"columns"`
	// Rows contains data rows below the header, in source order.
	Rows []Row `json:"rows,omitempty"`
}

// ColumnIndex returns the 1-based index of column, or 0 if the sheet has no such column.
func (s *SheetData) ColumnIndex(column string) int {
	for i, c := range s.Columns {
		if c == column {
			return i + 1
		}
	}
	return 0
}

// HasColumn reports whether the header contains column.
func (s *SheetData) HasColumn(column string) bool {
	return s.ColumnIndex(column) > 0
}
