// Package models defines data structures for spreadsheet classification.
package models

// Row represents a single data row of a sheet keyed by header name.
type Row struct {
	// R is the source row index (1-based, header row excluded from data).
	R int `json:"r"`
	// C maps column name to cell value: string, int64, float64, bool, time.Time,
	// or nil when the cell is empty.
	// Every column of the owning sheet has a key.
	C map[string]interface{} `json:"c"`
}

// Value returns the value stored for column and whether the column exists.
func (r Row) Value(column string) (interface{}, bool) {
	v, ok := r.C[column]
	return v, ok
}
