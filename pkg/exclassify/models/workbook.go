package models

// SheetReport summarizes classification of one sheet.
type SheetReport struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// Rows is the number of data rows classified.
	Rows int `json:"rows"`
	// Kept counts rows whose existing label was left unchanged.
	Kept int `json:"kept"`
	// Defaulted counts rows that matched no keyword.
	Defaulted int `json:"defaulted"`
	// Labels maps label to the number of rows carrying it after the run.
	Labels map[string]int `json:"labels"`
	// MissingColumns lists policy columns absent from the sheet header.
	MissingColumns []string `json:"missing_columns,omitempty"`
	// CreatedColumn is true when the classification column was added by this run.
	CreatedColumn bool `json:"created_column"`
	// LabelColumn is the column letter holding the classification.
	LabelColumn string `json:"label_column"`
}

// Report represents the outcome of a classification run.
type Report struct {
	// RunID uniquely identifies the run.
	RunID string `json:"run_id"`
	// BookName is the input workbook file name (no path).
	BookName string `json:"book_name"`
	// OutputPath is where the workbook was written; empty if nothing was written.
	OutputPath string `json:"output_path,omitempty"`
	// Sheets contains per-sheet summaries in processing order.
	Sheets []SheetReport `json:"sheets"`
	// MissingSheets lists requested sheets absent from the input workbook.
	MissingSheets []string `json:"missing_sheets,omitempty"`
	// Choices is the label list attached to the classification column.
	Choices []string `json:"choices"`
}
