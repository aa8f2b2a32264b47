// Package parser reads sheets from and writes classification results to
// xlsx workbooks.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ukaji3/exclassify-go/pkg/exclassify/models"
	"github.com/xuri/excelize/v2"
)

// ReadSheet loads a sheet as a header row plus data rows.
// Row 1 is the header; every following row up to the last non-empty one
// becomes a models.Row, including blank rows in between.
// Values are read raw, without number formats applied.
func ReadSheet(f *excelize.File, sheetName string) (*models.SheetData, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	sheet := &models.SheetData{Name: sheetName}

	lastRow, lastCol := dataExtent(rows)
	if lastRow < 0 {
		return sheet, nil
	}

	width := lastCol + 1
	if len(rows[0]) > width {
		width = len(rows[0])
	}
	sheet.Columns = headerNames(rows[0], width)

	for rowIdx := 1; rowIdx <= lastRow; rowIdx++ {
		rowNum := rowIdx + 1 // 1-based row index
		cellMap := make(map[string]interface{}, width)

		var row []string
		if rowIdx < len(rows) {
			row = rows[rowIdx]
		}

		for colIdx, name := range sheet.Columns {
			if colIdx >= len(row) || row[colIdx] == "" {
				cellMap[name] = nil
				continue
			}
			cellMap[name] = cellValue(f, sheetName, colIdx+1, rowNum, row[colIdx])
		}

		sheet.Rows = append(sheet.Rows, models.Row{R: rowNum, C: cellMap})
	}

	return sheet, nil
}

// headerNames names width columns from the header row. Blank headers become
// "Unnamed: <idx>" and repeated names get ".1", ".2", ... suffixes.
func headerNames(header []string, width int) []string {
	names := make([]string, width)
	used := make(map[string]bool, width)

	for i := 0; i < width; i++ {
		base := ""
		if i < len(header) {
			base = header[i]
		}
		if base == "" {
			base = fmt.Sprintf("Unnamed: %d", i)
		}

		name := base
		for n := 1; used[name]; n++ {
			name = fmt.Sprintf("%s.%d", base, n)
		}
		used[name] = true
		names[i] = name
	}

	return names
}

// cellValue types a raw cell value. Text cells stay strings, booleans become
// bool, numbers carrying a date format become time.Time and other numbers
// are parsed where possible.
func cellValue(f *excelize.File, sheetName string, col, row int, s string) interface{} {
	cellName, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return s
	}
	typ, err := f.GetCellType(sheetName, cellName)
	if err != nil {
		return s
	}
	switch typ {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeError, excelize.CellTypeDate:
		return s
	case excelize.CellTypeBool:
		return s == "1" || strings.EqualFold(s, "true")
	}

	v := parseValue(s)
	if _, isText := v.(string); isText || !hasDateFormat(f, sheetName, cellName) {
		return v
	}
	serial, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return v
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return v
	}
	return t
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}
