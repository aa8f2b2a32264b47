package parser

import (
	"github.com/ukaji3/exclassify-go/pkg/exclassify/models"
	"github.com/xuri/excelize/v2"
)

// EnsureColumn returns the 1-based index of the named column, appending it
// after the last header column when the sheet lacks it. Rows of a newly
// created column start out empty.
func EnsureColumn(f *excelize.File, sheet *models.SheetData, name string) (int, bool, error) {
	if idx := sheet.ColumnIndex(name); idx > 0 {
		return idx, false, nil
	}

	idx := len(sheet.Columns) + 1
	if err := WriteCell(f, sheet.Name, idx, 1, name); err != nil {
		return 0, false, err
	}

	sheet.Columns = append(sheet.Columns, name)
	for _, row := range sheet.Rows {
		row.C[name] = nil
	}
	return idx, true, nil
}

// WriteCell stores a string value at the given 1-based column and row.
func WriteCell(f *excelize.File, sheetName string, col, row int, value string) error {
	cellName, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellStr(sheetName, cellName, value)
}

// KeepSheets deletes every sheet of the workbook not listed in keep.
// At least one kept sheet must exist in the workbook.
func KeepSheets(f *excelize.File, keep []string) error {
	wanted := make(map[string]bool, len(keep))
	for _, name := range keep {
		wanted[name] = true
	}

	for _, name := range f.GetSheetList() {
		if wanted[name] {
			continue
		}
		if err := f.DeleteSheet(name); err != nil {
			return err
		}
	}
	return nil
}
