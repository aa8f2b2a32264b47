package parser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ChoicesSheet is the hidden sheet holding the drop-down choices, one per
// row in column A. Validations reference it by range, so choices may
// contain commas and the list is not bound by the 255-character limit of
// inline lists.
const ChoicesSheet = "_choices"

// WriteChoices stores choices on ChoicesSheet, creating and hiding the sheet
// when needed, and returns the range reference validations should use.
// Rows left over from a longer earlier list are cleared.
func WriteChoices(f *excelize.File, choices []string) (string, error) {
	if len(choices) == 0 {
		return "", fmt.Errorf("no choices to write")
	}

	idx, err := f.GetSheetIndex(ChoicesSheet)
	if err != nil {
		return "", err
	}
	if idx < 0 {
		if _, err := f.NewSheet(ChoicesSheet); err != nil {
			return "", err
		}
	}

	old, err := f.GetRows(ChoicesSheet)
	if err != nil {
		return "", err
	}

	for i, choice := range choices {
		if err := WriteCell(f, ChoicesSheet, 1, i+1, choice); err != nil {
			return "", err
		}
	}
	for r := len(choices) + 1; r <= len(old); r++ {
		cellName, err := excelize.CoordinatesToCellName(1, r)
		if err != nil {
			return "", err
		}
		if err := f.SetCellValue(ChoicesSheet, cellName, nil); err != nil {
			return "", err
		}
	}

	if err := f.SetSheetVisible(ChoicesSheet, false); err != nil {
		return "", err
	}

	return fmt.Sprintf("'%s'!$A$1:$A$%d", ChoicesSheet, len(choices)), nil
}

// ApplyDropList restricts rows 2..lastRow of the 1-based column col to the
// values of the listRef range. Validations already placed on that column
// are removed first, so re-runs over a grown sheet do not stack them.
// It returns the covered range, or "" when the sheet has no data rows.
func ApplyDropList(f *excelize.File, sheetName string, col, lastRow int, listRef string) (string, error) {
	if lastRow < 2 {
		return "", nil
	}

	colName, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return "", err
	}
	sqref := fmt.Sprintf("%s2:%s%d", colName, colName, lastRow)

	existing, err := f.GetDataValidations(sheetName)
	if err != nil {
		return "", err
	}
	for _, dv := range existing {
		if !touchesColumn(dv.Sqref, colName) {
			continue
		}
		if err := f.DeleteDataValidation(sheetName, dv.Sqref); err != nil {
			return "", err
		}
	}

	dv := excelize.NewDataValidation(true)
	dv.Sqref = sqref
	dv.SetSqrefDropList(listRef)
	if err := f.AddDataValidation(sheetName, dv); err != nil {
		return "", err
	}

	return sqref, nil
}

// touchesColumn reports whether any range of a space-separated sqref lies
// entirely within the named column.
func touchesColumn(sqref, colName string) bool {
	for _, part := range strings.Fields(sqref) {
		inside := true
		for _, cell := range strings.Split(part, ":") {
			col, _, err := excelize.SplitCellName(strings.ReplaceAll(cell, "$", ""))
			if err != nil || !strings.EqualFold(col, colName) {
				inside = false
				break
			}
		}
		if inside {
			return true
		}
	}
	return false
}
