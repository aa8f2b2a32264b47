package exclassify

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/ukaji3/exclassify-go/pkg/exclassify/classifier"
	"github.com/ukaji3/exclassify-go/pkg/exclassify/models"
	"github.com/ukaji3/exclassify-go/pkg/exclassify/parser"
)

// processedSheet remembers where a sheet's labels went for the validation pass.
type processedSheet struct {
	name    string
	col     int
	lastRow int
}

// Classify labels the rows of the requested sheets of the workbook at
// inputPath and saves the result to outputPath.
//
// Requested sheets missing from the workbook and policy columns missing from
// a sheet are logged and skipped. Rows are labeled in place: only the
// classification column is written, every other cell is left as it was.
// If no sheet could be processed, nothing is written.
func Classify(inputPath, outputPath string, opts Options) (*models.Report, error) {
	logger := opts.logger()

	if len(opts.Policy) == 0 {
		return nil, ErrEmptyPolicy
	}

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, inputPath)
	}

	f, err := excelize.OpenFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	cls := classifier.New(opts.Policy, opts.DefaultLabel, opts.NullText)
	for _, kw := range classifier.NullKeywords(opts.Policy, cls.NullText) {
		logger.Warn("Keyword matches empty cells",
			zap.String("keyword", kw.Keyword),
			zap.String("label", kw.Label),
			zap.String("null_text", cls.NullText))
	}

	report := &models.Report{
		RunID:    uuid.NewString(),
		BookName: filepath.Base(inputPath),
		Choices:  classifier.Labels(opts.Policy, cls.DefaultLabel),
	}
	logger = logger.With(zap.String("run_id", report.RunID))

	available := make(map[string]bool)
	for _, name := range f.GetSheetList() {
		available[name] = true
	}

	var processed []processedSheet
	done := make(map[string]bool)
	for _, name := range opts.Sheets {
		if !available[name] {
			logger.Warn("Sheet not found, skipping", zap.String("sheet", name))
			report.MissingSheets = append(report.MissingSheets, name)
			continue
		}
		if name == parser.ChoicesSheet {
			logger.Warn("Sheet holds drop-down choices, skipping", zap.String("sheet", name))
			continue
		}
		if done[name] {
			logger.Debug("Sheet already processed", zap.String("sheet", name))
			continue
		}

		sr, ps, err := classifySheet(f, name, cls, opts.columnName(), logger)
		if err != nil {
			return nil, err
		}
		done[name] = true
		processed = append(processed, ps)
		report.Sheets = append(report.Sheets, *sr)
	}

	if len(processed) == 0 {
		logger.Warn("No sheets processed, output not written", zap.String("output", outputPath))
		return report, nil
	}

	if !opts.KeepUnlisted {
		keep := []string{parser.ChoicesSheet}
		for _, ps := range processed {
			keep = append(keep, ps.name)
		}
		if err := parser.KeepSheets(f, keep); err != nil {
			return nil, NewClassifyError("", "sheets", err)
		}
	}
	if err := activateSheet(f, processed[0].name); err != nil {
		return nil, NewClassifyError(processed[0].name, "sheets", err)
	}

	if opts.ShouldValidate() {
		listRef, err := parser.WriteChoices(f, report.Choices)
		if err != nil {
			return nil, NewClassifyError(parser.ChoicesSheet, "validation", err)
		}
		for _, ps := range processed {
			sqref, err := parser.ApplyDropList(f, ps.name, ps.col, ps.lastRow, listRef)
			if err != nil {
				return nil, NewClassifyError(ps.name, "validation", err)
			}
			if sqref != "" {
				logger.Debug("Drop-down list attached",
					zap.String("sheet", ps.name),
					zap.String("range", sqref),
					zap.String("choices", listRef))
			}
		}
	}

	if err := f.SaveAs(outputPath); err != nil {
		return nil, fmt.Errorf("failed to save %s: %w", outputPath, err)
	}
	report.OutputPath = outputPath

	logger.Info("Workbook written",
		zap.String("output", outputPath),
		zap.Int("sheets", len(processed)),
		zap.Int("missing_sheets", len(report.MissingSheets)))

	return report, nil
}

// classifySheet labels every data row of one sheet, in row order.
func classifySheet(f *excelize.File, name string, cls *classifier.Classifier, column string, logger *zap.Logger) (*models.SheetReport, processedSheet, error) {
	sheet, err := parser.ReadSheet(f, name)
	if err != nil {
		return nil, processedSheet{}, NewClassifyError(name, "read", err)
	}
	logger.Info("Processing sheet",
		zap.String("sheet", name),
		zap.Strings("columns", sheet.Columns),
		zap.Int("rows", len(sheet.Rows)))

	sr := &models.SheetReport{
		Name:   name,
		Rows:   len(sheet.Rows),
		Labels: make(map[string]int),
	}

	reported := make(map[string]bool)
	for _, col := range cls.Policy.Columns() {
		if sheet.HasColumn(col) || reported[col] {
			continue
		}
		reported[col] = true
		logger.Warn("Column not found, skipping",
			zap.String("sheet", name),
			zap.String("column", col))
		sr.MissingColumns = append(sr.MissingColumns, col)
	}

	colIdx, created, err := parser.EnsureColumn(f, sheet, column)
	if err != nil {
		return nil, processedSheet{}, NewClassifyError(name, "write", err)
	}
	sr.CreatedColumn = created
	sr.LabelColumn, _ = excelize.ColumnNumberToName(colIdx)

	lastRow := 1
	for _, row := range sheet.Rows {
		existing := classifier.Text(row.C[column], "")
		m := cls.Match(row, existing)

		if !m.Kept {
			if err := parser.WriteCell(f, name, colIdx, row.R, m.Label); err != nil {
				return nil, processedSheet{}, NewClassifyError(name, "write", err)
			}
			row.C[column] = m.Label
		}

		switch {
		case m.Kept:
			sr.Kept++
		case m.Defaulted:
			sr.Defaulted++
		default:
			logger.Debug("Row matched",
				zap.String("sheet", name),
				zap.Int("row", row.R),
				zap.String("column", m.Column),
				zap.String("keyword", m.Keyword),
				zap.String("label", m.Label))
		}
		sr.Labels[m.Label]++
		lastRow = row.R
	}

	return sr, processedSheet{name: name, col: colIdx, lastRow: lastRow}, nil
}

// activateSheet moves the active tab to name when it sits on the hidden
// choices sheet.
func activateSheet(f *excelize.File, name string) error {
	if f.GetSheetName(f.GetActiveSheetIndex()) != parser.ChoicesSheet {
		return nil
	}
	idx, err := f.GetSheetIndex(name)
	if err != nil {
		return err
	}
	f.SetActiveSheet(idx)
	return nil
}
