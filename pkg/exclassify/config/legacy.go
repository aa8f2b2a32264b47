package config

import "github.com/ukaji3/exclassify-go/pkg/exclassify/models"

// Defaults of the single-keyword command line.
const (
	LegacyLabel        = "整车"
	LegacyDefaultLabel = "非整车"
	LegacyColumnName   = "类型"
)

// Legacy builds a config for the single-keyword command line: every listed
// column maps keyword to label. sheets and columns are comma-separated.
func Legacy(inputPath, keyword, outputPath, sheets, columns, label string) *Config {
	cfg := DefaultConfig()
	cfg.InputPath = inputPath
	cfg.OutputPath = outputPath
	cfg.SheetNames = splitList(sheets)
	cfg.NewColumnName = LegacyColumnName
	cfg.DefaultLabel = LegacyDefaultLabel
	if label == "" {
		label = LegacyLabel
	}

	for _, col := range splitList(columns) {
		cfg.ColumnsToCheck = append(cfg.ColumnsToCheck, models.ColumnRule{
			Column:   col,
			Keywords: []models.KeywordLabel{{Keyword: keyword, Label: label}},
		})
	}
	return cfg
}
