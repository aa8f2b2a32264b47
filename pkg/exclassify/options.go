// Package exclassify labels spreadsheet rows by keyword and writes the
// labels back to the workbook.
package exclassify

import (
	"go.uber.org/zap"

	"github.com/ukaji3/exclassify-go/pkg/exclassify/classifier"
	"github.com/ukaji3/exclassify-go/pkg/exclassify/models"
)

// DefaultColumnName is the header of the classification column when none is set.
const DefaultColumnName = "category"

// Options configures a classification run.
type Options struct {
	// Sheets lists the sheets to process, in order.
	Sheets []string
	// Policy maps columns to ordered keyword -> label rules.
	Policy models.Policy
	// ColumnName is the header of the classification column.
	ColumnName string
	// DefaultLabel is assigned to rows matching no keyword.
	DefaultLabel string
	// NullText is the text empty cells are matched as.
	NullText string
	// KeepUnlisted keeps workbook sheets that were not processed in the output.
	KeepUnlisted bool
	// Validation specifies whether to attach a drop-down list to the classification column.
	// If nil, defaults to true.
	Validation *bool
	// Logger receives progress and warnings. If nil, nothing is logged.
	Logger *zap.Logger
}

// DefaultOptions returns default classification options.
func DefaultOptions() Options {
	return Options{
		ColumnName:   DefaultColumnName,
		DefaultLabel: classifier.DefaultLabel,
		NullText:     classifier.DefaultNullText,
	}
}

// ShouldValidate returns whether to attach the drop-down list.
func (o Options) ShouldValidate() bool {
	if o.Validation != nil {
		return *o.Validation
	}
	return true
}

func (o Options) columnName() string {
	if o.ColumnName != "" {
		return o.ColumnName
	}
	return DefaultColumnName
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}
