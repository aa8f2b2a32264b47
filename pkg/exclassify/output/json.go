// Package output serializes run reports.
package output

import (
	"encoding/json"

	"github.com/ukaji3/exclassify-go/pkg/exclassify/models"
)

// ToJSON serializes a run report.
func ToJSON(report *models.Report, pretty bool) ([]byte, error) {
	return marshal(report, pretty)
}

// SheetToJSON serializes a single sheet's summary.
func SheetToJSON(sheet *models.SheetReport, pretty bool) ([]byte, error) {
	return marshal(sheet, pretty)
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
