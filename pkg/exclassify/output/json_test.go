package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/exclassify-go/pkg/exclassify/models"
)

func TestToJSON(t *testing.T) {
	report := &models.Report{
		RunID:         "run-1",
		BookName:      "in.xlsx",
		MissingSheets: []string{"Gone"},
		Choices:       []string{"A", "other"},
		Sheets: []models.SheetReport{
			{Name: "S1", Rows: 2, Defaulted: 1, Labels: map[string]int{"A": 1, "other": 1}, LabelColumn: "C"},
		},
	}

	compact, err := ToJSON(report, false)
	require.NoError(t, err)
	assert.NotContains(t, string(compact), "\n")
	assert.NotContains(t, string(compact), "output_path")

	pretty, err := ToJSON(report, true)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(pretty), "\n  \"run_id\": \"run-1\""))

	var back map[string]interface{}
	require.NoError(t, json.Unmarshal(pretty, &back))
	assert.Equal(t, []interface{}{"Gone"}, back["missing_sheets"])
}

func TestSheetToJSON(t *testing.T) {
	data, err := SheetToJSON(&models.SheetReport{Name: "S1", MissingColumns: []string{"x"}}, false)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"missing_columns":["x"]`)
}
