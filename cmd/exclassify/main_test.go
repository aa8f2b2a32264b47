package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/exclassify-go/pkg/exclassify/config"
)

func writeInput(t *testing.T, dir string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", "车辆"))
	require.NoError(t, f.SetSheetRow("车辆", "A1", &[]interface{}{"品名", "备注"}))
	require.NoError(t, f.SetSheetRow("车辆", "A2", &[]interface{}{"整车出口", ""}))
	require.NoError(t, f.SetSheetRow("车辆", "A3", &[]interface{}{"配件", "含整车"}))
	require.NoError(t, f.SetSheetRow("车辆", "A4", &[]interface{}{"轮胎", "无"}))

	path := filepath.Join(dir, "input.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func execute(args ...string) error {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}

func labels(t *testing.T, path, sheet, col string) []string {
	t.Helper()

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	cols, err := f.GetCols(sheet)
	require.NoError(t, err)
	idx, err := excelize.ColumnNameToNumber(col)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(cols), idx)
	return cols[idx-1]
}

func TestRunWithConfig(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir)
	output := filepath.Join(dir, "output.xlsx")
	report := filepath.Join(dir, "report.json")

	cfgPath := filepath.Join(dir, "config.yaml")
	cfg := fmt.Sprintf(`input_path: %q
sheet_names: [车辆, 不存在]
columns_to_check_map:
  备注:
    整车: vehicle
  品名:
    整车: vehicle
    配件: parts
output_path: %q
new_column_name: 类型
`, input, output)
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0644))

	require.NoError(t, execute("--config", cfgPath, "--report", report, "--pretty"))

	assert.Equal(t, []string{"类型", "vehicle", "vehicle", "other"}, labels(t, output, "车辆", "C"))

	data, err := os.ReadFile(report)
	require.NoError(t, err)
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, []interface{}{"不存在"}, got["missing_sheets"])
	assert.Equal(t, []interface{}{"vehicle", "parts", "other"}, got["choices"])
}

func TestRunLegacyArgs(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir)
	output := filepath.Join(dir, "output.xlsx")

	require.NoError(t, execute(input, "整车", output, "-s", "车辆", "-c", "品名,备注"))

	assert.Equal(t,
		[]string{config.LegacyColumnName, config.LegacyLabel, config.LegacyLabel, config.LegacyDefaultLabel},
		labels(t, output, "车辆", "C"))
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()

	err := execute("--config", filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, config.ErrConfigNotFound)

	err = execute("a.xlsx", "kw", "b.xlsx")
	assert.Error(t, err)

	err = execute("a.xlsx", "kw")
	assert.Error(t, err)
}
