package parser

import (
	"reflect"
	"testing"

	"github.com/ukaji3/exclassify-go/pkg/exclassify/models"
	"github.com/xuri/excelize/v2"
)

func TestEnsureColumn(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "A1", "desc")
	f.SetCellValue("Sheet1", "B1", "kind")
	f.SetCellValue("Sheet1", "A2", "foo")

	sheet, err := ReadSheet(f, "Sheet1")
	if err != nil {
		t.Fatalf("ReadSheet failed: %v", err)
	}

	idx, created, err := EnsureColumn(f, sheet, "kind")
	if err != nil || idx != 2 || created {
		t.Errorf("EnsureColumn(kind) = (%d, %v, %v), expected (2, false, nil)", idx, created, err)
	}

	idx, created, err = EnsureColumn(f, sheet, "label")
	if err != nil || idx != 3 || !created {
		t.Fatalf("EnsureColumn(label) = (%d, %v, %v), expected (3, true, nil)", idx, created, err)
	}

	if v, _ := f.GetCellValue("Sheet1", "C1"); v != "label" {
		t.Errorf("Expected header 'label' in C1, got %q", v)
	}
	if !reflect.DeepEqual(sheet.Columns, []string{"desc", "kind", "label"}) {
		t.Errorf("Unexpected columns %v", sheet.Columns)
	}
	if v, ok := sheet.Rows[0].C["label"]; !ok || v != nil {
		t.Errorf("Expected new column to start empty, got %v (present: %v)", v, ok)
	}
}

func TestEnsureColumnEmptySheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := &models.SheetData{Name: "Sheet1"}
	idx, created, err := EnsureColumn(f, sheet, "label")
	if err != nil || idx != 1 || !created {
		t.Fatalf("EnsureColumn = (%d, %v, %v), expected (1, true, nil)", idx, created, err)
	}
	if v, _ := f.GetCellValue("Sheet1", "A1"); v != "label" {
		t.Errorf("Expected header in A1, got %q", v)
	}
}

func TestKeepSheets(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	for _, name := range []string{"A", "B", "C"} {
		if _, err := f.NewSheet(name); err != nil {
			t.Fatalf("NewSheet failed: %v", err)
		}
	}

	if err := KeepSheets(f, []string{"C", "A", "missing"}); err != nil {
		t.Fatalf("KeepSheets failed: %v", err)
	}

	if got := f.GetSheetList(); !reflect.DeepEqual(got, []string{"A", "C"}) {
		t.Errorf("Expected sheets [A C], got %v", got)
	}
}
