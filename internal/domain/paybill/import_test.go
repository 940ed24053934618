package paybill

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func sheetBytes(t *testing.T, rows [][]string) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return &buf
}

func TestReadSheet(t *testing.T) {
	buf := sheetBytes(t, [][]string{
		{"SHALARTH ID", "EMPLOYEE NAME", "GPF"},
		{"S1", "Asha", "500"},
		{"", "", ""},
		{"S2", "Ravi", "0"},
	})

	headers, rows, err := ReadSheet(buf)
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(headers) != 3 {
		t.Fatalf("expected 3 headers, got %d", len(headers))
	}
	if len(rows) != 2 {
		t.Fatalf("expected blank row dropped, got %d rows", len(rows))
	}
	if rows[1][1] != "Ravi" {
		t.Fatalf("unexpected cell %q", rows[1][1])
	}
}

func TestReadSheetPadsShortRows(t *testing.T) {
	buf := sheetBytes(t, [][]string{
		{"SHALARTH ID", "EMPLOYEE NAME", "GPF"},
		{"S1", "Asha"},
	})

	headers, rows, err := ReadSheet(buf)
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(rows[0]) != len(headers) {
		t.Fatalf("row not padded to header width: %d != %d", len(rows[0]), len(headers))
	}
	if rows[0][2] != "" {
		t.Fatalf("padding cell must be empty, got %q", rows[0][2])
	}
}

func TestReadSheetRejectsGarbage(t *testing.T) {
	_, _, err := ReadSheet(strings.NewReader("not a workbook"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestReadSheetRejectsHeaderOnly(t *testing.T) {
	buf := sheetBytes(t, [][]string{{"SHALARTH ID", "GPF"}})
	if _, _, err := ReadSheet(buf); !errors.Is(err, ErrEmptySheet) {
		t.Fatalf("expected ErrEmptySheet, got %v", err)
	}
}

func TestBuildRecords(t *testing.T) {
	headers := []string{"Shalarth_Id", "GPF"}
	rows := [][]string{{" S1 ", "100"}, {"", "200"}}

	records, err := BuildRecords("June", "2025", headers, rows)
	if err != nil {
		t.Fatalf("build records: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].TeacherShalarthID != "S1" {
		t.Fatalf("expected trimmed shalarth ID, got %q", records[0].TeacherShalarthID)
	}
	if records[1].TeacherShalarthID != "" {
		t.Fatal("row without shalarth ID must be kept with empty ID")
	}
	if records[0].Month != "June" || records[0].Year != "2025" {
		t.Fatalf("unexpected period %s %s", records[0].Month, records[0].Year)
	}
}

func TestBuildRecordsNoShalarthColumn(t *testing.T) {
	_, err := BuildRecords("June", "2025", []string{"GPF"}, [][]string{{"100"}})
	if !errors.Is(err, ErrNoShalarthColumn) {
		t.Fatalf("expected ErrNoShalarthColumn, got %v", err)
	}
}
