package statement

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"paybill/internal/domain/paybill"
	"paybill/internal/domain/teacher"
)

var testTeacher = teacher.Teacher{ShalarthID: "S1", Name: "Asha Patil"}

func juneRecord() paybill.SalaryRecord {
	return paybill.SalaryRecord{
		TeacherShalarthID: "S1",
		Month:             "June",
		Year:              "2024",
		RawHeaders: []string{"SHALARTH ID", "NAME OF SCHOOL", "BLOCK / TALUKA", "BASIC PAY", "F A",
			"TOTAL GOVT DEDUCTIONS", "NPS TOTAL", "NGR(TOTAL DEDUCTIONS)", "EMPLOYEE NET SALARY"},
		RawDataRow: []string{"S1", "ZP School A", "Karjat", "30000", "100", "4000", "0", "1500", "24400"},
	}
}

func TestGenerateTwelveFiscalMonths(t *testing.T) {
	st, err := Generate(testTeacher, "2024-25", []paybill.SalaryRecord{juneRecord()}, "9999999999")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(st.Rows) != 12 {
		t.Fatalf("expected 12 rows, got %d", len(st.Rows))
	}
	if st.Rows[0].Month != "March" || st.Rows[0].Year != "2024" {
		t.Fatalf("first row = %s %s", st.Rows[0].Month, st.Rows[0].Year)
	}
	if st.Rows[10].Month != "January" || st.Rows[10].Year != "2025" {
		t.Fatalf("january row = %s %s, want January 2025", st.Rows[10].Month, st.Rows[10].Year)
	}

	withData := 0
	for _, row := range st.Rows {
		if row.HasData {
			withData++
			if row.Month != "June" {
				t.Fatalf("unexpected data month %s", row.Month)
			}
		} else if row.Values["BASIC PAY"] != 0 {
			t.Fatalf("empty month must carry zeros, got %v", row.Values["BASIC PAY"])
		}
	}
	if withData != 1 {
		t.Fatalf("expected exactly 1 month with data, got %d", withData)
	}
}

func TestGenerateComputedTotalDeduction(t *testing.T) {
	st, err := Generate(testTeacher, "2024-25", []paybill.SalaryRecord{juneRecord()}, "9999999999")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	var june MonthRow
	for _, row := range st.Rows {
		if row.Month == "June" {
			june = row
		}
	}
	// 100 F A + 4000 govt + 0 NPS + 1500 non-govt.
	if june.Values[ColumnTotalDeduction] != 5600 {
		t.Fatalf("total deduction = %v, want 5600", june.Values[ColumnTotalDeduction])
	}
	if st.Totals[ColumnTotalDeduction] != 5600 {
		t.Fatalf("yearly total deduction = %v", st.Totals[ColumnTotalDeduction])
	}
}

func TestGenerateSuppressesZeroColumnsAndKeepsInfo(t *testing.T) {
	st, err := Generate(testTeacher, "2024-25", []paybill.SalaryRecord{juneRecord()}, "9999999999")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	for _, col := range st.Columns {
		if col.Label == "HRA" {
			t.Fatal("zero-total column HRA must be suppressed")
		}
		if col.Label == "TOTAL GOVT DEDUCTIONS" {
			t.Fatal("hidden composite column must never be visible")
		}
	}
	if !hasColumn(st, "BASIC PAY") || !hasColumn(st, ColumnTotalDeduction) || !hasColumn(st, "EMPLOYEE NET SALARY") {
		t.Fatalf("expected pay, total deduction and net salary columns, got %+v", st.Columns)
	}
	if st.SchoolName != "ZP School A" || st.Block != "Karjat" {
		t.Fatalf("school info = %q / %q", st.SchoolName, st.Block)
	}
}

func TestGenerateOmitsHiddenAndSuppressedValues(t *testing.T) {
	st, err := Generate(testTeacher, "2024-25", []paybill.SalaryRecord{juneRecord()}, "9999999999")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	// The composite inputs and zero-total columns feed the computation but
	// must not reach consumers of the statement.
	for _, label := range []string{"TOTAL GOVT DEDUCTIONS", "NPS TOTAL", "NGR(TOTAL DEDUCTIONS)", "HRA"} {
		if _, ok := st.Totals[label]; ok {
			t.Fatalf("%s must not appear in totals", label)
		}
		for _, row := range st.Rows {
			if _, ok := row.Values[label]; ok {
				t.Fatalf("%s %s leaks column %s", row.Month, row.Year, label)
			}
		}
	}
	if st.Totals["BASIC PAY"] != 30000 {
		t.Fatalf("basic pay total = %v, want 30000", st.Totals["BASIC PAY"])
	}
	if st.Totals[ColumnTotalDeduction] != 5600 {
		t.Fatalf("total deduction = %v, want 5600", st.Totals[ColumnTotalDeduction])
	}
}

func TestColumnsPlaceNAAAfterGroupAccidentalPolicy(t *testing.T) {
	for i, col := range Columns {
		if col.Label != "NAA" {
			continue
		}
		if i == 0 || Columns[i-1].Label != "GROUP ACCIDENTAL POLICY" {
			t.Fatalf("NAA follows %q, want GROUP ACCIDENTAL POLICY", Columns[i-1].Label)
		}
		return
	}
	t.Fatal("NAA column missing")
}

func TestGenerateNoRecords(t *testing.T) {
	_, err := Generate(testTeacher, "2024-25", nil, "9999999999")
	if !errors.Is(err, ErrNoRecordsForYear) {
		t.Fatalf("expected ErrNoRecordsForYear, got %v", err)
	}
	if !strings.Contains(err.Error(), "Asha Patil") || !strings.Contains(err.Error(), "9999999999") {
		t.Fatalf("error must name the teacher and admin contact: %v", err)
	}
}

func TestGenerateRecordOutsideYearIgnored(t *testing.T) {
	rec := juneRecord()
	rec.Year = "2023"
	_, err := Generate(testTeacher, "2024-25", []paybill.SalaryRecord{rec}, "9999999999")
	if !errors.Is(err, ErrNoRecordsForYear) {
		t.Fatalf("record from another year must not count, got %v", err)
	}
}

func TestParseFinancialYear(t *testing.T) {
	if _, err := Generate(testTeacher, "2024", []paybill.SalaryRecord{juneRecord()}, ""); !errors.Is(err, ErrBadFinancialYear) {
		t.Fatalf("expected ErrBadFinancialYear, got %v", err)
	}
	if _, err := Generate(testTeacher, "2024-26", []paybill.SalaryRecord{juneRecord()}, ""); !errors.Is(err, ErrBadFinancialYear) {
		t.Fatalf("mismatched end year must fail, got %v", err)
	}
}

func TestExportXLSX(t *testing.T) {
	st, err := Generate(testTeacher, "2024-25", []paybill.SalaryRecord{juneRecord()}, "9999999999")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	data, err := ExportXLSX(st)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Statement_2024-25")
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	// 6 header lines, column labels, 12 months, totals.
	if len(rows) != 20 {
		t.Fatalf("expected 20 rows, got %d", len(rows))
	}
	if rows[len(rows)-1][0] != "Total" {
		t.Fatalf("last row = %v", rows[len(rows)-1])
	}
}

func hasColumn(st *Statement, label string) bool {
	for _, col := range st.Columns {
		if col.Label == label {
			return true
		}
	}
	return false
}
