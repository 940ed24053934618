package payslip

import (
	"testing"

	"paybill/internal/domain/fieldmap"
	"paybill/internal/domain/paybill"
	"paybill/internal/domain/teacher"
)

func testRecord(headers []string, row []string) paybill.SalaryRecord {
	return paybill.SalaryRecord{
		TeacherShalarthID: "S1",
		Month:             "June",
		Year:              "2025",
		RawHeaders:        headers,
		RawDataRow:        row,
	}
}

func TestGenerateBucketsAndTotals(t *testing.T) {
	rec := testRecord(
		[]string{"SHALARTH ID", "EMPLOYEE NAME", "BASIC PAY", "HRA", "GPF", "PT", "NGR(LIC)", "EMPLOYEE NET SALARY"},
		[]string{"S1", "Asha Patil", "30000", "6000", "5000", "200", "1500", "29300"},
	)
	tr := &teacher.Teacher{ShalarthID: "S1", Name: "Asha Patil"}

	v := Generate(tr, rec, fieldmap.DefaultMappings)

	if len(v.Emoluments) != 2 {
		t.Fatalf("expected 2 emolument lines, got %d", len(v.Emoluments))
	}
	if v.TotalEmoluments != 36000 {
		t.Fatalf("total emoluments = %v", v.TotalEmoluments)
	}
	if v.TotalGovtRecoveries != 5200 {
		t.Fatalf("total govt recoveries = %v", v.TotalGovtRecoveries)
	}
	if v.TotalNonGovtRecoveries != 1500 {
		t.Fatalf("total non-govt recoveries = %v", v.TotalNonGovtRecoveries)
	}
	if v.GrandTotalDeductions != 6700 {
		t.Fatalf("grand total deductions = %v", v.GrandTotalDeductions)
	}
}

func TestGenerateZeroLinesSuppressed(t *testing.T) {
	rec := testRecord(
		[]string{"SHALARTH ID", "BASIC PAY", "GPF"},
		[]string{"S1", "30000", "0"},
	)
	v := Generate(&teacher.Teacher{ShalarthID: "S1", Name: "A"}, rec, fieldmap.DefaultMappings)

	if len(v.GovtRecoveries) != 0 {
		t.Fatalf("zero GPF line must be dropped, got %v", v.GovtRecoveries)
	}
}

func TestGenerateNetPayFromSheetColumn(t *testing.T) {
	// Net pay is read from EMPLOYEE NET SALARY, not derived from buckets.
	rec := testRecord(
		[]string{"SHALARTH ID", "BASIC PAY", "GPF", "EMPLOYEE NET SALARY"},
		[]string{"S1", "50000", "5000", "45000"},
	)
	v := Generate(&teacher.Teacher{ShalarthID: "S1", Name: "A"}, rec, fieldmap.DefaultMappings)

	if v.NetPay != 45000 {
		t.Fatalf("net pay = %v, want 45000", v.NetPay)
	}
	if v.NetPayWords != "Forty Five Thousand" {
		t.Fatalf("net pay words = %q", v.NetPayWords)
	}
}

func TestGenerateNetPayMissingColumn(t *testing.T) {
	rec := testRecord([]string{"SHALARTH ID", "BASIC PAY"}, []string{"S1", "50000"})
	v := Generate(&teacher.Teacher{ShalarthID: "S1", Name: "A"}, rec, fieldmap.DefaultMappings)
	if v.NetPay != 0 {
		t.Fatalf("missing net salary column must coerce to 0, got %v", v.NetPay)
	}
}

func TestGenerateHeaderFallbackToTeacher(t *testing.T) {
	rec := testRecord(
		[]string{"SHALARTH ID", "BASIC PAY"},
		[]string{"S1", "30000"},
	)
	tr := &teacher.Teacher{ShalarthID: "S1", Name: "Asha Patil", PANNo: "ABCDE1234F"}
	v := Generate(tr, rec, fieldmap.DefaultMappings)

	if got := headerValue(v, "PAN NO"); got != "ABCDE1234F" {
		t.Fatalf("PAN NO = %q, want teacher fallback", got)
	}
	if got := headerValue(v, "EMPLOYEE NAME"); got != "Asha Patil" {
		t.Fatalf("EMPLOYEE NAME = %q", got)
	}
	if got := headerValue(v, "ADHAR NO"); got != "N/A" {
		t.Fatalf("unresolvable field must render N/A, got %q", got)
	}
}

func TestGenerateSpreadsheetWinsOverTeacher(t *testing.T) {
	rec := testRecord(
		[]string{"SHALARTH ID", "EMPLOYEE NAME"},
		[]string{"S1", "Name From Sheet"},
	)
	tr := &teacher.Teacher{ShalarthID: "S1", Name: "Name From Profile"}
	v := Generate(tr, rec, fieldmap.DefaultMappings)

	if got := headerValue(v, "EMPLOYEE NAME"); got != "Name From Sheet" {
		t.Fatalf("spreadsheet value must win, got %q", got)
	}
}

func TestGeneratePlaceholderTeacher(t *testing.T) {
	rec := testRecord([]string{"SHALARTH ID", "BASIC PAY"}, []string{"S1", "30000"})
	v := Generate(nil, rec, fieldmap.DefaultMappings)
	if v.TeacherName != PlaceholderTeacherName {
		t.Fatalf("expected placeholder name, got %q", v.TeacherName)
	}

	named := testRecord(
		[]string{"SHALARTH ID", "EMPLOYEE NAME"},
		[]string{"S1", "From Sheet"},
	)
	v = Generate(nil, named, fieldmap.DefaultMappings)
	if v.TeacherName != "From Sheet" {
		t.Fatalf("expected name extracted from sheet, got %q", v.TeacherName)
	}
}

func TestGenerateHeaderBlockFields(t *testing.T) {
	rec := testRecord([]string{"SHALARTH ID"}, []string{"S1"})
	v := Generate(&teacher.Teacher{ShalarthID: "S1", Name: "A", Designation: "Head Teacher"}, rec, fieldmap.DefaultMappings)

	if len(v.HeaderInfo) != 13 {
		t.Fatalf("expected 13 header items, got %d", len(v.HeaderInfo))
	}
	if got := headerValue(v, "DESIGNATION"); got != "" {
		t.Fatalf("designation is not part of the printed header block, got %q", got)
	}
}

func TestRenderPDF(t *testing.T) {
	rec := testRecord(
		[]string{"SHALARTH ID", "EMPLOYEE NAME", "BASIC PAY", "GPF", "EMPLOYEE NET SALARY"},
		[]string{"S1", "Asha", "30000", "5000", "25000"},
	)
	v := Generate(&teacher.Teacher{ShalarthID: "S1", Name: "Asha"}, rec, fieldmap.DefaultMappings)

	data, err := RenderPDF(v)
	if err != nil {
		t.Fatalf("render pdf: %v", err)
	}
	if len(data) == 0 || string(data[:4]) != "%PDF" {
		t.Fatal("expected a PDF document")
	}
}

func headerValue(v *View, label string) string {
	for _, item := range v.HeaderInfo {
		if item.Label == label {
			return item.Value
		}
	}
	return ""
}
