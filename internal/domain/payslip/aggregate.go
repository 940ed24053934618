package payslip

import (
	"strings"

	"github.com/google/uuid"

	"paybill/internal/domain/fieldmap"
	"paybill/internal/domain/paybill"
	"paybill/internal/domain/teacher"
)

// PlaceholderTeacherName is shown when a payslip is generated for a salary
// row whose teacher was never registered and the sheet has no name column.
const PlaceholderTeacherName = "Teacher (Details from Paybill)"

// headerFieldOrder is the fixed layout of the payslip's employee-info block.
// NAME OF SCHOOL is resolved but displayed in the slip title area, not as a
// header item.
var headerFieldOrder = []string{
	"NAME OF SCHOOL", "SCHOOL SHALARTH DDO CODE", "EMPLOYEE NAME", "SHALARTH ID",
	"GPF NO", "PAN NO", "PRAN NO", "ADHAR NO", "EMAIL ID", "MOB NO",
	"BANK ACCOUNT NUMBER", "PAY MATRIX", "BANK IFSC CODE", "BRANCH NAME",
}

type Line struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

type HeaderItem struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// View is a display-ready payslip for one teacher and one month.
type View struct {
	Month                  string       `json:"month"`
	Year                   string       `json:"year"`
	TeacherName            string       `json:"teacherName"`
	ShalarthID             string       `json:"shalarthId"`
	SchoolName             string       `json:"schoolName"`
	HeaderInfo             []HeaderItem `json:"headerInfo"`
	Emoluments             []Line       `json:"emoluments"`
	GovtRecoveries         []Line       `json:"govtRecoveries"`
	NonGovtRecoveries      []Line       `json:"nonGovtRecoveries"`
	TotalEmoluments        float64      `json:"totalEmoluments"`
	TotalGovtRecoveries    float64      `json:"totalGovtRecoveries"`
	TotalNonGovtRecoveries float64      `json:"totalNonGovtRecoveries"`
	GrandTotalDeductions   float64      `json:"grandTotalDeductions"`
	NetPay                 float64      `json:"netPay"`
	NetPayWords            string       `json:"netPayWords"`
}

// Generate builds a payslip view from one salary record. A nil teacher is
// tolerated: a placeholder identity is synthesized from the record itself.
// Generation is deterministic for identical inputs and never fails; missing
// fields simply render as N/A or are dropped by zero-suppression.
func Generate(t *teacher.Teacher, rec paybill.SalaryRecord, mappings []fieldmap.FieldMapping) *View {
	if t == nil {
		t = placeholderTeacher(rec, mappings)
	}

	view := &View{
		Month:       rec.Month,
		Year:        rec.Year,
		TeacherName: t.Name,
		ShalarthID:  t.ShalarthID,
	}

	for _, label := range headerFieldOrder {
		value := ""
		if m, ok := findMappingInCategory(mappings, label, fieldmap.CategoryHeaderInfo); ok {
			value = resolveMapped(m, t, rec)
		}
		if value == "" {
			switch label {
			case "EMPLOYEE NAME":
				value = t.Name
			case "SHALARTH ID":
				value = t.ShalarthID
			}
		}
		if label == "NAME OF SCHOOL" {
			view.SchoolName = orNA(value)
			continue
		}
		view.HeaderInfo = append(view.HeaderInfo, HeaderItem{Label: label, Value: orNA(value)})
	}

	for _, m := range mappings {
		switch m.Category {
		case fieldmap.CategoryEmolument, fieldmap.CategoryGovtRecovery, fieldmap.CategoryNonGovtRecovery:
		default:
			continue
		}
		amount := ParseAmount(resolveMapped(m, t, rec))
		if amount == 0 {
			// Zero lines are dropped from display entirely.
			continue
		}
		line := Line{Label: m.PayslipLabel, Amount: amount}
		switch m.Category {
		case fieldmap.CategoryEmolument:
			view.Emoluments = append(view.Emoluments, line)
			view.TotalEmoluments += amount
		case fieldmap.CategoryGovtRecovery:
			view.GovtRecoveries = append(view.GovtRecoveries, line)
			view.TotalGovtRecoveries += amount
		case fieldmap.CategoryNonGovtRecovery:
			view.NonGovtRecoveries = append(view.NonGovtRecoveries, line)
			view.TotalNonGovtRecoveries += amount
		}
	}
	view.GrandTotalDeductions = view.TotalGovtRecoveries + view.TotalNonGovtRecoveries

	// Net pay comes from the paybill's own net-salary column, never from the
	// bucket totals.
	if m, ok := findMapping(mappings, "EMPLOYEE NET SALARY"); ok {
		view.NetPay = ParseAmount(resolveMapped(m, t, rec))
	}
	view.NetPayWords = NumberToWords(view.NetPay)

	return view
}

// resolveMapped resolves a mapped field: spreadsheet value first, then the
// teacher attribute named by the mapping's ValueKey.
func resolveMapped(m fieldmap.FieldMapping, t *teacher.Teacher, rec paybill.SalaryRecord) string {
	if v, ok := fieldmap.Resolve(rec.RawHeaders, rec.RawDataRow, m.ExcelHeaderCandidates); ok {
		return v
	}
	if m.ValueKey != "" {
		if v := t.AttributeValue(m.ValueKey); strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func placeholderTeacher(rec paybill.SalaryRecord, mappings []fieldmap.FieldMapping) *teacher.Teacher {
	name := PlaceholderTeacherName
	if m, ok := findMapping(mappings, "EMPLOYEE NAME"); ok {
		if v, ok := fieldmap.Resolve(rec.RawHeaders, rec.RawDataRow, m.ExcelHeaderCandidates); ok {
			name = v
		}
	}
	return &teacher.Teacher{
		ID:         rec.TeacherShalarthID + "_temp_" + uuid.NewString(),
		ShalarthID: rec.TeacherShalarthID,
		Name:       name,
	}
}

func findMappingInCategory(mappings []fieldmap.FieldMapping, label string, category fieldmap.FieldCategory) (fieldmap.FieldMapping, bool) {
	want := strings.ToUpper(strings.TrimSpace(label))
	for _, m := range mappings {
		if m.Category == category && strings.ToUpper(strings.TrimSpace(m.PayslipLabel)) == want {
			return m, true
		}
	}
	return fieldmap.FieldMapping{}, false
}

func findMapping(mappings []fieldmap.FieldMapping, label string) (fieldmap.FieldMapping, bool) {
	want := strings.ToUpper(strings.TrimSpace(label))
	for _, m := range mappings {
		if strings.ToUpper(strings.TrimSpace(m.PayslipLabel)) == want {
			return m, true
		}
	}
	return fieldmap.FieldMapping{}, false
}

func orNA(v string) string {
	if strings.TrimSpace(v) == "" {
		return "N/A"
	}
	return v
}
