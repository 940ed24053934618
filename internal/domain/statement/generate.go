package statement

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"paybill/internal/domain/fieldmap"
	"paybill/internal/domain/paybill"
	"paybill/internal/domain/payslip"
	"paybill/internal/domain/teacher"
)

var (
	ErrBadFinancialYear = errors.New("financial year must look like 2024-25")
	ErrNoRecordsForYear = errors.New("no salary data found")
)

// MonthRow is one fiscal month of the statement. Values is keyed by column
// label and carries only the surviving display columns; months without an
// uploaded paybill carry all zeros.
type MonthRow struct {
	Month   string             `json:"month"`
	Year    string             `json:"year"`
	Values  map[string]float64 `json:"values"`
	HasData bool               `json:"hasData"`
}

// Statement is a teacher's month-by-month salary statement for one
// financial year, always twelve rows from March through February.
type Statement struct {
	TeacherName   string             `json:"teacherName"`
	ShalarthID    string             `json:"shalarthId"`
	FinancialYear string             `json:"financialYear"`
	SchoolName    string             `json:"schoolName"`
	Block         string             `json:"block"`
	Columns       []ColumnConfig     `json:"columns"`
	Rows          []MonthRow         `json:"rows"`
	Totals        map[string]float64 `json:"totals"`
}

// Generate builds the yearly statement from the teacher's salary records.
// financialYear is "YYYY-YY" ("2024-25" covers March 2024 through February
// 2025). Display columns whose yearly total is zero are dropped.
func Generate(t teacher.Teacher, financialYear string, records []paybill.SalaryRecord, adminContact string) (*Statement, error) {
	startYear, err := parseFinancialYear(financialYear)
	if err != nil {
		return nil, err
	}

	rows := make([]MonthRow, 0, len(FiscalMonths))
	totals := make(map[string]float64)
	schoolName, block := "", ""
	anyData := false

	for i, month := range FiscalMonths {
		year := startYear
		if i >= monthsInStartYear {
			year = startYear + 1
		}
		row := MonthRow{Month: month, Year: strconv.Itoa(year), Values: make(map[string]float64, len(Columns))}

		rec, found := findRecord(records, month, year)
		if found {
			row.HasData = true
			anyData = true
			for _, col := range Columns {
				if col.Header == "" {
					continue
				}
				raw, _ := fieldmap.ResolveLabel(rec.RawHeaders, rec.RawDataRow, col.Header)
				row.Values[col.Label] = payslip.ParseAmount(raw)
			}
			row.Values[ColumnTotalDeduction] = row.Values["F A"] +
				row.Values["TOTAL GOVT DEDUCTIONS"] +
				row.Values["NPS TOTAL"] +
				row.Values["NGR(TOTAL DEDUCTIONS)"]
			if schoolName == "" {
				if v, ok := fieldmap.ResolveLabel(rec.RawHeaders, rec.RawDataRow, "NAME OF SCHOOL"); ok {
					schoolName = strings.TrimSpace(v)
				}
			}
			if block == "" {
				if v, ok := fieldmap.ResolveLabel(rec.RawHeaders, rec.RawDataRow, "BLOCK / TALUKA"); ok {
					block = strings.TrimSpace(v)
				}
			}
		} else {
			for _, col := range Columns {
				row.Values[col.Label] = 0
			}
		}
		for _, col := range Columns {
			totals[col.Label] += row.Values[col.Label]
		}
		rows = append(rows, row)
	}

	if !anyData {
		return nil, fmt.Errorf("%w for %s (Shalarth ID %s) in %s; please ensure paybills are uploaded or contact Admin at %s",
			ErrNoRecordsForYear, t.Name, t.ShalarthID, financialYear, adminContact)
	}

	var visible []ColumnConfig
	for _, col := range Columns {
		if !col.Display || totals[col.Label] == 0 {
			continue
		}
		visible = append(visible, col)
	}
	if len(visible) == 0 {
		return nil, fmt.Errorf("%w for %s (Shalarth ID %s) in %s; every salary column is zero",
			ErrNoRecordsForYear, t.Name, t.ShalarthID, financialYear)
	}

	// The hidden composite inputs and suppressed columns feed the numbers
	// above but must not leave this package.
	for i := range rows {
		rows[i].Values = restrictToColumns(rows[i].Values, visible)
	}
	totals = restrictToColumns(totals, visible)

	return &Statement{
		TeacherName:   t.Name,
		ShalarthID:    t.ShalarthID,
		FinancialYear: financialYear,
		SchoolName:    schoolName,
		Block:         block,
		Columns:       visible,
		Rows:          rows,
		Totals:        totals,
	}, nil
}

func restrictToColumns(values map[string]float64, columns []ColumnConfig) map[string]float64 {
	out := make(map[string]float64, len(columns))
	for _, col := range columns {
		out[col.Label] = values[col.Label]
	}
	return out
}

// parseFinancialYear reads "2024-25" style input and returns the start
// calendar year.
func parseFinancialYear(fy string) (int, error) {
	parts := strings.Split(strings.TrimSpace(fy), "-")
	if len(parts) != 2 || len(parts[0]) != 4 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("%w, got %q", ErrBadFinancialYear, fy)
	}
	start, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w, got %q", ErrBadFinancialYear, fy)
	}
	end, err := strconv.Atoi(parts[1])
	if err != nil || (start+1)%100 != end {
		return 0, fmt.Errorf("%w, got %q", ErrBadFinancialYear, fy)
	}
	return start, nil
}

// findRecord matches a salary record by month name (case-insensitive) and
// calendar year. Stored years are strings so both "2024" and " 2024 " match.
func findRecord(records []paybill.SalaryRecord, month string, year int) (paybill.SalaryRecord, bool) {
	for _, rec := range records {
		if !strings.EqualFold(strings.TrimSpace(rec.Month), month) {
			continue
		}
		y, err := strconv.Atoi(strings.TrimSpace(rec.Year))
		if err != nil || y != year {
			continue
		}
		return rec, true
	}
	return paybill.SalaryRecord{}, false
}
