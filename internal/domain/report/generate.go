package report

import (
	"fmt"
	"strconv"
	"strings"

	"paybill/internal/domain/fieldmap"
	"paybill/internal/domain/paybill"
	"paybill/internal/domain/teacher"
)

// Pseudo column keys with no spreadsheet source.
const (
	ColumnSrNo             = "srNo"
	ColumnSocietyAccountNo = "SOCIETY_ACCOUNT_NO"
)

// Row holds one report line keyed by column key. Numeric cells are float64,
// everything else is string.
type Row map[string]any

// Group is one school block of the Offline Paybill report, keyed by the
// school's Shalarth DDO code in order of first appearance.
type Group struct {
	DDOCode    string `json:"ddoCode"`
	SchoolName string `json:"schoolName"`
	Rows       []Row  `json:"rows"`
	Subtotal   Row    `json:"subtotal"`
}

// Report is a fully computed report: only the columns that survived
// zero-suppression, the data rows (flat, or grouped for Offline Paybill)
// and a grand total row.
type Report struct {
	Type       Type     `json:"type"`
	Title      string   `json:"title"`
	Month      string   `json:"month"`
	Year       string   `json:"year"`
	Columns    []Column `json:"columns"`
	Rows       []Row    `json:"rows"`
	Groups     []Group  `json:"groups,omitempty"`
	GrandTotal Row      `json:"grandTotal"`
}

// teacherFallbackKeys are the identity columns that may fall back to the
// teacher profile when the spreadsheet cell is blank.
var teacherFallbackKeys = map[string]string{
	"EMPLOYEE NAME": fieldmap.ValueKeyName,
	"SHALARTH ID":   fieldmap.ValueKeyShalarthID,
	"PAN NO":        fieldmap.ValueKeyPANNo,
	"GPF NO":        fieldmap.ValueKeyGPFNo,
	"PRAN NO":       fieldmap.ValueKeyPRANNo,
}

// Generate computes a report over one month's salary records. Deduction
// reports drop records whose amount column is zero; columns whose total is
// zero are suppressed afterwards. The Offline Paybill report additionally
// groups rows by school DDO code with a subtotal row per school.
func Generate(reportType Type, month, year string, records []paybill.SalaryRecord, teachers map[string]teacher.Teacher) (*Report, error) {
	cfg, ok := ConfigFor(reportType)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownReportType, reportType)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w (%s %s)", ErrNoDataForPeriod, month, year)
	}

	gated := gatesOnAmount(reportType)
	var rows []Row
	for _, rec := range records {
		row := buildRow(cfg, rec, teachers)
		if gated {
			if amt, _ := row[cfg.AmountColumnKey].(float64); amt == 0 {
				continue
			}
		}
		row[ColumnSrNo] = strconv.Itoa(len(rows) + 1)
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w (%s, %s %s)", ErrNoQualifyingRows, cfg.Title, month, year)
	}

	totals := columnTotals(cfg.Columns, rows)
	visible := visibleColumns(cfg.Columns, totals)
	if len(visible) <= 1 {
		return nil, fmt.Errorf("%w (%s, %s %s)", ErrAllColumnsZero, cfg.Title, month, year)
	}

	rpt := &Report{
		Type:       reportType,
		Title:      cfg.Title,
		Month:      month,
		Year:       year,
		Columns:    visible,
		Rows:       rows,
		GrandTotal: totalRow("Grand Total", visible, totals),
	}
	if reportType == TypeOfflinePaybill {
		rpt.Groups = groupBySchool(visible, rows)
		rpt.Rows = nil
	}
	return rpt, nil
}

// gatesOnAmount reports whether zero-amount records are dropped for a
// report type. Bank List and Offline Paybill list every record.
func gatesOnAmount(t Type) bool {
	switch t {
	case TypeGPFDeduction, TypeNPSDeduction, TypeCreditSociety, TypeIncomeTax:
		return true
	}
	return false
}

func buildRow(cfg Config, rec paybill.SalaryRecord, teachers map[string]teacher.Teacher) Row {
	row := make(Row, len(cfg.Columns))
	for _, col := range cfg.Columns {
		switch col.Key {
		case ColumnSrNo:
			continue
		case ColumnSocietyAccountNo:
			// Account numbers are not carried on paybills; the column is
			// emitted blank for manual completion.
			row[col.Key] = ""
			continue
		}
		raw, _ := fieldmap.ResolveLabel(rec.RawHeaders, rec.RawDataRow, col.Key)
		if col.Numeric {
			row[col.Key] = ParseNumericValue(raw)
			continue
		}
		val := strings.TrimSpace(raw)
		if val == "" {
			if key, ok := teacherFallbackKeys[col.Key]; ok {
				if tr, ok := teachers[rec.TeacherShalarthID]; ok {
					val = tr.AttributeValue(key)
				}
			}
		}
		row[col.Key] = val
	}
	return row
}

func columnTotals(columns []Column, rows []Row) map[string]float64 {
	totals := make(map[string]float64)
	for _, col := range columns {
		if !col.Numeric {
			continue
		}
		for _, row := range rows {
			if v, ok := row[col.Key].(float64); ok {
				totals[col.Key] += v
			}
		}
	}
	return totals
}

// visibleColumns keeps the serial column, every non-numeric column and the
// numeric columns whose total is non-zero.
func visibleColumns(columns []Column, totals map[string]float64) []Column {
	var visible []Column
	for _, col := range columns {
		if col.Key != ColumnSrNo && col.Numeric && totals[col.Key] == 0 {
			continue
		}
		visible = append(visible, col)
	}
	return visible
}

func totalRow(label string, columns []Column, totals map[string]float64) Row {
	row := make(Row, len(columns))
	for _, col := range columns {
		switch {
		case col.Key == ColumnSrNo:
			row[col.Key] = label
		case col.Numeric:
			row[col.Key] = totals[col.Key]
		default:
			row[col.Key] = ""
		}
	}
	return row
}

// groupBySchool splits rows into per-school blocks in order of first
// appearance of each DDO code. Rows without a DDO code share one block.
func groupBySchool(columns []Column, rows []Row) []Group {
	var groups []Group
	index := make(map[string]int)
	for _, row := range rows {
		code, _ := row["SCHOOL SHALARTH DDO CODE"].(string)
		if code == "" {
			code = "UNKNOWN_DDO"
		}
		i, ok := index[code]
		if !ok {
			name, _ := row["NAME OF SCHOOL"].(string)
			if name == "" {
				name = "Unknown School"
			}
			i = len(groups)
			index[code] = i
			groups = append(groups, Group{DDOCode: code, SchoolName: name})
		}
		groups[i].Rows = append(groups[i].Rows, row)
	}
	for i := range groups {
		totals := columnTotals(columns, groups[i].Rows)
		groups[i].Subtotal = totalRow(fmt.Sprintf("School Total (%s)", groups[i].SchoolName), columns, totals)
	}
	return groups
}
