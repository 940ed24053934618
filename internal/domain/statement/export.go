package statement

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"paybill/internal/domain/payslip"
)

// ExportXLSX renders the statement as an xlsx workbook: a short header
// block, one row per fiscal month and a totals row.
func ExportXLSX(st *Statement) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Statement_" + st.FinancialYear
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("name sheet: %w", err)
	}

	next := 1
	writeRow := func(values []any) error {
		cell, err := excelize.CoordinatesToCellName(1, next)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
		next++
		return nil
	}

	header := [][]any{
		{"Yearly Salary Statement", st.FinancialYear},
		{"Name", st.TeacherName},
		{"Shalarth ID", st.ShalarthID},
		{"School", st.SchoolName},
		{"Block / Taluka", st.Block},
		{},
	}
	for _, row := range header {
		if err := writeRow(row); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}

	labels := make([]any, 0, len(st.Columns)+1)
	labels = append(labels, "Month")
	for _, col := range st.Columns {
		labels = append(labels, col.Label)
	}
	if err := writeRow(labels); err != nil {
		return nil, fmt.Errorf("write column labels: %w", err)
	}

	for _, row := range st.Rows {
		values := make([]any, 0, len(st.Columns)+1)
		values = append(values, row.Month+" "+row.Year)
		for _, col := range st.Columns {
			values = append(values, payslip.FormatAmount(row.Values[col.Label]))
		}
		if err := writeRow(values); err != nil {
			return nil, fmt.Errorf("write month row: %w", err)
		}
	}

	totals := make([]any, 0, len(st.Columns)+1)
	totals = append(totals, "Total")
	for _, col := range st.Columns {
		totals = append(totals, payslip.FormatAmount(st.Totals[col.Label]))
	}
	if err := writeRow(totals); err != nil {
		return nil, fmt.Errorf("write totals: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
