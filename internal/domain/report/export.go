package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const minColumnWidth = 15

// ExportXLSX renders a computed report as an xlsx workbook: one sheet with
// the column labels, the data rows (per-school blocks with subtotals for the
// grouped report) and the grand total row. Amounts are written formatted the
// way the on-screen report shows them.
func ExportXLSX(rpt *Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := sheetName(rpt)
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

	labels := make([]any, len(rpt.Columns))
	for i, col := range rpt.Columns {
		labels[i] = col.Label
	}
	if err := writeRow(labels); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	emit := func(row Row) error {
		return writeRow(cellValues(rpt.Columns, row))
	}
	if len(rpt.Groups) > 0 {
		for _, g := range rpt.Groups {
			for _, row := range g.Rows {
				if err := emit(row); err != nil {
					return nil, fmt.Errorf("write row: %w", err)
				}
			}
			if err := emit(g.Subtotal); err != nil {
				return nil, fmt.Errorf("write subtotal: %w", err)
			}
		}
	} else {
		for _, row := range rpt.Rows {
			if err := emit(row); err != nil {
				return nil, fmt.Errorf("write row: %w", err)
			}
		}
	}
	if err := emit(rpt.GrandTotal); err != nil {
		return nil, fmt.Errorf("write grand total: %w", err)
	}

	for i, col := range rpt.Columns {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		width := float64(len(col.Label))
		if width < minColumnWidth {
			width = minColumnWidth
		}
		if err := f.SetColWidth(sheet, name, name, width); err != nil {
			return nil, fmt.Errorf("set column width: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// sheetName builds "<title>_<Mon><year>" clamped to the 31-character sheet
// name limit Excel imposes.
func sheetName(rpt *Report) string {
	title := rpt.Title
	if len(title) > 20 {
		title = title[:20]
	}
	month := rpt.Month
	if len(month) > 3 {
		month = month[:3]
	}
	name := title + "_" + month + rpt.Year
	if len(name) > 31 {
		name = name[:31]
	}
	return name
}

func cellValues(columns []Column, row Row) []any {
	values := make([]any, len(columns))
	for i, col := range columns {
		switch v := row[col.Key].(type) {
		case float64:
			values[i] = FormatNumberForDisplay(v)
		case string:
			values[i] = v
		default:
			values[i] = ""
		}
	}
	return values
}
