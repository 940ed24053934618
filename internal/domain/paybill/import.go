package paybill

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"

	"paybill/internal/domain/fieldmap"
)

// ReadSheet reads the first worksheet of an uploaded paybill: the first row
// becomes the header list, every following row a data row. Modern .xlsx
// files are tried first, then the legacy .xls binary format DDO offices
// still export.
func ReadSheet(r io.Reader) (headers []string, rows [][]string, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, err
	}

	all, err := readWorkbook(data)
	if err != nil {
		return nil, nil, err
	}
	if len(all) < 2 {
		return nil, nil, ErrEmptySheet
	}

	headers = all[0]
	for _, row := range all[1:] {
		if isBlankRow(row) {
			continue
		}
		rows = append(rows, padRow(row, len(headers)))
	}
	if len(rows) == 0 {
		return nil, nil, ErrEmptySheet
	}
	return headers, rows, nil
}

func readWorkbook(data []byte) ([][]string, error) {
	reader := bytes.NewReader(data)

	if f, err := excelize.OpenReader(reader); err == nil {
		defer f.Close()
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrEmptySheet
		}
		return f.GetRows(sheets[0])
	}

	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	if workbook, err := xls.OpenReader(reader); err == nil {
		if len(workbook.GetSheets()) == 0 {
			return nil, ErrEmptySheet
		}
		sheet, err := workbook.GetSheet(0)
		if err != nil {
			return nil, fmt.Errorf("read .xls sheet: %w", err)
		}
		var all [][]string
		for _, row := range sheet.GetRows() {
			var cells []string
			for _, cell := range row.GetCols() {
				cells = append(cells, cell.GetString())
			}
			all = append(all, cells)
		}
		return all, nil
	}

	return nil, ErrUnsupportedFormat
}

// BuildRecords turns parsed sheet rows into salary records for one (month,
// year). The Shalarth ID is taken from the row's SHALARTH ID column; rows
// without one are kept with an empty ID so the paybill still reconciles
// against its source row count.
func BuildRecords(month, year string, headers []string, rows [][]string) ([]SalaryRecord, error) {
	idx := shalarthColumnIndex(headers)
	if idx < 0 {
		return nil, ErrNoShalarthColumn
	}

	records := make([]SalaryRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, SalaryRecord{
			TeacherShalarthID: strings.TrimSpace(row[idx]),
			Month:             month,
			Year:              year,
			RawHeaders:        headers,
			RawDataRow:        row,
		})
	}
	return records, nil
}

func shalarthColumnIndex(headers []string) int {
	want := fieldmap.NormalizeHeader("SHALARTH ID")
	for i, h := range headers {
		if fieldmap.NormalizeHeader(h) == want {
			return i
		}
	}
	return -1
}

func padRow(row []string, width int) []string {
	if len(row) == width {
		return row
	}
	padded := make([]string, width)
	copy(padded, row)
	return padded[:width]
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
