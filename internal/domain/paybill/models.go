package paybill

import "time"

// SalaryRecord is one teacher's payroll row for one month, kept exactly as
// it appeared in the uploaded spreadsheet. RawHeaders and RawDataRow are
// positional and always the same length; cells are raw strings, empty when
// the spreadsheet cell was blank.
type SalaryRecord struct {
	ID                string    `json:"id"`
	TeacherShalarthID string    `json:"teacherShalarthId"`
	Month             string    `json:"month"`
	Year              string    `json:"year"`
	RawHeaders        []string  `json:"rawHeaders"`
	RawDataRow        []string  `json:"rawDataRow"`
	UploadedAt        time.Time `json:"uploadedAt"`
}

// UploadSummary describes one uploaded paybill (month, year, row count).
type UploadSummary struct {
	Month    string `json:"month"`
	Year     string `json:"year"`
	RowCount int    `json:"rowCount"`
}
