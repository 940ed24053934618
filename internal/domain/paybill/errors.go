package paybill

import "errors"

var (
	ErrEmptySheet        = errors.New("paybill sheet has no data rows")
	ErrNoShalarthColumn  = errors.New("paybill sheet has no SHALARTH ID column")
	ErrUnsupportedFormat = errors.New("unsupported spreadsheet format, expected .xlsx or .xls")
)
