package report

import "errors"

var (
	ErrUnknownReportType = errors.New("unknown report type")
	ErrNoDataForPeriod   = errors.New("no paybill data found for the selected month and year")
	ErrNoQualifyingRows  = errors.New("no records with a non-zero amount for this report")
	ErrAllColumnsZero    = errors.New("all amount columns are zero for this report")
)
