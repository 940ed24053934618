package statement

// Column labels with no direct spreadsheet header.
const (
	// ColumnTotalDeduction is computed per month as F A plus the three
	// deduction totals carried on the paybill.
	ColumnTotalDeduction = "Total Deduction"
)

// ColumnConfig ties a statement column to the paybill field it reads.
// Hidden columns feed the computed total but are never shown.
type ColumnConfig struct {
	Label   string
	Header  string
	Display bool
}

// Columns is the yearly statement layout in print order: emoluments, the
// pay total, itemised deductions, three hidden deduction totals, the
// computed total deduction and the net salary.
var Columns = []ColumnConfig{
	{Label: "BASIC PAY", Header: "BASIC PAY", Display: true},
	{Label: "D.A", Header: "D.A", Display: true},
	{Label: "HRA", Header: "HRA", Display: true},
	{Label: "T.A", Header: "T.A", Display: true},
	{Label: "T.A ARREAR", Header: "T.A ARREAR", Display: true},
	{Label: "TRIBAL ALLOWANCE", Header: "TRIBAL ALLOWANCE", Display: true},
	{Label: "WASHING ALLOWANCE", Header: "WASHING ALLOWANCE", Display: true},
	{Label: "DA ARREARS", Header: "DA ARREARS", Display: true},
	{Label: "BASIC ARREARS", Header: "BASIC ARREARS", Display: true},
	{Label: "CLA", Header: "CLA", Display: true},
	{Label: "NPS EMPR ALLOW", Header: "NPS EMPR ALLOW", Display: true},
	{Label: "TOTAL PAY", Header: "TOTAL PAY", Display: true},
	{Label: "F A", Header: "F A", Display: true},
	{Label: "GPF", Header: "GPF", Display: true},
	{Label: "GPF ADV", Header: "GPF ADV", Display: true},
	{Label: "PT", Header: "PT", Display: true},
	{Label: "GIS(ZP)", Header: "GIS(ZP)", Display: true},
	{Label: "GIS SCOUT", Header: "GIS SCOUT", Display: true},
	{Label: "DCPS REGULAR", Header: "DCPS REGULAR", Display: true},
	{Label: "DCPS DELAYED", Header: "DCPS DELAYED", Display: true},
	{Label: "DCPS PAY ARREARS RECOVERY", Header: "DCPS PAY ARREARS RECOVERY", Display: true},
	{Label: "REVENUE STAMP", Header: "REVENUE STAMP", Display: true},
	{Label: "DCPS DA ARREARS RECOVERY", Header: "DCPS DA ARREARS RECOVERY", Display: true},
	{Label: "GROUP ACCIDENTAL POLICY", Header: "GROUP ACCIDENTAL POLICY", Display: true},
	{Label: "NAA", Header: "NAA", Display: true},
	{Label: "NPS EMPR CONTRI", Header: "NPS EMPR CONTRI", Display: true},
	{Label: "NPS EMP CONTRI", Header: "NPS EMP CONTRI", Display: true},
	{Label: "NPS EMPR CONTRI ARR", Header: "NPS EMPR CONTRI ARR", Display: true},
	{Label: "NPS EMP CONTRI ARR", Header: "NPS EMP CONTRI ARR", Display: true},
	{Label: "INCOME TAX", Header: "INCOME TAX", Display: true},
	{Label: "CO-OP BANK", Header: "CO-OP BANK", Display: true},
	{Label: "NGR(LIC)", Header: "NGR(LIC)", Display: true},
	{Label: "NGR(SOCIETY LOAN)", Header: "NGR(SOCIETY LOAN)", Display: true},
	{Label: "NGR(MISC)", Header: "NGR(MISC)", Display: true},
	{Label: "NGR(OTHER RECOVERY)", Header: "NGR(OTHER RECOVERY)", Display: true},
	{Label: "NGR(RD)", Header: "NGR(RD)", Display: true},
	{Label: "NGR(OTHER DEDUCTION)", Header: "NGR(OTHER DEDUCTION)", Display: true},
	{Label: "TOTAL GOVT DEDUCTIONS", Header: "TOTAL GOVT DEDUCTIONS"},
	{Label: "NPS TOTAL", Header: "NPS TOTAL"},
	{Label: "NGR(TOTAL DEDUCTIONS)", Header: "NGR(TOTAL DEDUCTIONS)"},
	{Label: ColumnTotalDeduction, Display: true},
	{Label: "EMPLOYEE NET SALARY", Header: "EMPLOYEE NET SALARY", Display: true},
}

// FiscalMonths is the statement row order. The first ten months belong to
// the financial year's start calendar year, the last two to the next.
var FiscalMonths = []string{
	"March", "April", "May", "June", "July", "August", "September",
	"October", "November", "December", "January", "February",
}

// monthsInStartYear is how many leading fiscal months fall in the start
// calendar year.
const monthsInStartYear = 10
