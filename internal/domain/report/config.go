package report

// Type enumerates the deduction and paybill reports admins can generate.
type Type string

const (
	TypeGPFDeduction   Type = "GPF Deduction"
	TypeNPSDeduction   Type = "NPS Deduction"
	TypeCreditSociety  Type = "Credit Society"
	TypeBankList       Type = "Bank List"
	TypeIncomeTax      Type = "Income Tax"
	TypeOfflinePaybill Type = "Offline Paybill"
)

// Types lists every report type in menu order.
var Types = []Type{
	TypeGPFDeduction,
	TypeNPSDeduction,
	TypeCreditSociety,
	TypeBankList,
	TypeIncomeTax,
	TypeOfflinePaybill,
}

// Column is one report column. Key matches a field-mapping label, or a
// pseudo key ("srNo", "SOCIETY_ACCOUNT_NO") with no spreadsheet source.
type Column struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Numeric  bool   `json:"isNumeric"`
	Monetary bool   `json:"isMonetary"`
}

// Config is the static shape of one report type. AmountColumnKey names the
// column gating zero-suppression of rows.
type Config struct {
	Title           string
	AmountColumnKey string
	Columns         []Column
}

// offlinePaybillAmounts is the ordered monetary tail of the Offline Paybill
// report, mirroring the full column order of a government paybill sheet.
var offlinePaybillAmounts = []string{
	"BASIC PAY", "D.A", "HRA", "T.A", "T.A ARREAR", "TRIBAL ALLOWANCE", "WASHING ALLOWANCE",
	"DA ARREARS", "BASIC ARREARS", "CLA", "NPS EMPR ALLOW", "TOTAL PAY", "F A", "GPF",
	"GPF ADV", "PT", "GIS(ZP)", "GIS SCOUT", "DCPS REGULAR", "DCPS DELAYED",
	"DCPS PAY ARREARS RECOVERY", "REVENUE STAMP", "DCPS DA ARREARS RECOVERY",
	"GROUP ACCIDENTAL POLICY", "NAA", "NPS EMPR CONTRI", "NPS EMP CONTRI",
	"NPS EMPR CONTRI ARR", "NPS EMP CONTRI ARR", "INCOME TAX", "CO-OP BANK",
	"NGR(LIC)", "NGR(SOCIETY LOAN)", "NGR(MISC)", "NGR(OTHER RECOVERY)", "NGR(RD)",
	"NGR(OTHER DEDUCTION)", "NGR(TOTAL DEDUCTIONS)", "EMPLOYEE NET SALARY",
}

// ConfigFor returns the static configuration of a report type.
func ConfigFor(t Type) (Config, bool) {
	switch t {
	case TypeGPFDeduction:
		return Config{
			Title:           "GPF Deduction List",
			AmountColumnKey: "GPF",
			Columns: []Column{
				{Key: "srNo", Label: "Sr. No."},
				{Key: "EMPLOYEE NAME", Label: "Name of Teachers"},
				{Key: "NAME OF SCHOOL", Label: "School Name"},
				{Key: "SHALARTH ID", Label: "Shalarth ID"},
				{Key: "GPF NO", Label: "NPS/GPF/Account Number"},
				{Key: "GPF", Label: "Amount", Numeric: true, Monetary: true},
			},
		}, true
	case TypeNPSDeduction:
		return Config{
			Title:           "NPS Deduction List",
			AmountColumnKey: "NPS TOTAL",
			Columns: []Column{
				{Key: "srNo", Label: "Sr.No"},
				{Key: "NAME OF SCHOOL", Label: "School Name"},
				{Key: "PRAN NO", Label: "PRAN Number"},
				{Key: "SHALARTH ID", Label: "Shalarth ID"},
				{Key: "NPS EMPR CONTRI", Label: "NPS EMPR CONTRI", Numeric: true, Monetary: true},
				{Key: "NPS EMP CONTRI", Label: "NPS EMP CONTRI", Numeric: true, Monetary: true},
				{Key: "NPS EMPR CONTRI ARR", Label: "NPS EMPR CONTRI ARR", Numeric: true, Monetary: true},
				{Key: "NPS EMP CONTRI ARR", Label: "NPS EMP CONTRI ARR", Numeric: true, Monetary: true},
				{Key: "NPS TOTAL", Label: "NPS TOTAL", Numeric: true, Monetary: true},
			},
		}, true
	case TypeCreditSociety:
		return Config{
			Title:           "Credit Society Deduction List",
			AmountColumnKey: "NGR(SOCIETY LOAN)",
			Columns: []Column{
				{Key: "srNo", Label: "Sr.NO"},
				{Key: "NAME OF SCHOOL", Label: "School Name"},
				{Key: "EMPLOYEE NAME", Label: "Name of Teachers"},
				{Key: "SHALARTH ID", Label: "Shalarth ID"},
				{Key: ColumnSocietyAccountNo, Label: "Society Account Number"},
				{Key: "NGR(SOCIETY LOAN)", Label: "Amount", Numeric: true, Monetary: true},
			},
		}, true
	case TypeBankList:
		return Config{
			Title:           "Bank List",
			AmountColumnKey: "EMPLOYEE NET SALARY",
			Columns: []Column{
				{Key: "srNo", Label: "Sr.No"},
				{Key: "NAME OF SCHOOL", Label: "School Name"},
				{Key: "EMPLOYEE NAME", Label: "Name of Teachers"},
				{Key: "BANK NAME", Label: "BANK NAME"},
				{Key: "BANK IFSC CODE", Label: "BANK IFSC CODE"},
				{Key: "BRANCH NAME", Label: "BRANCH NAME"},
				{Key: "BANK ACCOUNT NUMBER", Label: "BANK ACCOUNT NUMBER"},
				{Key: "EMPLOYEE NET SALARY", Label: "EMPLOYEE NET SALARY", Numeric: true, Monetary: true},
			},
		}, true
	case TypeIncomeTax:
		return Config{
			Title:           "Income Tax Deduction List",
			AmountColumnKey: "INCOME TAX",
			Columns: []Column{
				{Key: "srNo", Label: "Sr.No"},
				{Key: "NAME OF SCHOOL", Label: "School Name"},
				{Key: "EMPLOYEE NAME", Label: "Name of Teachers"},
				{Key: "SHALARTH ID", Label: "Shalarth ID"},
				{Key: "PAN NO", Label: "PAN NO"},
				{Key: "INCOME TAX", Label: "INCOME TAX", Numeric: true, Monetary: true},
			},
		}, true
	case TypeOfflinePaybill:
		columns := []Column{
			{Key: "srNo", Label: "Sr.No"},
			{Key: "SCHOOL SHALARTH DDO CODE", Label: "SCHOOL SHALARTH DDO CODE"},
			{Key: "SCHOOL UDISE CODE", Label: "SCHOOL UDISE CODE"},
			{Key: "NAME OF SCHOOL", Label: "School Name"},
			{Key: "EMPLOYEE NAME", Label: "Name of Teachers"},
			{Key: "SHALARTH ID", Label: "Shalarth ID"},
		}
		for _, label := range offlinePaybillAmounts {
			columns = append(columns, Column{Key: label, Label: label, Numeric: true, Monetary: true})
		}
		return Config{
			Title:           "Offline Paybill",
			AmountColumnKey: "EMPLOYEE NET SALARY",
			Columns:         columns,
		}, true
	}
	return Config{}, false
}
