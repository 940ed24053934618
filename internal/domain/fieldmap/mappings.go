package fieldmap

import "strings"

// FieldCategory buckets a payslip field. It is a closed set: bucketing logic
// switches over these values exhaustively.
type FieldCategory string

const (
	CategoryHeaderInfo      FieldCategory = "headerInfo"
	CategoryEmolument       FieldCategory = "emolument"
	CategoryGovtRecovery    FieldCategory = "govtRecovery"
	CategoryNonGovtRecovery FieldCategory = "nonGovtRecovery"
	// CategoryNone marks fields used by reports and statements only.
	CategoryNone FieldCategory = ""
)

// FieldMapping ties a semantic payroll field to the spreadsheet header
// spellings it may appear under. ValueKey optionally names a Teacher
// attribute used as a fallback when the spreadsheet has no value.
type FieldMapping struct {
	PayslipLabel          string
	Category              FieldCategory
	ExcelHeaderCandidates []string
	ValueKey              string
}

// Teacher attribute keys usable as ValueKey.
const (
	ValueKeyName        = "name"
	ValueKeyShalarthID  = "shalarthId"
	ValueKeyMobile      = "mobile"
	ValueKeyPANNo       = "panNo"
	ValueKeyGPFNo       = "gpfNo"
	ValueKeyPRANNo      = "pranNo"
	ValueKeyDesignation = "designation"
)

// DefaultMappings is the full field registry. Labels and first candidates
// must stay exactly as uploaded paybills spell them; report lookups rely on
// exact string equality with these labels.
var DefaultMappings = []FieldMapping{
	// Header info.
	{PayslipLabel: "NAME OF SCHOOL", Category: CategoryHeaderInfo, ExcelHeaderCandidates: []string{"NAME OF SCHOOL", "SCHOOL NAME"}},
	{PayslipLabel: "SCHOOL SHALARTH DDO CODE", Category: CategoryHeaderInfo, ExcelHeaderCandidates: []string{"SCHOOL SHALARTH DDO CODE", "DDO CODE"}},
	{PayslipLabel: "SCHOOL UDISE CODE", Category: CategoryHeaderInfo, ExcelHeaderCandidates: []string{"SCHOOL UDISE CODE", "UDISE CODE"}},
	{PayslipLabel: "BLOCK / TALUKA", Category: CategoryHeaderInfo, ExcelHeaderCandidates: []string{"BLOCK / TALUKA", "TALUKA"}},
	{PayslipLabel: "EMPLOYEE NAME", Category: CategoryHeaderInfo, ExcelHeaderCandidates: []string{"EMPLOYEE NAME", "NAME OF EMPLOYEE"}, ValueKey: ValueKeyName},
	{PayslipLabel: "SHALARTH ID", Category: CategoryHeaderInfo, ExcelHeaderCandidates: []string{"SHALARTH ID", "SHALARTH NO"}, ValueKey: ValueKeyShalarthID},
	{PayslipLabel: "DESIGNATION", Category: CategoryHeaderInfo, ExcelHeaderCandidates: []string{"DESIGNATION", "DESIG"}, ValueKey: ValueKeyDesignation},
	{PayslipLabel: "GPF NO", Category: CategoryHeaderInfo, ExcelHeaderCandidates: []string{"GPF NO", "GPF NUMBER"}, ValueKey: ValueKeyGPFNo},
	{PayslipLabel: "PAN NO", Category: CategoryHeaderInfo, ExcelHeaderCandidates: []string{"PAN NO", "PAN NUMBER"}, ValueKey: ValueKeyPANNo},
	{PayslipLabel: "PRAN NO", Category: CategoryHeaderInfo, ExcelHeaderCandidates: []string{"PRAN NO", "PRAN NUMBER"}, ValueKey: ValueKeyPRANNo},
	{PayslipLabel: "ADHAR NO", Category: CategoryHeaderInfo, ExcelHeaderCandidates: []string{"ADHAR NO", "AADHAR NO"}},
	{PayslipLabel: "EMAIL ID", Category: CategoryHeaderInfo, ExcelHeaderCandidates: []string{"EMAIL ID", "EMAIL"}},
	{PayslipLabel: "MOB NO", Category: CategoryHeaderInfo, ExcelHeaderCandidates: []string{"MOB NO", "MOBILE NO"}, ValueKey: ValueKeyMobile},
	{PayslipLabel: "BANK ACCOUNT NUMBER", Category: CategoryHeaderInfo, ExcelHeaderCandidates: []string{"BANK ACCOUNT NUMBER", "BANK A/C NO"}},
	{PayslipLabel: "PAY MATRIX", Category: CategoryHeaderInfo, ExcelHeaderCandidates: []string{"PAY MATRIX", "PAY SCALE"}},
	{PayslipLabel: "BANK NAME", Category: CategoryHeaderInfo, ExcelHeaderCandidates: []string{"BANK NAME"}},
	{PayslipLabel: "BANK IFSC CODE", Category: CategoryHeaderInfo, ExcelHeaderCandidates: []string{"BANK IFSC CODE", "IFSC CODE"}},
	{PayslipLabel: "BRANCH NAME", Category: CategoryHeaderInfo, ExcelHeaderCandidates: []string{"BRANCH NAME"}},

	// Emoluments.
	{PayslipLabel: "BASIC PAY", Category: CategoryEmolument, ExcelHeaderCandidates: []string{"BASIC PAY", "BASIC"}},
	{PayslipLabel: "D.A", Category: CategoryEmolument, ExcelHeaderCandidates: []string{"D.A", "DA"}},
	{PayslipLabel: "HRA", Category: CategoryEmolument, ExcelHeaderCandidates: []string{"HRA", "H.R.A"}},
	{PayslipLabel: "T.A", Category: CategoryEmolument, ExcelHeaderCandidates: []string{"T.A", "TA"}},
	{PayslipLabel: "T.A ARREAR", Category: CategoryEmolument, ExcelHeaderCandidates: []string{"T.A ARREAR", "TA ARREAR"}},
	{PayslipLabel: "TRIBAL ALLOWANCE", Category: CategoryEmolument, ExcelHeaderCandidates: []string{"TRIBAL ALLOWANCE"}},
	{PayslipLabel: "WASHING ALLOWANCE", Category: CategoryEmolument, ExcelHeaderCandidates: []string{"WASHING ALLOWANCE"}},
	{PayslipLabel: "DA ARREARS", Category: CategoryEmolument, ExcelHeaderCandidates: []string{"DA ARREARS", "D.A ARREARS"}},
	{PayslipLabel: "BASIC ARREARS", Category: CategoryEmolument, ExcelHeaderCandidates: []string{"BASIC ARREARS"}},
	{PayslipLabel: "CLA", Category: CategoryEmolument, ExcelHeaderCandidates: []string{"CLA"}},
	{PayslipLabel: "NPS EMPR ALLOW", Category: CategoryEmolument, ExcelHeaderCandidates: []string{"NPS EMPR ALLOW"}},
	{PayslipLabel: "NAA", Category: CategoryEmolument, ExcelHeaderCandidates: []string{"NAA"}},

	// Government recoveries.
	{PayslipLabel: "F A", Category: CategoryGovtRecovery, ExcelHeaderCandidates: []string{"F A", "FA"}},
	{PayslipLabel: "GPF", Category: CategoryGovtRecovery, ExcelHeaderCandidates: []string{"GPF"}},
	{PayslipLabel: "GPF ADV", Category: CategoryGovtRecovery, ExcelHeaderCandidates: []string{"GPF ADV", "GPF ADVANCE"}},
	{PayslipLabel: "PT", Category: CategoryGovtRecovery, ExcelHeaderCandidates: []string{"PT", "PROF TAX"}},
	{PayslipLabel: "GIS(ZP)", Category: CategoryGovtRecovery, ExcelHeaderCandidates: []string{"GIS(ZP)", "GIS ZP"}},
	{PayslipLabel: "GIS SCOUT", Category: CategoryGovtRecovery, ExcelHeaderCandidates: []string{"GIS SCOUT"}},
	{PayslipLabel: "DCPS REGULAR", Category: CategoryGovtRecovery, ExcelHeaderCandidates: []string{"DCPS REGULAR"}},
	{PayslipLabel: "DCPS DELAYED", Category: CategoryGovtRecovery, ExcelHeaderCandidates: []string{"DCPS DELAYED"}},
	{PayslipLabel: "DCPS PAY ARREARS RECOVERY", Category: CategoryGovtRecovery, ExcelHeaderCandidates: []string{"DCPS PAY ARREARS RECOVERY"}},
	{PayslipLabel: "REVENUE STAMP", Category: CategoryGovtRecovery, ExcelHeaderCandidates: []string{"REVENUE STAMP"}},
	{PayslipLabel: "DCPS DA ARREARS RECOVERY", Category: CategoryGovtRecovery, ExcelHeaderCandidates: []string{"DCPS DA ARREARS RECOVERY"}},
	{PayslipLabel: "GROUP ACCIDENTAL POLICY", Category: CategoryGovtRecovery, ExcelHeaderCandidates: []string{"GROUP ACCIDENTAL POLICY"}},
	{PayslipLabel: "NPS EMPR CONTRI", Category: CategoryGovtRecovery, ExcelHeaderCandidates: []string{"NPS EMPR CONTRI"}},
	{PayslipLabel: "NPS EMP CONTRI", Category: CategoryGovtRecovery, ExcelHeaderCandidates: []string{"NPS EMP CONTRI"}},
	{PayslipLabel: "NPS EMPR CONTRI ARR", Category: CategoryGovtRecovery, ExcelHeaderCandidates: []string{"NPS EMPR CONTRI ARR"}},
	{PayslipLabel: "NPS EMP CONTRI ARR", Category: CategoryGovtRecovery, ExcelHeaderCandidates: []string{"NPS EMP CONTRI ARR"}},
	{PayslipLabel: "INCOME TAX", Category: CategoryGovtRecovery, ExcelHeaderCandidates: []string{"INCOME TAX", "IT"}},

	// Non-government recoveries.
	{PayslipLabel: "CO-OP BANK", Category: CategoryNonGovtRecovery, ExcelHeaderCandidates: []string{"CO-OP BANK", "COOP BANK"}},
	{PayslipLabel: "NGR(LIC)", Category: CategoryNonGovtRecovery, ExcelHeaderCandidates: []string{"NGR(LIC)", "LIC"}},
	{PayslipLabel: "NGR(SOCIETY LOAN)", Category: CategoryNonGovtRecovery, ExcelHeaderCandidates: []string{"NGR(SOCIETY LOAN)", "SOCIETY LOAN"}},
	{PayslipLabel: "NGR(MISC)", Category: CategoryNonGovtRecovery, ExcelHeaderCandidates: []string{"NGR(MISC)"}},
	{PayslipLabel: "NGR(OTHER RECOVERY)", Category: CategoryNonGovtRecovery, ExcelHeaderCandidates: []string{"NGR(OTHER RECOVERY)"}},
	{PayslipLabel: "NGR(RD)", Category: CategoryNonGovtRecovery, ExcelHeaderCandidates: []string{"NGR(RD)"}},
	{PayslipLabel: "NGR(OTHER DEDUCTION)", Category: CategoryNonGovtRecovery, ExcelHeaderCandidates: []string{"NGR(OTHER DEDUCTION)"}},

	// Report and statement fields with no payslip bucket.
	{PayslipLabel: "TOTAL PAY", ExcelHeaderCandidates: []string{"TOTAL PAY"}},
	{PayslipLabel: "TOTAL GOVT DEDUCTIONS", ExcelHeaderCandidates: []string{"TOTAL GOVT DEDUCTIONS"}},
	{PayslipLabel: "NPS TOTAL", ExcelHeaderCandidates: []string{"NPS TOTAL"}},
	{PayslipLabel: "NGR(TOTAL DEDUCTIONS)", ExcelHeaderCandidates: []string{"NGR(TOTAL DEDUCTIONS)"}},
	{PayslipLabel: "EMPLOYEE NET SALARY", ExcelHeaderCandidates: []string{"EMPLOYEE NET SALARY", "NET SALARY"}},
}

// Find returns the first mapping whose label matches, compared trimmed and
// case-insensitively the way report column keys are matched.
func Find(label string) (FieldMapping, bool) {
	want := strings.ToUpper(strings.TrimSpace(label))
	for _, m := range DefaultMappings {
		if strings.ToUpper(strings.TrimSpace(m.PayslipLabel)) == want {
			return m, true
		}
	}
	return FieldMapping{}, false
}

// FindInCategory returns the first mapping with the given label and category.
func FindInCategory(label string, category FieldCategory) (FieldMapping, bool) {
	want := strings.ToUpper(strings.TrimSpace(label))
	for _, m := range DefaultMappings {
		if m.Category == category && strings.ToUpper(strings.TrimSpace(m.PayslipLabel)) == want {
			return m, true
		}
	}
	return FieldMapping{}, false
}

// ResolveLabel resolves a report column key against a row: the key is looked
// up in the registry and resolved through the mapping's first candidate.
func ResolveLabel(rawHeaders, rawDataRow []string, label string) (string, bool) {
	m, ok := Find(label)
	if !ok {
		return "", false
	}
	return Resolve(rawHeaders, rawDataRow, m.ExcelHeaderCandidates)
}
