package payslip

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// RenderPDF renders the payslip the way the printable salary slip lays it
// out: title, employee info in two columns, the three salary columns with
// totals, then the net-pay summary.
func RenderPDF(v *View) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "SALARY SLIP", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("PAYSLIP for %s-%s", strings.ToUpper(v.Month), v.Year), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, v.SchoolName, "", 1, "C", false, 0, "")
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "", 8)
	for i := 0; i < len(v.HeaderInfo); i += 2 {
		left := v.HeaderInfo[i]
		pdf.CellFormat(95, 5, fmt.Sprintf("%s: %s", left.Label, left.Value), "", 0, "L", false, 0, "")
		if i+1 < len(v.HeaderInfo) {
			right := v.HeaderInfo[i+1]
			pdf.CellFormat(95, 5, fmt.Sprintf("%s: %s", right.Label, right.Value), "", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(3)

	colWidth := 63.0
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(colWidth, 6, "Emoluments", "1", 0, "C", false, 0, "")
	pdf.CellFormat(colWidth, 6, "Govt. Recoveries", "1", 0, "C", false, 0, "")
	pdf.CellFormat(colWidth, 6, "Non Govt. Recoveries", "1", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	rows := maxLines(v)
	for i := 0; i < rows; i++ {
		writeLineCell(pdf, v.Emoluments, i, colWidth)
		writeLineCell(pdf, v.GovtRecoveries, i, colWidth)
		writeLineCell(pdf, v.NonGovtRecoveries, i, colWidth)
		pdf.Ln(-1)
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(colWidth, 6, "Total: "+FormatAmount(v.TotalEmoluments), "1", 0, "R", false, 0, "")
	pdf.CellFormat(colWidth, 6, "Total: "+FormatAmount(v.TotalGovtRecoveries), "1", 0, "R", false, 0, "")
	pdf.CellFormat(colWidth, 6, "Total: "+FormatAmount(v.TotalNonGovtRecoveries), "1", 1, "R", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, "Total Deductions: "+FormatAmount(v.GrandTotalDeductions), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, "NET PAY: "+FormatAmount(v.NetPay), "", 1, "C", false, 0, "")
	if v.NetPayWords != "" {
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 5, fmt.Sprintf("(%s Rs. Only.)", v.NetPayWords), "", 1, "C", false, 0, "")
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 7)
	pdf.CellFormat(0, 5, "*This is a system-generated payslip. Hence signature is not needed.*", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeLineCell(pdf *gofpdf.Fpdf, lines []Line, i int, width float64) {
	if i < len(lines) {
		pdf.CellFormat(width, 5, fmt.Sprintf("%s: %s", lines[i].Label, FormatAmount(lines[i].Amount)), "LR", 0, "L", false, 0, "")
		return
	}
	pdf.CellFormat(width, 5, "", "LR", 0, "L", false, 0, "")
}

func maxLines(v *View) int {
	n := len(v.Emoluments)
	if len(v.GovtRecoveries) > n {
		n = len(v.GovtRecoveries)
	}
	if len(v.NonGovtRecoveries) > n {
		n = len(v.NonGovtRecoveries)
	}
	return n
}
