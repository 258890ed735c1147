package payslip

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// Data is everything printed on a single payslip.
type Data struct {
	EmployeeName string
	EmployeeCode string
	Email        string
	Department   string
	Designation  string
	PayDate      time.Time
	BasicSalary  decimal.Decimal
	Allowances   decimal.Decimal
	Deductions   decimal.Decimal
	NetSalary    decimal.Decimal
}

// Filename is the suggested download name for a payslip.
func (d Data) Filename() string {
	return fmt.Sprintf("payslip-%s-%s.pdf", d.EmployeeCode, d.PayDate.Format("2006-01"))
}

// Render writes an A4 PDF payslip to w.
func Render(w io.Writer, d Data) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Payslip", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s (%s)", d.EmployeeName, d.EmployeeCode))
	pdf.Ln(7)
	if d.Email != "" {
		pdf.Cell(0, 8, fmt.Sprintf("Email: %s", d.Email))
		pdf.Ln(7)
	}
	pdf.Cell(0, 8, fmt.Sprintf("Department: %s", d.Department))
	pdf.Ln(7)
	if d.Designation != "" {
		pdf.Cell(0, 8, fmt.Sprintf("Designation: %s", d.Designation))
		pdf.Ln(7)
	}
	pdf.Cell(0, 8, fmt.Sprintf("Pay date: %s", d.PayDate.Format("2006-01-02")))
	pdf.Ln(12)

	rows := []struct {
		label  string
		amount decimal.Decimal
	}{
		{"Basic salary", d.BasicSalary},
		{"Allowances", d.Allowances},
		{"Deductions", d.Deductions.Neg()},
	}
	for _, row := range rows {
		pdf.CellFormat(80, 8, row.label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 8, row.amount.StringFixed(2), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(80, 8, "Net salary", "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 8, d.NetSalary.StringFixed(2), "1", 1, "R", false, 0, "")

	return pdf.Output(w)
}
