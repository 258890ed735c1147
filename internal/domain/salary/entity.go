package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

type Salary struct {
	ID          string
	EmployeeID  string
	BasicSalary decimal.Decimal
	Allowances  decimal.Decimal
	Deductions  decimal.Decimal
	NetSalary   decimal.Decimal
	PayDate     time.Time
	CreatedAt   time.Time
}

// NetOf computes basic + allowances - deductions.
func NetOf(basic, allowances, deductions decimal.Decimal) decimal.Decimal {
	return basic.Add(allowances).Sub(deductions)
}

// SalaryWithEmployee is a salary joined with the employee it was paid to.
type SalaryWithEmployee struct {
	Salary
	EmployeeUserID string
	EmployeeCode   string
	EmployeeName   string
	EmployeeEmail  string
	Designation    string
	DepartmentName string
}

// Viewer is the caller reading salary records. Employees only see their own.
type Viewer struct {
	UserID string
	Admin  bool
}

func (v Viewer) CanRead(ownerUserID string) bool {
	return v.Admin || (v.UserID != "" && v.UserID == ownerUserID)
}
