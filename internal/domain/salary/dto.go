package salary

import (
	"time"

	"github.com/shaik-naseema17/employee-management-backend/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateSalaryRequest struct {
	EmployeeID  string          `json:"employeeId"`
	BasicSalary decimal.Decimal `json:"basicSalary"`
	Allowances  decimal.Decimal `json:"allowances"`
	Deductions  decimal.Decimal `json:"deductions"`
	PayDate     string          `json:"payDate"`
}

func (r *CreateSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "employeeId must be a valid id"})
	}
	if !r.BasicSalary.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "basicSalary", Message: "basicSalary must be greater than zero"})
	}
	if r.Allowances.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "allowances", Message: "allowances must not be negative"})
	}
	if r.Deductions.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "deductions", Message: "deductions must not be negative"})
	}
	if _, ok := validator.IsValidDate(r.PayDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "payDate", Message: "payDate must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToSalary builds the record to store. Call after Validate.
func (r *CreateSalaryRequest) ToSalary() Salary {
	payDate, _ := validator.IsValidDate(r.PayDate)
	return Salary{
		EmployeeID:  r.EmployeeID,
		BasicSalary: r.BasicSalary,
		Allowances:  r.Allowances,
		Deductions:  r.Deductions,
		NetSalary:   NetOf(r.BasicSalary, r.Allowances, r.Deductions),
		PayDate:     payDate,
	}
}

type SalaryEmployee struct {
	ID           string `json:"_id"`
	EmployeeCode string `json:"employeeId"`
	Name         string `json:"name"`
	Department   string `json:"department"`
}

type SalaryResponse struct {
	ID          string         `json:"_id"`
	Employee    SalaryEmployee `json:"employeeId"`
	BasicSalary float64        `json:"basicSalary"`
	Allowances  float64        `json:"allowances"`
	Deductions  float64        `json:"deductions"`
	NetSalary   float64        `json:"netSalary"`
	PayDate     string         `json:"payDate"`
	CreatedAt   time.Time      `json:"createdAt"`
}

func NewSalaryResponse(s SalaryWithEmployee) SalaryResponse {
	return SalaryResponse{
		ID: s.ID,
		Employee: SalaryEmployee{
			ID:           s.EmployeeID,
			EmployeeCode: s.EmployeeCode,
			Name:         s.EmployeeName,
			Department:   s.DepartmentName,
		},
		BasicSalary: s.BasicSalary.InexactFloat64(),
		Allowances:  s.Allowances.InexactFloat64(),
		Deductions:  s.Deductions.InexactFloat64(),
		NetSalary:   s.NetSalary.InexactFloat64(),
		PayDate:     s.PayDate.Format(validator.DateLayout),
		CreatedAt:   s.CreatedAt,
	}
}

// Payslip is a rendered PDF ready to be streamed.
type Payslip struct {
	Filename string
	Content  []byte
}
