package employee

import (
	"time"

	"github.com/shaik-naseema17/employee-management-backend/internal/domain/user"
	"github.com/shopspring/decimal"
)

type Employee struct {
	ID            string
	UserID        string
	EmployeeCode  string // staff number chosen by the admin, exposed as employeeId
	DOB           *time.Time
	Gender        Gender
	MaritalStatus MaritalStatus
	Designation   string
	DepartmentID  string
	Salary        decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
	Other  Gender = "other"
)

type MaritalStatus string

const (
	Single  MaritalStatus = "single"
	Married MaritalStatus = "married"
)

// EmployeeWithDetails is an employee joined with its user and department.
type EmployeeWithDetails struct {
	Employee
	User                  user.User
	DepartmentName        string
	DepartmentDescription string
}
