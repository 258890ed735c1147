package employee

import "context"

type EmployeeService interface {
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)
	ListEmployeesByDepartment(ctx context.Context, departmentID string) ([]EmployeeResponse, error)
	// GetEmployee resolves id as an employee id first and as a user id
	// second. It returns nil when neither matches.
	GetEmployee(ctx context.Context, id string) (*EmployeeResponse, error)
	GetEmployeeByUserID(ctx context.Context, userID string) (*EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) error
	DeleteEmployee(ctx context.Context, id string) error
	SweepOrphans(ctx context.Context) (int64, error)
}
