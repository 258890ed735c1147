package salary

import "context"

type SalaryRepository interface {
	Create(ctx context.Context, newSalary Salary) (Salary, error)
	GetByID(ctx context.Context, id string) (SalaryWithEmployee, error)
	ListByEmployeeID(ctx context.Context, employeeID string) ([]SalaryWithEmployee, error)
}
