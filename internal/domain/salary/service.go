package salary

import "context"

type SalaryService interface {
	CreateSalary(ctx context.Context, req CreateSalaryRequest) (SalaryResponse, error)
	// GetSalaries treats id as an employee id and falls back to a user id.
	GetSalaries(ctx context.Context, viewer Viewer, id string) ([]SalaryResponse, error)
	GetSalariesByUserID(ctx context.Context, viewer Viewer, userID string) ([]SalaryResponse, error)
	GeneratePayslip(ctx context.Context, viewer Viewer, salaryID string) (Payslip, error)
}
