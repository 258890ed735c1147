package salary

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/shaik-naseema17/employee-management-backend/internal/domain/auth"
	"github.com/shaik-naseema17/employee-management-backend/internal/domain/employee"
	"github.com/shaik-naseema17/employee-management-backend/internal/domain/salary"
	"github.com/shaik-naseema17/employee-management-backend/internal/pkg/payslip"
	"github.com/shaik-naseema17/employee-management-backend/internal/pkg/validator"
)

type SalaryServiceImpl struct {
	salaryRepo   salary.SalaryRepository
	employeeRepo employee.EmployeeRepository
}

func NewSalaryService(salaryRepo salary.SalaryRepository, employeeRepo employee.EmployeeRepository) salary.SalaryService {
	return &SalaryServiceImpl{
		salaryRepo:   salaryRepo,
		employeeRepo: employeeRepo,
	}
}

func mapSalaries(salaries []salary.SalaryWithEmployee) []salary.SalaryResponse {
	responses := make([]salary.SalaryResponse, 0, len(salaries))
	for _, s := range salaries {
		responses = append(responses, salary.NewSalaryResponse(s))
	}
	return responses
}

// CreateSalary implements salary.SalaryService.
func (s *SalaryServiceImpl) CreateSalary(ctx context.Context, req salary.CreateSalaryRequest) (salary.SalaryResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salary.SalaryResponse{}, employee.ErrEmployeeNotFound
		}
		return salary.SalaryResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	created, err := s.salaryRepo.Create(ctx, req.ToSalary())
	if err != nil {
		return salary.SalaryResponse{}, fmt.Errorf("failed to create salary: %w", err)
	}

	withEmployee, err := s.salaryRepo.GetByID(ctx, created.ID)
	if err != nil {
		return salary.SalaryResponse{}, fmt.Errorf("failed to load salary: %w", err)
	}

	slog.Info("Salary recorded", "salary_id", created.ID, "employee_id", created.EmployeeID, "net", created.NetSalary.String())
	return salary.NewSalaryResponse(withEmployee), nil
}

// GetSalaries implements salary.SalaryService.
func (s *SalaryServiceImpl) GetSalaries(ctx context.Context, viewer salary.Viewer, id string) ([]salary.SalaryResponse, error) {
	if !validator.IsValidUUID(id) {
		return nil, validator.Single("id", "id must be a valid id")
	}

	emp, err := s.employeeRepo.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		emp, err = s.employeeRepo.GetByUserID(ctx, id)
	}
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []salary.SalaryResponse{}, nil
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	return s.listFor(ctx, viewer, emp)
}

// GetSalariesByUserID implements salary.SalaryService.
func (s *SalaryServiceImpl) GetSalariesByUserID(ctx context.Context, viewer salary.Viewer, userID string) ([]salary.SalaryResponse, error) {
	if !validator.IsValidUUID(userID) {
		return nil, validator.Single("userId", "userId must be a valid id")
	}
	if !viewer.CanRead(userID) {
		return nil, auth.ErrForbidden
	}

	emp, err := s.employeeRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []salary.SalaryResponse{}, nil
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	return s.listFor(ctx, viewer, emp)
}

func (s *SalaryServiceImpl) listFor(ctx context.Context, viewer salary.Viewer, emp employee.Employee) ([]salary.SalaryResponse, error) {
	if !viewer.CanRead(emp.UserID) {
		return nil, auth.ErrForbidden
	}

	salaries, err := s.salaryRepo.ListByEmployeeID(ctx, emp.ID)
	if err != nil {
		return nil, err
	}
	return mapSalaries(salaries), nil
}

// GeneratePayslip implements salary.SalaryService.
func (s *SalaryServiceImpl) GeneratePayslip(ctx context.Context, viewer salary.Viewer, salaryID string) (salary.Payslip, error) {
	if !validator.IsValidUUID(salaryID) {
		return salary.Payslip{}, validator.Single("id", "id must be a valid id")
	}

	record, err := s.salaryRepo.GetByID(ctx, salaryID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salary.Payslip{}, salary.ErrSalaryNotFound
		}
		return salary.Payslip{}, fmt.Errorf("failed to get salary: %w", err)
	}
	if !viewer.CanRead(record.EmployeeUserID) {
		return salary.Payslip{}, auth.ErrForbidden
	}

	data := payslip.Data{
		EmployeeName: record.EmployeeName,
		EmployeeCode: record.EmployeeCode,
		Email:        record.EmployeeEmail,
		Department:   record.DepartmentName,
		Designation:  record.Designation,
		PayDate:      record.PayDate,
		BasicSalary:  record.BasicSalary,
		Allowances:   record.Allowances,
		Deductions:   record.Deductions,
		NetSalary:    record.NetSalary,
	}

	var buf bytes.Buffer
	if err := payslip.Render(&buf, data); err != nil {
		return salary.Payslip{}, fmt.Errorf("failed to render payslip: %w", err)
	}

	return salary.Payslip{Filename: data.Filename(), Content: buf.Bytes()}, nil
}
