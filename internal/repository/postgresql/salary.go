package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shaik-naseema17/employee-management-backend/internal/domain/salary"
	"github.com/shaik-naseema17/employee-management-backend/internal/pkg/database"
)

type salaryRepositoryImpl struct {
	db *database.DB
}

func NewSalaryRepository(db *database.DB) salary.SalaryRepository {
	return &salaryRepositoryImpl{db: db}
}

const salaryColumns = `s.id, s.employee_id, s.basic_salary, s.allowances, s.deductions, s.net_salary, s.pay_date, s.created_at`

const salaryWithEmployeeSelect = `
	SELECT ` + salaryColumns + `, e.user_id, e.employee_code, u.name, u.email, e.designation, d.dep_name
	FROM salaries s
	JOIN employees e ON e.id = s.employee_id
	JOIN users u ON u.id = e.user_id
	JOIN departments d ON d.id = e.department_id
`

func salaryScanTargets(s *salary.Salary) []interface{} {
	return []interface{}{
		&s.ID,
		&s.EmployeeID,
		&s.BasicSalary,
		&s.Allowances,
		&s.Deductions,
		&s.NetSalary,
		&s.PayDate,
		&s.CreatedAt,
	}
}

func scanSalaryWithEmployee(row pgx.Row) (salary.SalaryWithEmployee, error) {
	var s salary.SalaryWithEmployee
	targets := append(salaryScanTargets(&s.Salary), &s.EmployeeUserID, &s.EmployeeCode, &s.EmployeeName, &s.EmployeeEmail, &s.Designation, &s.DepartmentName)
	err := row.Scan(targets...)
	return s, err
}

// Create implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) Create(ctx context.Context, newSalary salary.Salary) (salary.Salary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salaries AS s (employee_id, basic_salary, allowances, deductions, net_salary, pay_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + salaryColumns

	var created salary.Salary
	err := q.QueryRow(ctx, query,
		newSalary.EmployeeID,
		newSalary.BasicSalary,
		newSalary.Allowances,
		newSalary.Deductions,
		newSalary.NetSalary,
		newSalary.PayDate,
	).Scan(salaryScanTargets(&created)...)
	if err != nil {
		return salary.Salary{}, err
	}
	return created, nil
}

// GetByID implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) GetByID(ctx context.Context, id string) (salary.SalaryWithEmployee, error) {
	q := GetQuerier(ctx, r.db)
	return scanSalaryWithEmployee(q.QueryRow(ctx, salaryWithEmployeeSelect+` WHERE s.id = $1`, id))
}

// ListByEmployeeID implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) ListByEmployeeID(ctx context.Context, employeeID string) ([]salary.SalaryWithEmployee, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, salaryWithEmployeeSelect+` WHERE s.employee_id = $1 ORDER BY s.pay_date DESC, s.id`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list salaries: %w", err)
	}
	defer rows.Close()

	salaries := make([]salary.SalaryWithEmployee, 0)
	for rows.Next() {
		s, err := scanSalaryWithEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary: %w", err)
		}
		salaries = append(salaries, s)
	}
	return salaries, rows.Err()
}
