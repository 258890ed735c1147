package postgresql

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shaik-naseema17/employee-management-backend/internal/domain/employee"
	"github.com/shaik-naseema17/employee-management-backend/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `e.id, e.user_id, e.employee_code, e.dob, e.gender, e.marital_status,
	e.designation, e.department_id, e.salary, e.created_at, e.updated_at`

// Inner joins: an employee without its user or department is never returned.
const employeeDetailSelect = `
	SELECT ` + employeeColumns + `,
		u.id, u.name, u.email, u.password_hash, u.role, u.profile_image, u.created_at, u.updated_at,
		d.dep_name, d.description
	FROM employees e
	JOIN users u ON u.id = e.user_id
	JOIN departments d ON d.id = e.department_id
`

func employeeScanTargets(e *employee.Employee) []interface{} {
	return []interface{}{
		&e.ID,
		&e.UserID,
		&e.EmployeeCode,
		&e.DOB,
		&e.Gender,
		&e.MaritalStatus,
		&e.Designation,
		&e.DepartmentID,
		&e.Salary,
		&e.CreatedAt,
		&e.UpdatedAt,
	}
}

func scanEmployeeDetail(row pgx.Row) (employee.EmployeeWithDetails, error) {
	var d employee.EmployeeWithDetails
	targets := append(employeeScanTargets(&d.Employee),
		&d.User.ID,
		&d.User.Name,
		&d.User.Email,
		&d.User.PasswordHash,
		&d.User.Role,
		&d.User.ProfileImage,
		&d.User.CreatedAt,
		&d.User.UpdatedAt,
		&d.DepartmentName,
		&d.DepartmentDescription,
	)
	err := row.Scan(targets...)
	return d, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees AS e (
			user_id, employee_code, dob, gender, marital_status, designation, department_id, salary
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + employeeColumns

	var created employee.Employee
	err := q.QueryRow(ctx, query,
		newEmployee.UserID,
		newEmployee.EmployeeCode,
		newEmployee.DOB,
		newEmployee.Gender,
		newEmployee.MaritalStatus,
		newEmployee.Designation,
		newEmployee.DepartmentID,
		newEmployee.Salary,
	).Scan(employeeScanTargets(&created)...)
	if err != nil {
		if isConstraintViolation(err, codeUniqueViolation, "employees_employee_code_key") {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
		return employee.Employee{}, err
	}
	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	var e employee.Employee
	err := q.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees e WHERE e.id = $1`, id).
		Scan(employeeScanTargets(&e)...)
	return e, err
}

// GetByUserID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	var e employee.Employee
	err := q.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees e WHERE e.user_id = $1`, userID).
		Scan(employeeScanTargets(&e)...)
	return e, err
}

// GetDetailByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetDetailByID(ctx context.Context, id string) (employee.EmployeeWithDetails, error) {
	q := GetQuerier(ctx, r.db)
	return scanEmployeeDetail(q.QueryRow(ctx, employeeDetailSelect+` WHERE e.id = $1`, id))
}

// GetDetailByUserID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetDetailByUserID(ctx context.Context, userID string) (employee.EmployeeWithDetails, error) {
	q := GetQuerier(ctx, r.db)
	return scanEmployeeDetail(q.QueryRow(ctx, employeeDetailSelect+` WHERE e.user_id = $1`, userID))
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, departmentID *string) ([]employee.EmployeeWithDetails, error) {
	q := GetQuerier(ctx, r.db)

	query := employeeDetailSelect
	var args []interface{}
	if departmentID != nil {
		query += ` WHERE e.department_id = $1`
		args = append(args, *departmentID)
	}
	query += ` ORDER BY e.created_at, e.id`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]employee.EmployeeWithDetails, 0)
	for rows.Next() {
		d, err := scanEmployeeDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, d)
	}
	return employees, rows.Err()
}

// Update implements employee.EmployeeRepository. Only non-nil fields are written.
func (r *employeeRepositoryImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{}
	set := func(column string, value interface{}) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.MaritalStatus != nil {
		set("marital_status", *req.MaritalStatus)
	}
	if req.Designation != nil {
		set("designation", *req.Designation)
	}
	if req.DepartmentID != nil {
		set("department_id", *req.DepartmentID)
	}
	if req.Salary != nil {
		set("salary", *req.Salary)
	}

	args = append(args, req.ID)
	query := fmt.Sprintf(`UPDATE employees SET %s WHERE id = $%d`, strings.Join(setClauses, ", "), len(args))

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// DeleteOrphans implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) DeleteOrphans(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		DELETE FROM employees e
		WHERE NOT EXISTS (SELECT 1 FROM users u WHERE u.id = e.user_id)
		RETURNING e.id, e.user_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to delete orphaned employees: %w", err)
	}
	defer rows.Close()

	removed := make([]string, 0)
	for rows.Next() {
		var id, userID string
		if err := rows.Scan(&id, &userID); err != nil {
			return nil, err
		}
		slog.Info("Deleted orphaned employee", "employee_id", id, "user_id", userID)
		removed = append(removed, id)
	}
	return removed, rows.Err()
}

// ValidateUserReference implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ValidateUserReference(ctx context.Context) error {
	q := GetQuerier(ctx, r.db)

	var validated bool
	err := q.QueryRow(ctx, `
		SELECT convalidated FROM pg_constraint
		WHERE conname = 'employees_user_id_fkey' AND conrelid = 'employees'::regclass
	`).Scan(&validated)
	if err != nil {
		return fmt.Errorf("failed to read employees_user_id_fkey: %w", err)
	}
	if validated {
		return nil
	}

	if _, err := q.Exec(ctx, `ALTER TABLE employees VALIDATE CONSTRAINT employees_user_id_fkey`); err != nil {
		return fmt.Errorf("failed to validate employees_user_id_fkey: %w", err)
	}
	return nil
}
