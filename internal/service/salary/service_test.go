package salary

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shaik-naseema17/employee-management-backend/internal/domain/auth"
	"github.com/shaik-naseema17/employee-management-backend/internal/domain/employee"
	"github.com/shaik-naseema17/employee-management-backend/internal/domain/salary"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	userID     = "11111111-1111-4111-8111-111111111111"
	employeeID = "22222222-2222-4222-8222-222222222222"
	salaryID   = "33333333-3333-4333-8333-333333333333"
	unknownID  = "44444444-4444-4444-8444-444444444444"
	otherID    = "55555555-5555-4555-8555-555555555555"
)

var (
	owner   = salary.Viewer{UserID: userID}
	admin   = salary.Viewer{UserID: otherID, Admin: true}
	another = salary.Viewer{UserID: otherID}
)

type stubEmployeeRepository struct {
	employee.EmployeeRepository
}

func (s *stubEmployeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if id != employeeID {
		return employee.Employee{}, pgx.ErrNoRows
	}
	return employee.Employee{ID: employeeID, UserID: userID}, nil
}

func (s *stubEmployeeRepository) GetByUserID(ctx context.Context, id string) (employee.Employee, error) {
	if id != userID {
		return employee.Employee{}, pgx.ErrNoRows
	}
	return employee.Employee{ID: employeeID, UserID: userID}, nil
}

type memorySalaryRepository struct {
	salaries map[string]salary.Salary
}

func (m *memorySalaryRepository) Create(ctx context.Context, s salary.Salary) (salary.Salary, error) {
	s.ID = salaryID
	s.CreatedAt = time.Now()
	m.salaries[s.ID] = s
	return s, nil
}

func (m *memorySalaryRepository) withEmployee(s salary.Salary) salary.SalaryWithEmployee {
	return salary.SalaryWithEmployee{Salary: s, EmployeeUserID: userID, EmployeeCode: "EMP-1", EmployeeName: "Jane", DepartmentName: "Engineering"}
}

func (m *memorySalaryRepository) GetByID(ctx context.Context, id string) (salary.SalaryWithEmployee, error) {
	s, ok := m.salaries[id]
	if !ok {
		return salary.SalaryWithEmployee{}, pgx.ErrNoRows
	}
	return m.withEmployee(s), nil
}

func (m *memorySalaryRepository) ListByEmployeeID(ctx context.Context, id string) ([]salary.SalaryWithEmployee, error) {
	out := make([]salary.SalaryWithEmployee, 0)
	for _, s := range m.salaries {
		if s.EmployeeID == id {
			out = append(out, m.withEmployee(s))
		}
	}
	return out, nil
}

func salaryTestInit() salary.SalaryService {
	return NewSalaryService(&memorySalaryRepository{salaries: map[string]salary.Salary{}}, &stubEmployeeRepository{})
}

func validSalaryRequest() salary.CreateSalaryRequest {
	return salary.CreateSalaryRequest{
		EmployeeID:  employeeID,
		BasicSalary: decimal.NewFromInt(5000),
		Allowances:  decimal.NewFromInt(500),
		Deductions:  decimal.NewFromInt(200),
		PayDate:     "2024-05-31",
	}
}

func TestCreateSalary(t *testing.T) {
	ctx := context.Background()
	svc := salaryTestInit()

	created, err := svc.CreateSalary(ctx, validSalaryRequest())
	require.NoError(t, err)
	assert.Equal(t, 5300.0, created.NetSalary)
	assert.Equal(t, "EMP-1", created.Employee.EmployeeCode)

	byUser, err := svc.GetSalaries(ctx, owner, userID)
	require.NoError(t, err)
	assert.Len(t, byUser, 1)

	byEmployee, err := svc.GetSalaries(ctx, owner, employeeID)
	require.NoError(t, err)
	assert.Len(t, byEmployee, 1)

	none, err := svc.GetSalaries(ctx, admin, unknownID)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCreateSalary_UnknownEmployee(t *testing.T) {
	req := validSalaryRequest()
	req.EmployeeID = unknownID

	_, err := salaryTestInit().CreateSalary(context.Background(), req)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestGeneratePayslip(t *testing.T) {
	ctx := context.Background()
	svc := salaryTestInit()
	_, err := svc.CreateSalary(ctx, validSalaryRequest())
	require.NoError(t, err)

	slip, err := svc.GeneratePayslip(ctx, owner, salaryID)
	require.NoError(t, err)
	assert.Equal(t, "payslip-EMP-1-2024-05.pdf", slip.Filename)
	assert.True(t, bytes.HasPrefix(slip.Content, []byte("%PDF")))

	_, err = svc.GeneratePayslip(ctx, admin, unknownID)
	assert.ErrorIs(t, err, salary.ErrSalaryNotFound)
}

func TestSalaryAccess_OwnerOrAdmin(t *testing.T) {
	ctx := context.Background()
	svc := salaryTestInit()
	_, err := svc.CreateSalary(ctx, validSalaryRequest())
	require.NoError(t, err)

	_, err = svc.GetSalaries(ctx, another, employeeID)
	assert.ErrorIs(t, err, auth.ErrForbidden)
	_, err = svc.GetSalaries(ctx, another, userID)
	assert.ErrorIs(t, err, auth.ErrForbidden)
	_, err = svc.GetSalariesByUserID(ctx, another, userID)
	assert.ErrorIs(t, err, auth.ErrForbidden)
	_, err = svc.GeneratePayslip(ctx, another, salaryID)
	assert.ErrorIs(t, err, auth.ErrForbidden)

	own, err := svc.GetSalariesByUserID(ctx, owner, userID)
	require.NoError(t, err)
	assert.Len(t, own, 1)

	all, err := svc.GetSalaries(ctx, admin, employeeID)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = svc.GeneratePayslip(ctx, admin, salaryID)
	assert.NoError(t, err)
}
