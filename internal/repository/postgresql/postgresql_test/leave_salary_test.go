package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/shaik-naseema17/employee-management-backend/internal/domain/leave"
	"github.com/shaik-naseema17/employee-management-backend/internal/domain/salary"
	"github.com/shaik-naseema17/employee-management-backend/internal/repository/postgresql"
	dashboardService "github.com/shaik-naseema17/employee-management-backend/internal/service/dashboard"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaveRepository_RoundTrip(t *testing.T) {
	setupTestData(t)
	ctx := context.Background()
	svc := newServices(t)
	depID := createTestDepartment(t, ctx)

	emp, err := svc.employee.CreateEmployee(ctx, newEmployeeRequest(depID, "jane@example.com", "EMP-1"))
	require.NoError(t, err)

	repo := postgresql.NewLeaveRepository(testDB)
	created, err := repo.Create(ctx, leave.Leave{
		EmployeeID: emp.ID,
		LeaveType:  leave.TypeSick,
		StartDate:  time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC),
		Reason:     "flu",
	})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusPending, created.Status)

	detail, err := repo.GetDetailByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "EMP-1", detail.EmployeeCode)
	assert.Equal(t, "Jane Doe", detail.UserName)
	assert.Equal(t, "Engineering", detail.DepartmentName)

	require.NoError(t, repo.UpdateStatus(ctx, created.ID, leave.StatusApproved))
	leaves, err := repo.ListByEmployeeID(ctx, emp.ID)
	require.NoError(t, err)
	require.Len(t, leaves, 1)
	assert.Equal(t, leave.StatusApproved, leaves[0].Status)

	err = repo.UpdateStatus(ctx, "dddddddd-dddd-4ddd-8ddd-dddddddddddd", leave.StatusRejected)
	assert.Error(t, err)

	all, err := repo.ListWithDetails(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestDashboard_SalaryWindow(t *testing.T) {
	setupTestData(t)
	ctx := context.Background()
	svc := newServices(t)
	depID := createTestDepartment(t, ctx)

	emp, err := svc.employee.CreateEmployee(ctx, newEmployeeRequest(depID, "jane@example.com", "EMP-1"))
	require.NoError(t, err)

	salaryRepo := postgresql.NewSalaryRepository(testDB)
	for _, payDate := range []string{"2024-04-30", "2024-05-01", "2024-05-31", "2024-06-01"} {
		req := salary.CreateSalaryRequest{
			EmployeeID:  emp.ID,
			BasicSalary: decimal.NewFromInt(1000),
			Allowances:  decimal.NewFromInt(100),
			Deductions:  decimal.NewFromInt(50),
			PayDate:     payDate,
		}
		require.NoError(t, req.Validate())
		_, err := salaryRepo.Create(ctx, req.ToSalary())
		require.NoError(t, err)
	}

	leaveRepo := postgresql.NewLeaveRepository(testDB)
	for _, status := range []leave.Status{leave.StatusPending, leave.StatusApproved} {
		created, err := leaveRepo.Create(ctx, leave.Leave{
			EmployeeID: emp.ID,
			LeaveType:  leave.TypeAnnual,
			StartDate:  time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
			Reason:     "trip",
		})
		require.NoError(t, err)
		require.NoError(t, leaveRepo.UpdateStatus(ctx, created.ID, status))
	}

	clock := func() time.Time { return time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC) }
	summary, err := dashboardService.NewDashboardService(postgresql.NewDashboardRepository(testDB), clock).GetSummary(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(1), summary.TotalEmployees)
	assert.Equal(t, int64(1), summary.TotalDepartments)
	assert.Equal(t, 2100.0, summary.TotalSalary)
	assert.Equal(t, int64(1), summary.LeaveSummary.AppliedFor)
	assert.Equal(t, int64(1), summary.LeaveSummary.Pending)
	assert.Equal(t, int64(1), summary.LeaveSummary.Approved)
	assert.Equal(t, int64(0), summary.LeaveSummary.Rejected)
}
