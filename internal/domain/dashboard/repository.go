package dashboard

import (
	"context"
	"time"

	"github.com/shaik-naseema17/employee-management-backend/internal/domain/leave"
	"github.com/shopspring/decimal"
)

type DashboardRepository interface {
	CountEmployees(ctx context.Context) (int64, error)
	CountDepartments(ctx context.Context) (int64, error)
	// SumNetSalary totals net salary paid between from and to, both inclusive.
	SumNetSalary(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	CountEmployeesWithLeave(ctx context.Context) (int64, error)
	CountLeavesByStatus(ctx context.Context) (map[leave.Status]int64, error)
}
