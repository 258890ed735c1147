package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/shaik-naseema17/employee-management-backend/internal/domain/dashboard"
	"github.com/shaik-naseema17/employee-management-backend/internal/domain/leave"
	"github.com/shaik-naseema17/employee-management-backend/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// CountEmployees implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountEmployees(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return count, nil
}

// CountDepartments implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountDepartments(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM departments`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count departments: %w", err)
	}
	return count, nil
}

// SumNetSalary implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) SumNetSalary(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	var total decimal.Decimal
	err := q.QueryRow(ctx, `
		SELECT COALESCE(SUM(net_salary), 0)
		FROM salaries
		WHERE pay_date BETWEEN $1::date AND $2::date
	`, from.Format("2006-01-02"), to.Format("2006-01-02")).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum salaries: %w", err)
	}
	return total, nil
}

// CountEmployeesWithLeave implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountEmployeesWithLeave(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	if err := q.QueryRow(ctx, `SELECT COUNT(DISTINCT employee_id) FROM leaves`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count employees with leave: %w", err)
	}
	return count, nil
}

// CountLeavesByStatus implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountLeavesByStatus(ctx context.Context) (map[leave.Status]int64, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT status, COUNT(*) FROM leaves GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("failed to count leaves by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[leave.Status]int64)
	for rows.Next() {
		var status leave.Status
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}
