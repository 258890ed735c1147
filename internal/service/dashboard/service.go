package dashboard

import (
	"context"
	"time"

	"github.com/shaik-naseema17/employee-management-backend/internal/domain/dashboard"
	"github.com/shaik-naseema17/employee-management-backend/internal/domain/leave"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	dashboardRepo dashboard.DashboardRepository
	now           func() time.Time
}

// NewDashboardService builds the service. now supplies the current time and
// decides which month's salaries are totalled; nil means time.Now.
func NewDashboardService(dashboardRepo dashboard.DashboardRepository, now func() time.Time) dashboard.DashboardService {
	if now == nil {
		now = time.Now
	}
	return &DashboardServiceImpl{
		dashboardRepo: dashboardRepo,
		now:           now,
	}
}

// MonthBounds returns the first and last calendar day of t's month.
func MonthBounds(t time.Time) (time.Time, time.Time) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return first, first.AddDate(0, 1, -1)
}

// GetSummary implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetSummary(ctx context.Context) (dashboard.SummaryResponse, error) {
	var (
		totalEmployees   int64
		totalDepartments int64
		totalSalary      decimal.Decimal
		appliedFor       int64
		byStatus         map[leave.Status]int64
	)

	from, to := MonthBounds(s.now())

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		totalEmployees, err = s.dashboardRepo.CountEmployees(gctx)
		return err
	})

	g.Go(func() error {
		var err error
		totalDepartments, err = s.dashboardRepo.CountDepartments(gctx)
		return err
	})

	g.Go(func() error {
		var err error
		totalSalary, err = s.dashboardRepo.SumNetSalary(gctx, from, to)
		return err
	})

	g.Go(func() error {
		var err error
		appliedFor, err = s.dashboardRepo.CountEmployeesWithLeave(gctx)
		return err
	})

	g.Go(func() error {
		var err error
		byStatus, err = s.dashboardRepo.CountLeavesByStatus(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return dashboard.SummaryResponse{}, err
	}

	return dashboard.SummaryResponse{
		TotalEmployees:   totalEmployees,
		TotalDepartments: totalDepartments,
		TotalSalary:      totalSalary.InexactFloat64(),
		LeaveSummary: dashboard.LeaveSummary{
			AppliedFor: appliedFor,
			Approved:   byStatus[leave.StatusApproved],
			Rejected:   byStatus[leave.StatusRejected],
			Pending:    byStatus[leave.StatusPending],
		},
	}, nil
}
