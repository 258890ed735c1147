package http

import (
	"net/http"

	"github.com/shaik-naseema17/employee-management-backend/internal/domain/dashboard"
	"github.com/shaik-naseema17/employee-management-backend/internal/handler/http/response"
)

type DashboardHandler interface {
	// GetSummary returns head counts, this month's payroll and leave totals
	GetSummary(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// GetSummary handles GET /dashboard/summary
func (h *dashboardHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dashboardService.GetSummary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, response.Body{
		"totalEmployees":   summary.TotalEmployees,
		"totalDepartments": summary.TotalDepartments,
		"totalSalary":      summary.TotalSalary,
		"leaveSummary":     summary.LeaveSummary,
	})
}
