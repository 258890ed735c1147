package http

import (
	"log/slog"
	"net/http"

	"github.com/shaik-naseema17/employee-management-backend/internal/handler/http/response"
	"github.com/shaik-naseema17/employee-management-backend/internal/pkg/cron"
)

type MaintenanceHandler interface {
	SweepOrphans(w http.ResponseWriter, r *http.Request)
}

type maintenanceHandlerImpl struct {
	sweeper cron.OrphanSweeper
}

func NewMaintenanceHandler(sweeper cron.OrphanSweeper) MaintenanceHandler {
	return &maintenanceHandlerImpl{sweeper: sweeper}
}

// SweepOrphans handles POST /maintenance/orphans/sweep
func (h *maintenanceHandlerImpl) SweepOrphans(w http.ResponseWriter, r *http.Request) {
	removed, err := h.sweeper.SweepOrphans(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Orphan sweep finished", "removed", removed)
	response.Success(w, response.Body{"removed": removed})
}
