package cron

import (
	"context"
	"log/slog"
	"time"
)

// OrphanSweeper removes employee records whose user account no longer exists.
type OrphanSweeper interface {
	SweepOrphans(ctx context.Context) (int64, error)
}

// RegisterMaintenanceJobs schedules the orphan sweep. An interval of zero
// leaves the sweep to the explicit maintenance endpoint.
func RegisterMaintenanceJobs(s *Scheduler, sweeper OrphanSweeper, interval time.Duration) {
	s.AddJob("orphan_employee_sweep", interval, func(ctx context.Context) error {
		removed, err := sweeper.SweepOrphans(ctx)
		if err != nil {
			return err
		}
		if removed > 0 {
			slog.Warn("Removed orphaned employee records", "count", removed)
		}
		return nil
	})
}
