package leave

import "context"

type LeaveRepository interface {
	Create(ctx context.Context, newLeave Leave) (Leave, error)
	GetDetailByID(ctx context.Context, id string) (LeaveWithDetails, error)
	ListByEmployeeID(ctx context.Context, employeeID string) ([]Leave, error)
	ListWithDetails(ctx context.Context) ([]LeaveWithDetails, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
}
