package leave

import "context"

type LeaveService interface {
	CreateLeave(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	// GetLeaves treats id as an employee id and falls back to a user id
	// when the employee has no leaves.
	GetLeaves(ctx context.Context, id string) ([]LeaveResponse, error)
	GetLeavesByUserID(ctx context.Context, userID string) ([]LeaveResponse, error)
	ListLeaves(ctx context.Context) ([]LeaveDetailResponse, error)
	GetLeaveDetail(ctx context.Context, id string) (LeaveDetailResponse, error)
	UpdateLeaveStatus(ctx context.Context, req UpdateLeaveStatusRequest) error
}
