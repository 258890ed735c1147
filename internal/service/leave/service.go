package leave

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shaik-naseema17/employee-management-backend/internal/domain/employee"
	"github.com/shaik-naseema17/employee-management-backend/internal/domain/leave"
	"github.com/shaik-naseema17/employee-management-backend/internal/pkg/validator"
	"github.com/shaik-naseema17/employee-management-backend/internal/service/file"
)

type LeaveServiceImpl struct {
	leaveRepo    leave.LeaveRepository
	employeeRepo employee.EmployeeRepository
	fileService  file.FileService
}

func NewLeaveService(leaveRepo leave.LeaveRepository, employeeRepo employee.EmployeeRepository, fileService file.FileService) leave.LeaveService {
	return &LeaveServiceImpl{
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
		fileService:  fileService,
	}
}

func mapLeaves(leaves []leave.Leave) []leave.LeaveResponse {
	responses := make([]leave.LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		responses = append(responses, leave.NewLeaveResponse(l))
	}
	return responses
}

// CreateLeave implements leave.LeaveService.
func (s *LeaveServiceImpl) CreateLeave(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	emp, err := s.employeeRepo.GetByUserID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveResponse{}, employee.ErrEmployeeNotFound
		}
		return leave.LeaveResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	start, end := req.Dates()
	created, err := s.leaveRepo.Create(ctx, leave.Leave{
		EmployeeID: emp.ID,
		LeaveType:  leave.LeaveType(req.LeaveType),
		StartDate:  start,
		EndDate:    end,
		Reason:     strings.TrimSpace(req.Reason),
		Status:     leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	slog.Info("Leave requested", "leave_id", created.ID, "employee_id", emp.ID, "type", created.LeaveType)
	return leave.NewLeaveResponse(created), nil
}

// GetLeaves implements leave.LeaveService.
func (s *LeaveServiceImpl) GetLeaves(ctx context.Context, id string) ([]leave.LeaveResponse, error) {
	if !validator.IsValidUUID(id) {
		return nil, validator.Single("id", "id must be a valid id")
	}

	leaves, err := s.leaveRepo.ListByEmployeeID(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(leaves) > 0 {
		return mapLeaves(leaves), nil
	}

	return s.GetLeavesByUserID(ctx, id)
}

// GetLeavesByUserID implements leave.LeaveService.
func (s *LeaveServiceImpl) GetLeavesByUserID(ctx context.Context, userID string) ([]leave.LeaveResponse, error) {
	if !validator.IsValidUUID(userID) {
		return nil, validator.Single("userId", "userId must be a valid id")
	}

	emp, err := s.employeeRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []leave.LeaveResponse{}, nil
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	leaves, err := s.leaveRepo.ListByEmployeeID(ctx, emp.ID)
	if err != nil {
		return nil, err
	}
	return mapLeaves(leaves), nil
}

// ListLeaves implements leave.LeaveService.
func (s *LeaveServiceImpl) ListLeaves(ctx context.Context) ([]leave.LeaveDetailResponse, error) {
	leaves, err := s.leaveRepo.ListWithDetails(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.LeaveDetailResponse, 0, len(leaves))
	for _, l := range leaves {
		// The list view only carries the employee name
		responses = append(responses, leave.NewLeaveDetailResponse(l, ""))
	}
	return responses, nil
}

// GetLeaveDetail implements leave.LeaveService.
func (s *LeaveServiceImpl) GetLeaveDetail(ctx context.Context, id string) (leave.LeaveDetailResponse, error) {
	if !validator.IsValidUUID(id) {
		return leave.LeaveDetailResponse{}, validator.Single("id", "id must be a valid id")
	}

	l, err := s.leaveRepo.GetDetailByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveDetailResponse{}, leave.ErrLeaveNotFound
		}
		return leave.LeaveDetailResponse{}, fmt.Errorf("failed to get leave: %w", err)
	}
	return leave.NewLeaveDetailResponse(l, s.fileService.PublicURL(ctx, l.UserProfileImage)), nil
}

// UpdateLeaveStatus implements leave.LeaveService.
func (s *LeaveServiceImpl) UpdateLeaveStatus(ctx context.Context, req leave.UpdateLeaveStatusRequest) error {
	if err := s.leaveRepo.UpdateStatus(ctx, req.ID, leave.Status(req.Status)); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.ErrLeaveNotFound
		}
		return fmt.Errorf("failed to update leave status: %w", err)
	}
	slog.Info("Leave status updated", "leave_id", req.ID, "status", req.Status)
	return nil
}
