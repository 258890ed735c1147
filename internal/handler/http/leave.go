package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shaik-naseema17/employee-management-backend/internal/domain/auth"
	"github.com/shaik-naseema17/employee-management-backend/internal/domain/leave"
	"github.com/shaik-naseema17/employee-management-backend/internal/handler/http/response"
	"github.com/shaik-naseema17/employee-management-backend/internal/pkg/jwt"
)

type LeaveHandler interface {
	CreateLeave(w http.ResponseWriter, r *http.Request)
	ListLeaves(w http.ResponseWriter, r *http.Request)
	GetLeaves(w http.ResponseWriter, r *http.Request)
	GetLeavesByUser(w http.ResponseWriter, r *http.Request)
	GetLeaveDetail(w http.ResponseWriter, r *http.Request)
	UpdateLeaveStatus(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

// CreateLeave implements LeaveHandler. The applicant defaults to the caller.
func (l *LeaveHandlerImpl) CreateLeave(w http.ResponseWriter, r *http.Request) {
	claims, err := jwt.ClaimsFromContext(r.Context())
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var req leave.CreateLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateLeave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if req.UserID == "" {
		req.UserID = claims.UserID
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := l.leaveService.CreateLeave(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave applied", "leave_id", created.ID, "employee_id", created.EmployeeID)
	response.Success(w, response.Body{})
}

// ListLeaves implements LeaveHandler.
func (l *LeaveHandlerImpl) ListLeaves(w http.ResponseWriter, r *http.Request) {
	leaves, err := l.leaveService.ListLeaves(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, response.Body{"leaves": leaves})
}

// GetLeaves implements LeaveHandler.
func (l *LeaveHandlerImpl) GetLeaves(w http.ResponseWriter, r *http.Request) {
	leaves, err := l.leaveService.GetLeaves(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, response.Body{"leaves": leaves})
}

// GetLeavesByUser implements LeaveHandler.
func (l *LeaveHandlerImpl) GetLeavesByUser(w http.ResponseWriter, r *http.Request) {
	leaves, err := l.leaveService.GetLeavesByUserID(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, response.Body{"leaves": leaves})
}

// GetLeaveDetail implements LeaveHandler.
func (l *LeaveHandlerImpl) GetLeaveDetail(w http.ResponseWriter, r *http.Request) {
	detail, err := l.leaveService.GetLeaveDetail(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, response.Body{"leave": detail})
}

// UpdateLeaveStatus implements LeaveHandler.
func (l *LeaveHandlerImpl) UpdateLeaveStatus(w http.ResponseWriter, r *http.Request) {
	var req leave.UpdateLeaveStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateLeaveStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := l.leaveService.UpdateLeaveStatus(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave status updated", "leave_id", req.ID, "status", req.Status)
	response.Success(w, response.Body{})
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{
		leaveService: leaveService,
	}
}
