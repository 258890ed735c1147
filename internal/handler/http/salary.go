package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shaik-naseema17/employee-management-backend/internal/domain/auth"
	"github.com/shaik-naseema17/employee-management-backend/internal/domain/salary"
	"github.com/shaik-naseema17/employee-management-backend/internal/domain/user"
	"github.com/shaik-naseema17/employee-management-backend/internal/handler/http/response"
	"github.com/shaik-naseema17/employee-management-backend/internal/pkg/jwt"
)

type SalaryHandler interface {
	CreateSalary(w http.ResponseWriter, r *http.Request)
	GetSalaries(w http.ResponseWriter, r *http.Request)
	GetSalariesByUser(w http.ResponseWriter, r *http.Request)
	DownloadPayslip(w http.ResponseWriter, r *http.Request)
}

type SalaryHandlerImpl struct {
	salaryService salary.SalaryService
}

// CreateSalary implements SalaryHandler.
func (s *SalaryHandlerImpl) CreateSalary(w http.ResponseWriter, r *http.Request) {
	var req salary.CreateSalaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateSalary decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := s.salaryService.CreateSalary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, response.Body{"salary": created})
}

// salaryViewer identifies the caller from the verified token.
func salaryViewer(r *http.Request) (salary.Viewer, error) {
	claims, err := jwt.ClaimsFromContext(r.Context())
	if err != nil {
		return salary.Viewer{}, auth.ErrInvalidToken
	}
	return salary.Viewer{UserID: claims.UserID, Admin: claims.Role == user.RoleAdmin}, nil
}

// GetSalaries implements SalaryHandler.
func (s *SalaryHandlerImpl) GetSalaries(w http.ResponseWriter, r *http.Request) {
	viewer, err := salaryViewer(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	salaries, err := s.salaryService.GetSalaries(r.Context(), viewer, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, response.Body{"salary": salaries})
}

// GetSalariesByUser implements SalaryHandler.
func (s *SalaryHandlerImpl) GetSalariesByUser(w http.ResponseWriter, r *http.Request) {
	viewer, err := salaryViewer(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	salaries, err := s.salaryService.GetSalariesByUserID(r.Context(), viewer, chi.URLParam(r, "userId"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, response.Body{"salary": salaries})
}

// DownloadPayslip implements SalaryHandler.
func (s *SalaryHandlerImpl) DownloadPayslip(w http.ResponseWriter, r *http.Request) {
	viewer, err := salaryViewer(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slip, err := s.salaryService.GeneratePayslip(r.Context(), viewer, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.PDF(w, slip.Filename, slip.Content)
}

func NewSalaryHandler(salaryService salary.SalaryService) SalaryHandler {
	return &SalaryHandlerImpl{
		salaryService: salaryService,
	}
}
