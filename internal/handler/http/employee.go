package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shaik-naseema17/employee-management-backend/internal/domain/employee"
	"github.com/shaik-naseema17/employee-management-backend/internal/handler/http/response"
	"github.com/shaik-naseema17/employee-management-backend/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// maxUploadSize is the in-memory budget for an employee form.
const maxUploadSize = 10 << 20

type EmployeeHandler interface {
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	ListEmployees(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	GetEmployeeByUser(w http.ResponseWriter, r *http.Request)
	UpdateEmployee(w http.ResponseWriter, r *http.Request)
	DeleteEmployee(w http.ResponseWriter, r *http.Request)
	ListEmployeesByDepartment(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
	// maxMemory is how much of a multipart form is kept in memory before
	// file parts spill to disk.
	maxMemory int64
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
		maxMemory:       maxUploadSize,
	}
}

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}

// decodeEmployeeForm reads the add-employee fields from a multipart form,
// including the optional "image" file.
func decodeEmployeeForm(r *http.Request, req *employee.CreateEmployeeRequest, maxMemory int64) error {
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		return err
	}

	req.Name = r.FormValue("name")
	req.Email = r.FormValue("email")
	req.EmployeeCode = r.FormValue("employeeId")
	req.DOB = r.FormValue("dob")
	req.Gender = r.FormValue("gender")
	req.MaritalStatus = r.FormValue("maritalStatus")
	req.Designation = r.FormValue("designation")
	req.DepartmentID = r.FormValue("department")
	req.Password = r.FormValue("password")
	req.Role = r.FormValue("role")

	if raw := strings.TrimSpace(r.FormValue("salary")); raw != "" {
		salary, err := decimal.NewFromString(raw)
		if err != nil {
			return validator.Single("salary", "salary must be a number")
		}
		req.Salary = salary
	}

	file, fileHeader, err := r.FormFile("image")
	if err != nil && !errors.Is(err, http.ErrMissingFile) {
		return err
	}
	if file != nil {
		req.Image = file
		req.ImageName = fileHeader.Filename
	}
	return nil
}

// CreateEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest

	if isMultipart(r) {
		if err := decodeEmployeeForm(r, &req, h.maxMemory); err != nil {
			var validationErrs validator.ValidationErrors
			if errors.As(err, &validationErrs) {
				response.HandleError(w, err)
				return
			}
			slog.Error("Failed to parse multipart form", "error", err)
			response.BadRequest(w, "Failed to parse form data", nil)
			return
		}
		if r.MultipartForm != nil {
			defer r.MultipartForm.RemoveAll()
		}
		if image, ok := req.Image.(io.Closer); ok {
			defer image.Close()
		}
	} else if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.employeeService.CreateEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee created", "employee_id", created.ID)
	response.SuccessWithMessage(w, "Employee created")
}

// ListEmployees implements EmployeeHandler
func (h *employeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeService.ListEmployees(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, response.Body{"employees": employees})
}

// GetEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	emp, err := h.employeeService.GetEmployee(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, response.Body{"employee": emp})
}

// GetEmployeeByUser implements EmployeeHandler
func (h *employeeHandlerImpl) GetEmployeeByUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	emp, err := h.employeeService.GetEmployeeByUserID(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, response.Body{"employee": emp})
}

// UpdateEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.employeeService.UpdateEmployee(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated")
}

// DeleteEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.employeeService.DeleteEmployee(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted")
}

// ListEmployeesByDepartment implements EmployeeHandler
func (h *employeeHandlerImpl) ListEmployeesByDepartment(w http.ResponseWriter, r *http.Request) {
	departmentID := chi.URLParam(r, "id")

	employees, err := h.employeeService.ListEmployeesByDepartment(r.Context(), departmentID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, response.Body{"employees": employees})
}
