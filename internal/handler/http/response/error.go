package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/shaik-naseema17/employee-management-backend/internal/domain/auth"
	"github.com/shaik-naseema17/employee-management-backend/internal/domain/department"
	"github.com/shaik-naseema17/employee-management-backend/internal/domain/employee"
	"github.com/shaik-naseema17/employee-management-backend/internal/domain/leave"
	"github.com/shaik-naseema17/employee-management-backend/internal/domain/salary"
	"github.com/shaik-naseema17/employee-management-backend/internal/domain/user"
	"github.com/shaik-naseema17/employee-management-backend/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User does not exist")
	case errors.Is(err, auth.ErrInvalidPassword):
		Unauthorized(w, "Invalid password")
	case errors.Is(err, auth.ErrWrongOldPassword):
		BadRequest(w, "Wrong old password", nil)
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrForbidden):
		Forbidden(w, "You are not allowed to perform this action")

	// User domain errors
	case errors.Is(err, user.ErrUserEmailExists):
		BadRequest(w, "User already registered in employee system", nil)
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		BadRequest(w, "Employee ID already exists", nil)
	case errors.Is(err, employee.ErrInvalidImage):
		BadRequest(w, "Profile image must be a jpg, jpeg or png file", nil)

	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave not found")
	case errors.Is(err, salary.ErrSalaryNotFound):
		NotFound(w, "Salary not found")

	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
