package employee

import (
	"io"
	"strings"
	"time"

	"github.com/shaik-naseema17/employee-management-backend/internal/domain/user"
	"github.com/shaik-naseema17/employee-management-backend/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	EmployeeCode  string          `json:"employeeId"`
	DOB           string          `json:"dob"`
	Gender        string          `json:"gender"`
	MaritalStatus string          `json:"maritalStatus"`
	Designation   string          `json:"designation"`
	DepartmentID  string          `json:"department"`
	Salary        decimal.Decimal `json:"salary"`
	Password      string          `json:"password"`
	Role          string          `json:"role"`

	// Optional profile image, set from the multipart "image" field
	Image     io.Reader `json:"-"`
	ImageName string    `json:"-"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	r.Gender = strings.ToLower(strings.TrimSpace(r.Gender))
	r.MaritalStatus = strings.ToLower(strings.TrimSpace(r.MaritalStatus))
	if validator.IsEmpty(r.Role) {
		r.Role = string(user.RoleEmployee)
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is required"})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email format"})
	}

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "employeeId is required"})
	}

	if r.DOB != "" {
		if dob, ok := validator.IsValidDate(r.DOB); !ok {
			errs = append(errs, validator.ValidationError{Field: "dob", Message: "dob must be in YYYY-MM-DD format"})
		} else if dob.After(time.Now()) {
			errs = append(errs, validator.ValidationError{Field: "dob", Message: "dob cannot be in the future"})
		}
	}

	if r.Gender != "" && !validator.IsInSlice(r.Gender, []string{string(Male), string(Female), string(Other)}) {
		errs = append(errs, validator.ValidationError{Field: "gender", Message: "gender must be male, female or other"})
	}

	if r.MaritalStatus != "" && !validator.IsInSlice(r.MaritalStatus, []string{string(Single), string(Married)}) {
		errs = append(errs, validator.ValidationError{Field: "maritalStatus", Message: "maritalStatus must be single or married"})
	}

	if validator.IsEmpty(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "department is required"})
	} else if !validator.IsValidUUID(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "department must be a valid id"})
	}

	if r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary must not be negative"})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password is required"})
	} else if len(r.Password) < 6 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password must be at least 6 characters"})
	}

	if !user.Role(r.Role).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be admin or employee"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ParsedDOB returns the date of birth, nil when it was not provided.
func (r *CreateEmployeeRequest) ParsedDOB() *time.Time {
	dob, ok := validator.IsValidDate(r.DOB)
	if !ok {
		return nil
	}
	return &dob
}

// UpdateEmployeeRequest carries a partial update; nil fields keep their value.
type UpdateEmployeeRequest struct {
	ID            string           `json:"-"`
	Name          *string          `json:"name,omitempty"`
	MaritalStatus *string          `json:"maritalStatus,omitempty"`
	Designation   *string          `json:"designation,omitempty"`
	DepartmentID  *string          `json:"department,omitempty"`
	Salary        *decimal.Decimal `json:"salary,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id must be a valid id"})
	}

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not be empty"})
	}

	if r.MaritalStatus != nil {
		status := strings.ToLower(strings.TrimSpace(*r.MaritalStatus))
		r.MaritalStatus = &status
		if !validator.IsInSlice(status, []string{string(Single), string(Married)}) {
			errs = append(errs, validator.ValidationError{Field: "maritalStatus", Message: "maritalStatus must be single or married"})
		}
	}

	if r.DepartmentID != nil && !validator.IsValidUUID(*r.DepartmentID) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "department must be a valid id"})
	}

	if r.Salary != nil && r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DepartmentRef is the department embedded in an employee response.
type DepartmentRef struct {
	ID          string `json:"_id"`
	Name        string `json:"dep_name"`
	Description string `json:"description,omitempty"`
}

type EmployeeResponse struct {
	ID            string          `json:"_id"`
	User          user.PublicUser `json:"userId"`
	EmployeeCode  string          `json:"employeeId"`
	DOB           *string         `json:"dob"`
	Gender        string          `json:"gender"`
	MaritalStatus string          `json:"maritalStatus"`
	Designation   string          `json:"designation"`
	Department    DepartmentRef   `json:"department"`
	Salary        float64         `json:"salary"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}
