package department

import (
	"time"

	"github.com/shaik-naseema17/employee-management-backend/internal/pkg/validator"
)

type CreateDepartmentRequest struct {
	Name        string `json:"dep_name"`
	Description string `json:"description"`
}

func (r *CreateDepartmentRequest) Validate() error {
	if validator.IsEmpty(r.Name) {
		return validator.Single("dep_name", "dep_name is required")
	}
	return nil
}

type UpdateDepartmentRequest struct {
	ID          string  `json:"-"`
	Name        *string `json:"dep_name,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (r *UpdateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id must be a valid id"})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "dep_name", Message: "dep_name must not be empty"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DepartmentResponse struct {
	ID            string    `json:"_id"`
	Name          string    `json:"dep_name"`
	Description   string    `json:"description"`
	EmployeeCount int64     `json:"employeeCount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func NewDepartmentResponse(d Department) DepartmentResponse {
	return DepartmentResponse{
		ID:            d.ID,
		Name:          d.Name,
		Description:   d.Description,
		EmployeeCount: d.EmployeeCount,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}
