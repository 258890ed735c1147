package leave

import (
	"time"

	"github.com/shaik-naseema17/employee-management-backend/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	UserID    string `json:"userId"`
	LeaveType string `json:"leaveType"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Reason    string `json:"reason"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.UserID) {
		errs = append(errs, validator.ValidationError{Field: "userId", Message: "userId must be a valid id"})
	}

	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{Field: "leaveType", Message: "leaveType is required"})
	} else if !LeaveType(r.LeaveType).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "leaveType", Message: "leaveType must be Sick Leave, Casual Leave or Annual Leave"})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "startDate", Message: "startDate must be in YYYY-MM-DD format"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "endDate", Message: "endDate must be in YYYY-MM-DD format"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "endDate", Message: "endDate must not be before startDate"})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Dates returns the parsed start and end dates. Call after Validate.
func (r *CreateLeaveRequest) Dates() (time.Time, time.Time) {
	start, _ := validator.IsValidDate(r.StartDate)
	end, _ := validator.IsValidDate(r.EndDate)
	return start, end
}

type UpdateLeaveStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *UpdateLeaveStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id must be a valid id"})
	}
	if !Status(r.Status).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be Pending, Approved or Rejected"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveResponse struct {
	ID         string    `json:"_id"`
	EmployeeID string    `json:"employeeId"`
	LeaveType  LeaveType `json:"leaveType"`
	StartDate  string    `json:"startDate"`
	EndDate    string    `json:"endDate"`
	Reason     string    `json:"reason"`
	Status     Status    `json:"status"`
	AppliedAt  time.Time `json:"appliedAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func NewLeaveResponse(l Leave) LeaveResponse {
	return LeaveResponse{
		ID:         l.ID,
		EmployeeID: l.EmployeeID,
		LeaveType:  l.LeaveType,
		StartDate:  l.StartDate.Format(validator.DateLayout),
		EndDate:    l.EndDate.Format(validator.DateLayout),
		Reason:     l.Reason,
		Status:     l.Status,
		AppliedAt:  l.AppliedAt,
		UpdatedAt:  l.UpdatedAt,
	}
}

// LeaveEmployee is the employee embedded in a detailed leave response.
type LeaveEmployee struct {
	ID           string       `json:"_id"`
	EmployeeCode string       `json:"employeeId"`
	Department   LeaveDeptRef `json:"department"`
	User         LeaveUserRef `json:"userId"`
}

type LeaveDeptRef struct {
	Name string `json:"dep_name"`
}

type LeaveUserRef struct {
	Name         string `json:"name"`
	ProfileImage string `json:"profileImage,omitempty"`
}

type LeaveDetailResponse struct {
	ID        string        `json:"_id"`
	Employee  LeaveEmployee `json:"employeeId"`
	LeaveType LeaveType     `json:"leaveType"`
	StartDate string        `json:"startDate"`
	EndDate   string        `json:"endDate"`
	Reason    string        `json:"reason"`
	Status    Status        `json:"status"`
	AppliedAt time.Time     `json:"appliedAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// NewLeaveDetailResponse builds the populated view. imageURL is the resolved
// profile image of the requesting employee.
func NewLeaveDetailResponse(l LeaveWithDetails, imageURL string) LeaveDetailResponse {
	return LeaveDetailResponse{
		ID: l.ID,
		Employee: LeaveEmployee{
			ID:           l.EmployeeID,
			EmployeeCode: l.EmployeeCode,
			Department:   LeaveDeptRef{Name: l.DepartmentName},
			User:         LeaveUserRef{Name: l.UserName, ProfileImage: imageURL},
		},
		LeaveType: l.LeaveType,
		StartDate: l.StartDate.Format(validator.DateLayout),
		EndDate:   l.EndDate.Format(validator.DateLayout),
		Reason:    l.Reason,
		Status:    l.Status,
		AppliedAt: l.AppliedAt,
		UpdatedAt: l.UpdatedAt,
	}
}
