package leave

import "time"

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

type LeaveType string

const (
	TypeSick   LeaveType = "Sick Leave"
	TypeCasual LeaveType = "Casual Leave"
	TypeAnnual LeaveType = "Annual Leave"
)

func (t LeaveType) IsValid() bool {
	return t == TypeSick || t == TypeCasual || t == TypeAnnual
}

type Leave struct {
	ID         string
	EmployeeID string
	LeaveType  LeaveType
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
	Status     Status
	AppliedAt  time.Time
	UpdatedAt  time.Time
}

// LeaveWithDetails is a leave joined with its employee, user and department.
type LeaveWithDetails struct {
	Leave
	EmployeeCode     string
	UserName         string
	UserProfileImage string
	DepartmentName   string
}
