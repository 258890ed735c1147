package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetDetailByID(ctx context.Context, id string) (EmployeeWithDetails, error)
	GetDetailByUserID(ctx context.Context, userID string) (EmployeeWithDetails, error)
	GetByUserID(ctx context.Context, userID string) (Employee, error)
	List(ctx context.Context, departmentID *string) ([]EmployeeWithDetails, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) error
	// DeleteOrphans removes employees whose user no longer exists and
	// returns the ids it removed.
	DeleteOrphans(ctx context.Context) ([]string, error)
	// ValidateUserReference marks the user foreign key as validated once
	// no orphans remain.
	ValidateUserReference(ctx context.Context) error
}
