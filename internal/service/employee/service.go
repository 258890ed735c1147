package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shaik-naseema17/employee-management-backend/internal/domain/department"
	"github.com/shaik-naseema17/employee-management-backend/internal/domain/employee"
	"github.com/shaik-naseema17/employee-management-backend/internal/domain/user"
	"github.com/shaik-naseema17/employee-management-backend/internal/pkg/database"
	"github.com/shaik-naseema17/employee-management-backend/internal/pkg/validator"
	"github.com/shaik-naseema17/employee-management-backend/internal/repository/postgresql"
	"github.com/shaik-naseema17/employee-management-backend/internal/service/auth"
	"github.com/shaik-naseema17/employee-management-backend/internal/service/file"
)

// txRunner runs fn inside a transaction whose context repositories join.
type txRunner func(ctx context.Context, fn func(txCtx context.Context) error) error

type EmployeeServiceImpl struct {
	withTx         txRunner
	employeeRepo   employee.EmployeeRepository
	userRepo       user.UserRepository
	departmentRepo department.DepartmentRepository
	fileService    file.FileService
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	userRepo user.UserRepository,
	departmentRepo department.DepartmentRepository,
	fileService file.FileService,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		withTx: func(ctx context.Context, fn func(txCtx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
		employeeRepo:   employeeRepo,
		userRepo:       userRepo,
		departmentRepo: departmentRepo,
		fileService:    fileService,
	}
}

// mapEmployeeToResponse maps EmployeeWithDetails to EmployeeResponse
func (s *EmployeeServiceImpl) mapEmployeeToResponse(ctx context.Context, emp employee.EmployeeWithDetails) employee.EmployeeResponse {
	var dobStr *string
	if emp.DOB != nil {
		str := emp.DOB.Format(validator.DateLayout)
		dobStr = &str
	}

	return employee.EmployeeResponse{
		ID:            emp.ID,
		User:          emp.User.Public(s.fileService.PublicURL(ctx, emp.User.ProfileImage)),
		EmployeeCode:  emp.EmployeeCode,
		DOB:           dobStr,
		Gender:        string(emp.Gender),
		MaritalStatus: string(emp.MaritalStatus),
		Designation:   emp.Designation,
		Department: employee.DepartmentRef{
			ID:          emp.DepartmentID,
			Name:        emp.DepartmentName,
			Description: emp.DepartmentDescription,
		},
		Salary:    emp.Salary.InexactFloat64(),
		CreatedAt: emp.CreatedAt,
		UpdatedAt: emp.UpdatedAt,
	}
}

func (s *EmployeeServiceImpl) mapEmployees(ctx context.Context, employees []employee.EmployeeWithDetails) []employee.EmployeeResponse {
	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, s.mapEmployeeToResponse(ctx, emp))
	}
	return responses
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return employee.EmployeeResponse{}, user.ErrUserEmailExists
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var imagePath string
	if req.Image != nil {
		imagePath, err = s.fileService.UploadProfileImage(ctx, req.Image, req.ImageName)
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
	}

	var employeeID string
	err = s.withTx(ctx, func(txCtx context.Context) error {
		deptExists, err := s.departmentRepo.ExistsByID(txCtx, req.DepartmentID)
		if err != nil {
			return fmt.Errorf("failed to check department: %w", err)
		}
		if !deptExists {
			return department.ErrDepartmentNotFound
		}

		createdUser, err := s.userRepo.Create(txCtx, user.User{
			Name:         strings.TrimSpace(req.Name),
			Email:        req.Email,
			PasswordHash: passwordHash,
			Role:         user.Role(req.Role),
			ProfileImage: imagePath,
		})
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		created, err := s.employeeRepo.Create(txCtx, employee.Employee{
			UserID:        createdUser.ID,
			EmployeeCode:  strings.TrimSpace(req.EmployeeCode),
			DOB:           req.ParsedDOB(),
			Gender:        employee.Gender(req.Gender),
			MaritalStatus: employee.MaritalStatus(req.MaritalStatus),
			Designation:   strings.TrimSpace(req.Designation),
			DepartmentID:  req.DepartmentID,
			Salary:        req.Salary,
		})
		if err != nil {
			return fmt.Errorf("failed to create employee: %w", err)
		}

		employeeID = created.ID
		return nil
	})
	if err != nil {
		if imagePath != "" {
			if delErr := s.fileService.DeleteFile(ctx, imagePath); delErr != nil {
				slog.Warn("Failed to remove profile image after failed create", "path", imagePath, "error", delErr)
			}
		}
		return employee.EmployeeResponse{}, err
	}

	slog.Info("Employee created", "employee_id", employeeID, "employee_code", req.EmployeeCode)

	created, err := s.employeeRepo.GetDetailByID(ctx, employeeID)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to load created employee: %w", err)
	}
	return s.mapEmployeeToResponse(ctx, created), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	return s.mapEmployees(ctx, employees), nil
}

// ListEmployeesByDepartment implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployeesByDepartment(ctx context.Context, departmentID string) ([]employee.EmployeeResponse, error) {
	if !validator.IsValidUUID(departmentID) {
		return nil, validator.Single("id", "department id must be a valid id")
	}

	employees, err := s.employeeRepo.List(ctx, &departmentID)
	if err != nil {
		return nil, err
	}
	return s.mapEmployees(ctx, employees), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (*employee.EmployeeResponse, error) {
	if !validator.IsValidUUID(id) {
		return nil, validator.Single("id", "id must be a valid id")
	}

	emp, err := s.employeeRepo.GetDetailByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		emp, err = s.employeeRepo.GetDetailByUserID(ctx, id)
	}
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	resp := s.mapEmployeeToResponse(ctx, emp)
	return &resp, nil
}

// GetEmployeeByUserID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployeeByUserID(ctx context.Context, userID string) (*employee.EmployeeResponse, error) {
	if !validator.IsValidUUID(userID) {
		return nil, validator.Single("userId", "userId must be a valid id")
	}

	emp, err := s.employeeRepo.GetDetailByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	resp := s.mapEmployeeToResponse(ctx, emp)
	return &resp, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	return s.withTx(ctx, func(txCtx context.Context) error {
		emp, err := s.employeeRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return employee.ErrEmployeeNotFound
			}
			return fmt.Errorf("failed to get employee: %w", err)
		}

		if _, err := s.userRepo.GetByID(txCtx, emp.UserID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return user.ErrUserNotFound
			}
			return fmt.Errorf("failed to get user: %w", err)
		}

		if req.Name != nil {
			if err := s.userRepo.UpdateName(txCtx, emp.UserID, strings.TrimSpace(*req.Name)); err != nil {
				return fmt.Errorf("failed to update user name: %w", err)
			}
		}

		if req.DepartmentID != nil {
			exists, err := s.departmentRepo.ExistsByID(txCtx, *req.DepartmentID)
			if err != nil {
				return fmt.Errorf("failed to check department: %w", err)
			}
			if !exists {
				return department.ErrDepartmentNotFound
			}
		}

		if err := s.employeeRepo.Update(txCtx, req); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return employee.ErrEmployeeNotFound
			}
			return fmt.Errorf("failed to update employee: %w", err)
		}
		return nil
	})
}

// DeleteEmployee implements employee.EmployeeService. Removing the user
// cascades to the employee, its leaves and its salaries.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return validator.Single("id", "id must be a valid id")
	}

	emp, err := s.employeeRepo.GetDetailByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to get employee: %w", err)
	}

	if err := s.userRepo.Delete(ctx, emp.UserID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	if err := s.fileService.DeleteFile(ctx, emp.User.ProfileImage); err != nil {
		slog.Warn("Failed to remove profile image", "path", emp.User.ProfileImage, "error", err)
	}

	slog.Info("Employee deleted", "employee_id", id, "user_id", emp.UserID)
	return nil
}

// SweepOrphans implements employee.EmployeeService.
func (s *EmployeeServiceImpl) SweepOrphans(ctx context.Context) (int64, error) {
	var removed []string
	err := s.withTx(ctx, func(txCtx context.Context) error {
		var err error
		removed, err = s.employeeRepo.DeleteOrphans(txCtx)
		if err != nil {
			return err
		}
		return s.employeeRepo.ValidateUserReference(txCtx)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to sweep orphaned employees: %w", err)
	}
	return int64(len(removed)), nil
}
