package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shaik-naseema17/employee-management-backend/internal/domain/leave"
	"github.com/shaik-naseema17/employee-management-backend/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

const leaveColumns = `l.id, l.employee_id, l.leave_type, l.start_date, l.end_date, l.reason, l.status, l.applied_at, l.updated_at`

const leaveDetailSelect = `
	SELECT ` + leaveColumns + `, e.employee_code, u.name, u.profile_image, d.dep_name
	FROM leaves l
	JOIN employees e ON e.id = l.employee_id
	JOIN users u ON u.id = e.user_id
	JOIN departments d ON d.id = e.department_id
`

func leaveScanTargets(l *leave.Leave) []interface{} {
	return []interface{}{
		&l.ID,
		&l.EmployeeID,
		&l.LeaveType,
		&l.StartDate,
		&l.EndDate,
		&l.Reason,
		&l.Status,
		&l.AppliedAt,
		&l.UpdatedAt,
	}
}

func scanLeaveDetail(row pgx.Row) (leave.LeaveWithDetails, error) {
	var d leave.LeaveWithDetails
	targets := append(leaveScanTargets(&d.Leave), &d.EmployeeCode, &d.UserName, &d.UserProfileImage, &d.DepartmentName)
	err := row.Scan(targets...)
	return d, err
}

// Create implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, newLeave leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leaves AS l (employee_id, leave_type, start_date, end_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + leaveColumns

	var created leave.Leave
	err := q.QueryRow(ctx, query,
		newLeave.EmployeeID,
		newLeave.LeaveType,
		newLeave.StartDate,
		newLeave.EndDate,
		newLeave.Reason,
		newLeave.Status,
	).Scan(leaveScanTargets(&created)...)
	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to create leave: %w", err)
	}
	return created, nil
}

// GetDetailByID implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetDetailByID(ctx context.Context, id string) (leave.LeaveWithDetails, error) {
	q := GetQuerier(ctx, r.db)
	return scanLeaveDetail(q.QueryRow(ctx, leaveDetailSelect+` WHERE l.id = $1`, id))
}

// ListByEmployeeID implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListByEmployeeID(ctx context.Context, employeeID string) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+leaveColumns+` FROM leaves l WHERE l.employee_id = $1 ORDER BY l.applied_at DESC, l.id`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}
	defer rows.Close()

	leaves := make([]leave.Leave, 0)
	for rows.Next() {
		var l leave.Leave
		if err := rows.Scan(leaveScanTargets(&l)...); err != nil {
			return nil, fmt.Errorf("failed to scan leave: %w", err)
		}
		leaves = append(leaves, l)
	}
	return leaves, rows.Err()
}

// ListWithDetails implements leave.LeaveRepository. Leaves whose employee,
// user or department is missing are excluded by the inner joins.
func (r *leaveRepositoryImpl) ListWithDetails(ctx context.Context) ([]leave.LeaveWithDetails, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, leaveDetailSelect+` ORDER BY l.applied_at DESC, l.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}
	defer rows.Close()

	leaves := make([]leave.LeaveWithDetails, 0)
	for rows.Next() {
		d, err := scanLeaveDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave: %w", err)
		}
		leaves = append(leaves, d)
	}
	return leaves, rows.Err()
}

// UpdateStatus implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.Status) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE leaves SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
