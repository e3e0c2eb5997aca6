package postgresql

import (
	"context"
	"time"

	"github.com/hrms-app/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-app/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

const leaveColumns = `id, employee_id, leave_type, start_date, end_date, days_requested, status,
	   approved_by, approved_at, created_at, updated_at`

func scanLeave(row pgx.Row) (leave.Leave, error) {
	var found leave.Leave
	err := row.Scan(
		&found.ID,
		&found.EmployeeID,
		&found.LeaveType,
		&found.StartDate,
		&found.EndDate,
		&found.DaysRequested,
		&found.Status,
		&found.ApprovedBy,
		&found.ApprovedAt,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		return leave.Leave{}, err
	}
	return found, nil
}

// Create implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, newLeave leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leaves (employee_id, leave_type, start_date, end_date, days_requested, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + leaveColumns + `
	`

	return scanLeave(q.QueryRow(ctx, query,
		newLeave.EmployeeID,
		newLeave.LeaveType,
		newLeave.StartDate,
		newLeave.EndDate,
		newLeave.DaysRequested,
		newLeave.Status,
	))
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id int64) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leaves
		WHERE id = $1
	`

	return scanLeave(q.QueryRow(ctx, query, id))
}

// GetByEmployeeID implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID int64) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leaves
		WHERE employee_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []leave.Leave
	for rows.Next() {
		record, err := scanLeave(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// UpdateStatus implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) UpdateStatus(ctx context.Context, id int64, status leave.Status, approvedBy int64, approvedAt time.Time) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leaves
		SET status = $1, approved_by = $2, approved_at = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING ` + leaveColumns + `
	`

	return scanLeave(q.QueryRow(ctx, query, status, approvedBy, approvedAt, id))
}
