package postgresql

import (
	"context"
	"time"

	"github.com/hrms-app/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-app/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `id, employee_id, date, check_in, check_out, status, notes, created_at, updated_at`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var found attendance.Attendance
	err := row.Scan(
		&found.ID,
		&found.EmployeeID,
		&found.Date,
		&found.CheckIn,
		&found.CheckOut,
		&found.Status,
		&found.Notes,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, err
	}
	return found, nil
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (employee_id, date, check_in, check_out, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + attendanceColumns + `
	`

	return scanAttendance(q.QueryRow(ctx, query,
		newAttendance.EmployeeID,
		newAttendance.Date,
		newAttendance.CheckIn,
		newAttendance.CheckOut,
		newAttendance.Status,
		newAttendance.Notes,
	))
}

// GetByEmployeeID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID int64) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE employee_id = $1
		ORDER BY date DESC, id DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		record, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// GetByEmployeeIDAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeIDAndDate(ctx context.Context, employeeID int64, date time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	// No schema-level uniqueness on (employee_id, date); take the latest row.
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE employee_id = $1 AND date = $2
		ORDER BY id DESC
		LIMIT 1
	`

	return scanAttendance(q.QueryRow(ctx, query, employeeID, date))
}

// SetCheckOut implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) SetCheckOut(ctx context.Context, id int64, checkOut time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET check_out = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + attendanceColumns + `
	`

	return scanAttendance(q.QueryRow(ctx, query, checkOut, id))
}
