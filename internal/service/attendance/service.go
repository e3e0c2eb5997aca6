package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hrms-app/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-app/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-app/hrms-backend-go/internal/pkg/database"
	"github.com/hrms-app/hrms-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

// Check-ins after this time of day are recorded as late.
const lateThreshold = 9*time.Hour + 15*time.Minute

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	now            func() time.Time
	runTx          func(ctx context.Context, fn func(txCtx context.Context) error) error
}

func NewAttendanceService(db *database.DB, attendanceRepo attendance.AttendanceRepository, employeeRepo employee.EmployeeRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		now:            time.Now,
		runTx: func(ctx context.Context, fn func(txCtx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

// checkInStatus classifies a check-in time against the late threshold in the
// check-in's own location.
func checkInStatus(now time.Time) attendance.Status {
	sinceMidnight := now.Sub(time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()))
	if sinceMidnight > lateThreshold {
		return attendance.StatusLate
	}
	return attendance.StatusPresent
}

func (s *AttendanceServiceImpl) employeeForUser(ctx context.Context, userID int64) (employee.Employee, error) {
	emp, err := s.employeeRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrProfileNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee profile: %w", err)
	}
	return emp, nil
}

// CheckIn implements attendance.AttendanceService. The schema allows several
// rows per (employee, date); double check-ins are guarded here instead.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, userID int64, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := s.employeeForUser(ctx, userID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	_, err = s.attendanceRepo.GetByEmployeeIDAndDate(ctx, emp.ID, today)
	if err == nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check existing attendance: %w", err)
	}

	newAttendance := attendance.Attendance{
		EmployeeID: emp.ID,
		Date:       today,
		CheckIn:    &now,
		Status:     checkInStatus(now),
		Notes:      req.Notes,
	}

	var created attendance.Attendance
	err = s.runTx(ctx, func(txCtx context.Context) error {
		created, err = s.attendanceRepo.Create(txCtx, newAttendance)
		return err
	})
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return attendance.ToResponse(created), nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, userID int64) (attendance.AttendanceResponse, error) {
	emp, err := s.employeeForUser(ctx, userID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	record, err := s.attendanceRepo.GetByEmployeeIDAndDate(ctx, emp.ID, today)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	if record.CheckOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	var updated attendance.Attendance
	err = s.runTx(ctx, func(txCtx context.Context) error {
		updated, err = s.attendanceRepo.SetCheckOut(txCtx, record.ID, now)
		return err
	})
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to set check-out: %w", err)
	}

	return attendance.ToResponse(updated), nil
}

// MyAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MyAttendance(ctx context.Context, userID int64) ([]attendance.AttendanceResponse, error) {
	emp, err := s.employeeForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.GetByEmployeeID(ctx, emp.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, attendance.ToResponse(record))
	}
	return responses, nil
}
