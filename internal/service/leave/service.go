package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hrms-app/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-app/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-app/hrms-backend-go/internal/domain/user"
	"github.com/hrms-app/hrms-backend-go/internal/pkg/database"
	"github.com/hrms-app/hrms-backend-go/internal/pkg/validator"
	"github.com/hrms-app/hrms-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type LeaveServiceImpl struct {
	leaveRepo    leave.LeaveRepository
	employeeRepo employee.EmployeeRepository
	userRepo     user.UserRepository
	now          func() time.Time
	runTx        func(ctx context.Context, fn func(txCtx context.Context) error) error
}

func NewLeaveService(db *database.DB, leaveRepo leave.LeaveRepository, employeeRepo employee.EmployeeRepository, userRepo user.UserRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
		userRepo:     userRepo,
		now:          time.Now,
		runTx: func(ctx context.Context, fn func(txCtx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

func (s *LeaveServiceImpl) employeeForUser(ctx context.Context, userID int64) (employee.Employee, error) {
	emp, err := s.employeeRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrProfileNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee profile: %w", err)
	}
	return emp, nil
}

// Request implements leave.LeaveService. The requested day count is computed
// inclusively from the date range.
func (s *LeaveServiceImpl) Request(ctx context.Context, userID int64, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	emp, err := s.employeeForUser(ctx, userID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	startDate, _ := validator.IsValidDate(req.StartDate)
	endDate, _ := validator.IsValidDate(req.EndDate)
	if endDate.Before(startDate) {
		return leave.LeaveResponse{}, leave.ErrInvalidDateRange
	}

	newLeave := leave.Leave{
		EmployeeID:    emp.ID,
		LeaveType:     leave.Type(req.LeaveType),
		StartDate:     startDate,
		EndDate:       endDate,
		DaysRequested: leave.DaysBetween(startDate, endDate),
		Status:        leave.StatusPending,
	}

	var created leave.Leave
	err = s.runTx(ctx, func(txCtx context.Context) error {
		created, err = s.leaveRepo.Create(txCtx, newLeave)
		return err
	})
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return leave.ToResponse(created), nil
}

// MyLeaves implements leave.LeaveService.
func (s *LeaveServiceImpl) MyLeaves(ctx context.Context, userID int64) ([]leave.LeaveResponse, error) {
	emp, err := s.employeeForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	records, err := s.leaveRepo.GetByEmployeeID(ctx, emp.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, leave.ToResponse(record))
	}
	return responses, nil
}

// Decide implements leave.LeaveService. Only managers and hr decide, only
// pending requests can be decided, and the deciding user is recorded.
func (s *LeaveServiceImpl) Decide(ctx context.Context, approverID int64, leaveID int64, approve bool) (leave.LeaveResponse, error) {
	approver, err := s.userRepo.GetByID(ctx, approverID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveResponse{}, user.ErrUserNotFound
		}
		return leave.LeaveResponse{}, fmt.Errorf("failed to get approver: %w", err)
	}
	if !approver.CanApprove() {
		return leave.LeaveResponse{}, leave.ErrApprovalNotAllowed
	}

	record, err := s.leaveRepo.GetByID(ctx, leaveID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveResponse{}, leave.ErrLeaveNotFound
		}
		return leave.LeaveResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	if record.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrAlreadyProcessed
	}

	status := leave.StatusRejected
	if approve {
		status = leave.StatusApproved
	}

	var updated leave.Leave
	err = s.runTx(ctx, func(txCtx context.Context) error {
		updated, err = s.leaveRepo.UpdateStatus(txCtx, record.ID, status, approver.ID, s.now())
		return err
	})
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to update leave status: %w", err)
	}

	return leave.ToResponse(updated), nil
}
