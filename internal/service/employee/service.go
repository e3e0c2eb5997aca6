package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/hrms-app/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-app/hrms-backend-go/internal/pkg/database"
	"github.com/hrms-app/hrms-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	runTx        func(ctx context.Context, fn func(txCtx context.Context) error) error
}

func NewEmployeeService(db *database.DB, employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		runTx: func(ctx context.Context, fn func(txCtx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

// CreateProfile implements employee.EmployeeService. The one-to-one rule is
// checked here as well as by the unique constraint on user_id, so a friendly
// error comes back without relying on constraint wording.
func (s *EmployeeServiceImpl) CreateProfile(ctx context.Context, userID int64, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	_, err := s.employeeRepo.GetByUserID(ctx, userID)
	if err == nil {
		return employee.EmployeeResponse{}, employee.ErrProfileExists
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check existing profile: %w", err)
	}

	newEmployee := employee.Employee{
		UserID:     userID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Phone:      req.Phone,
		Address:    req.Address,
		Department: req.Department,
		Position:   req.Position,
		HireDate:   req.HireDateTime(),
		Salary:     req.Salary,
	}

	var created employee.Employee
	err = s.runTx(ctx, func(txCtx context.Context) error {
		created, err = s.employeeRepo.Create(txCtx, newEmployee)
		return err
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation on user_id
			return employee.EmployeeResponse{}, employee.ErrProfileExists
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee profile: %w", err)
	}

	return employee.ToResponse(created), nil
}

// MyProfile implements employee.EmployeeService.
func (s *EmployeeServiceImpl) MyProfile(ctx context.Context, userID int64) (employee.EmployeeResponse, error) {
	found, err := s.employeeRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, employee.ErrProfileNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee profile: %w", err)
	}
	return employee.ToResponse(found), nil
}
