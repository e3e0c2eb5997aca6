package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hrms-app/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-app/hrms-backend-go/internal/domain/payroll"
	"github.com/hrms-app/hrms-backend-go/internal/pkg/database"
	"github.com/hrms-app/hrms-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type PayrollServiceImpl struct {
	payrollRepo  payroll.PayrollRepository
	employeeRepo employee.EmployeeRepository
	now          func() time.Time
	runTx        func(ctx context.Context, fn func(txCtx context.Context) error) error
}

func NewPayrollService(db *database.DB, payrollRepo payroll.PayrollRepository, employeeRepo employee.EmployeeRepository) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
		now:          time.Now,
		runTx: func(ctx context.Context, fn func(txCtx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

// Generate implements payroll.PayrollService. The net salary is derived from
// basic + allowances - deductions, never taken from the request.
func (s *PayrollServiceImpl) Generate(ctx context.Context, req payroll.GeneratePayrollRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	_, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollResponse{}, employee.ErrProfileNotFound
		}
		return payroll.PayrollResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	newPayroll := payroll.Payroll{
		EmployeeID:  req.EmployeeID,
		Month:       req.Month,
		Year:        req.Year,
		BasicSalary: req.BasicSalary,
		Allowances:  req.Allowances,
		Deductions:  req.Deductions,
		NetSalary:   payroll.ComputeNet(req.BasicSalary, req.Allowances, req.Deductions),
		Status:      payroll.StatusPending,
	}

	var created payroll.Payroll
	err = s.runTx(ctx, func(txCtx context.Context) error {
		created, err = s.payrollRepo.Create(txCtx, newPayroll)
		return err
	})
	if err != nil {
		return payroll.PayrollResponse{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return payroll.ToResponse(created), nil
}

// MyPayrolls implements payroll.PayrollService.
func (s *PayrollServiceImpl) MyPayrolls(ctx context.Context, userID int64) ([]payroll.PayrollResponse, error) {
	emp, err := s.employeeRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get employee profile: %w", err)
	}

	records, err := s.payrollRepo.GetByEmployeeID(ctx, emp.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}

	responses := make([]payroll.PayrollResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, payroll.ToResponse(record))
	}
	return responses, nil
}

// MarkPaid implements payroll.PayrollService.
func (s *PayrollServiceImpl) MarkPaid(ctx context.Context, payrollID int64) (payroll.PayrollResponse, error) {
	record, err := s.payrollRepo.GetByID(ctx, payrollID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollResponse{}, payroll.ErrPayrollNotFound
		}
		return payroll.PayrollResponse{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	if record.Status == payroll.StatusPaid {
		return payroll.PayrollResponse{}, payroll.ErrAlreadyPaid
	}

	var updated payroll.Payroll
	err = s.runTx(ctx, func(txCtx context.Context) error {
		updated, err = s.payrollRepo.MarkPaid(txCtx, record.ID, s.now())
		return err
	})
	if err != nil {
		return payroll.PayrollResponse{}, fmt.Errorf("failed to mark payroll paid: %w", err)
	}

	return payroll.ToResponse(updated), nil
}
