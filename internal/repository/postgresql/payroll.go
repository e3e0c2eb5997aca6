package postgresql

import (
	"context"
	"time"

	"github.com/hrms-app/hrms-backend-go/internal/domain/payroll"
	"github.com/hrms-app/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

const payrollColumns = `id, employee_id, month, year, basic_salary, allowances, deductions, net_salary,
	   payment_date, status, created_at, updated_at`

func scanPayroll(row pgx.Row) (payroll.Payroll, error) {
	var found payroll.Payroll
	err := row.Scan(
		&found.ID,
		&found.EmployeeID,
		&found.Month,
		&found.Year,
		&found.BasicSalary,
		&found.Allowances,
		&found.Deductions,
		&found.NetSalary,
		&found.PaymentDate,
		&found.Status,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		return payroll.Payroll{}, err
	}
	return found, nil
}

// Create implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Create(ctx context.Context, newPayroll payroll.Payroll) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payrolls (employee_id, month, year, basic_salary, allowances, deductions, net_salary, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + payrollColumns + `
	`

	return scanPayroll(q.QueryRow(ctx, query,
		newPayroll.EmployeeID,
		newPayroll.Month,
		newPayroll.Year,
		newPayroll.BasicSalary,
		newPayroll.Allowances,
		newPayroll.Deductions,
		newPayroll.NetSalary,
		newPayroll.Status,
	))
}

// GetByID implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetByID(ctx context.Context, id int64) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `
		FROM payrolls
		WHERE id = $1
	`

	return scanPayroll(q.QueryRow(ctx, query, id))
}

// GetByEmployeeID implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID int64) ([]payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `
		FROM payrolls
		WHERE employee_id = $1
		ORDER BY year DESC, month DESC, id DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []payroll.Payroll
	for rows.Next() {
		record, err := scanPayroll(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// MarkPaid implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) MarkPaid(ctx context.Context, id int64, paymentDate time.Time) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payrolls
		SET status = $1, payment_date = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING ` + payrollColumns + `
	`

	return scanPayroll(q.QueryRow(ctx, query, payroll.StatusPaid, paymentDate, id))
}
