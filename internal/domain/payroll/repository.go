package payroll

import (
	"context"
	"time"
)

type PayrollRepository interface {
	Create(ctx context.Context, newPayroll Payroll) (Payroll, error)
	GetByID(ctx context.Context, id int64) (Payroll, error)
	GetByEmployeeID(ctx context.Context, employeeID int64) ([]Payroll, error)
	MarkPaid(ctx context.Context, id int64, paymentDate time.Time) (Payroll, error)
}
