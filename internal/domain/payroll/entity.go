package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

type Payroll struct {
	ID          int64
	EmployeeID  int64
	Month       int
	Year        int
	BasicSalary decimal.Decimal
	Allowances  decimal.Decimal
	Deductions  decimal.Decimal
	NetSalary   decimal.Decimal
	PaymentDate *time.Time
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// ComputeNet returns basic + allowances - deductions. The stored net salary
// is always derived this way rather than taken from the client.
func ComputeNet(basic, allowances, deductions decimal.Decimal) decimal.Decimal {
	return basic.Add(allowances).Sub(deductions)
}
