package payroll

import "errors"

var (
	ErrPayrollNotFound = errors.New("payroll record not found")
	ErrAlreadyPaid     = errors.New("payroll record already paid")
)
