package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is the profile record owned by exactly one user. Registration and
// profile creation are separate steps, so a user without a profile is valid.
type Employee struct {
	ID         int64
	UserID     int64
	FirstName  string
	LastName   string
	Phone      *string
	Address    *string
	Department *string
	Position   *string
	HireDate   *time.Time
	Salary     *decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}
