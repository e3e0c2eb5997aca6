package employee

import (
	"context"
	"time"

	"github.com/hrms-app/hrms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type EmployeeService interface {
	CreateProfile(ctx context.Context, userID int64, req CreateEmployeeRequest) (EmployeeResponse, error)
	MyProfile(ctx context.Context, userID int64) (EmployeeResponse, error)
}

type CreateEmployeeRequest struct {
	FirstName  string           `json:"first_name"`
	LastName   string           `json:"last_name"`
	Phone      *string          `json:"phone"`
	Address    *string          `json:"address"`
	Department *string          `json:"department"`
	Position   *string          `json:"position"`
	HireDate   *string          `json:"hire_date"` // YYYY-MM-DD
	Salary     *decimal.Decimal `json:"salary"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	} else if len(r.FirstName) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name must not exceed 100 characters",
		})
	}

	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	} else if len(r.LastName) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name must not exceed 100 characters",
		})
	}

	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "hire_date",
				Message: "hire_date must be a valid date in YYYY-MM-DD format",
			})
		}
	}

	if r.Salary != nil && r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// HireDateTime returns the parsed hire date, or nil when absent. Validate
// must have been called first.
func (r *CreateEmployeeRequest) HireDateTime() *time.Time {
	if r.HireDate == nil {
		return nil
	}
	t, ok := validator.IsValidDate(*r.HireDate)
	if !ok {
		return nil
	}
	return &t
}

type EmployeeResponse struct {
	ID         int64            `json:"id"`
	UserID     int64            `json:"user_id"`
	FirstName  string           `json:"first_name"`
	LastName   string           `json:"last_name"`
	Phone      *string          `json:"phone,omitempty"`
	Address    *string          `json:"address,omitempty"`
	Department *string          `json:"department,omitempty"`
	Position   *string          `json:"position,omitempty"`
	HireDate   *time.Time       `json:"hire_date,omitempty"`
	Salary     *decimal.Decimal `json:"salary,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		UserID:     e.UserID,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		Phone:      e.Phone,
		Address:    e.Address,
		Department: e.Department,
		Position:   e.Position,
		HireDate:   e.HireDate,
		Salary:     e.Salary,
		CreatedAt:  e.CreatedAt,
	}
}
