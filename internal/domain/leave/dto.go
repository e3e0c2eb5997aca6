package leave

import (
	"context"
	"time"

	"github.com/hrms-app/hrms-backend-go/internal/pkg/validator"
)

type LeaveService interface {
	Request(ctx context.Context, userID int64, req CreateLeaveRequest) (LeaveResponse, error)
	MyLeaves(ctx context.Context, userID int64) ([]LeaveResponse, error)
	Decide(ctx context.Context, approverID int64, leaveID int64, approve bool) (LeaveResponse, error)
}

type CreateLeaveRequest struct {
	LeaveType string `json:"leave_type"`
	StartDate string `json:"start_date"` // YYYY-MM-DD
	EndDate   string `json:"end_date"`   // YYYY-MM-DD
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type is required",
		})
	} else if !validator.IsInSlice(r.LeaveType, ValidTypes()) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of: sick, casual, annual, maternity",
		})
	}

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid date in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveResponse struct {
	ID            int64      `json:"id"`
	EmployeeID    int64      `json:"employee_id"`
	LeaveType     Type       `json:"leave_type"`
	StartDate     string     `json:"start_date"`
	EndDate       string     `json:"end_date"`
	DaysRequested int        `json:"days_requested"`
	Status        Status     `json:"status"`
	ApprovedBy    *int64     `json:"approved_by,omitempty"`
	ApprovedAt    *time.Time `json:"approved_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func ToResponse(l Leave) LeaveResponse {
	return LeaveResponse{
		ID:            l.ID,
		EmployeeID:    l.EmployeeID,
		LeaveType:     l.LeaveType,
		StartDate:     l.StartDate.Format("2006-01-02"),
		EndDate:       l.EndDate.Format("2006-01-02"),
		DaysRequested: l.DaysRequested,
		Status:        l.Status,
		ApprovedBy:    l.ApprovedBy,
		ApprovedAt:    l.ApprovedAt,
		CreatedAt:     l.CreatedAt,
	}
}
