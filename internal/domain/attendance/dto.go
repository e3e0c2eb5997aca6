package attendance

import (
	"context"
	"time"

	"github.com/hrms-app/hrms-backend-go/internal/pkg/validator"
)

type AttendanceService interface {
	CheckIn(ctx context.Context, userID int64, req CheckInRequest) (AttendanceResponse, error)
	CheckOut(ctx context.Context, userID int64) (AttendanceResponse, error)
	MyAttendance(ctx context.Context, userID int64) ([]AttendanceResponse, error)
}

type CheckInRequest struct {
	Notes *string `json:"notes"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Notes != nil && len(*r.Notes) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "notes",
			Message: "notes must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID         int64      `json:"id"`
	EmployeeID int64      `json:"employee_id"`
	Date       string     `json:"date"`
	CheckIn    *time.Time `json:"check_in,omitempty"`
	CheckOut   *time.Time `json:"check_out,omitempty"`
	Status     Status     `json:"status"`
	Notes      *string    `json:"notes,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func ToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       a.Date.Format("2006-01-02"),
		CheckIn:    a.CheckIn,
		CheckOut:   a.CheckOut,
		Status:     a.Status,
		Notes:      a.Notes,
		CreatedAt:  a.CreatedAt,
	}
}
