package response

import (
	"errors"
	"net/http"

	"github.com/hrms-app/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-app/hrms-backend-go/internal/domain/auth"
	"github.com/hrms-app/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-app/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-app/hrms-backend-go/internal/domain/payroll"
	"github.com/hrms-app/hrms-backend-go/internal/domain/user"
	"github.com/hrms-app/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Anything unrecognized is
// reported as a generic failure; the caller logs the detail server-side.
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// User domain errors
	case errors.Is(err, user.ErrIdentifierExists):
		BadRequest(w, "Email or Employee ID already registered", nil)
	case errors.Is(err, user.ErrInsufficientRole):
		Forbidden(w, "Insufficient role for this operation")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrProfileExists):
		BadRequest(w, "Employee profile already exists", nil)
	case errors.Is(err, employee.ErrProfileNotFound):
		NotFound(w, "Employee profile not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		BadRequest(w, "Already checked in today", nil)
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		BadRequest(w, "Already checked out today", nil)
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "No check-in found for today", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "End date must not be before start date", nil)
	case errors.Is(err, leave.ErrAlreadyProcessed):
		BadRequest(w, "Leave request already processed", nil)
	case errors.Is(err, leave.ErrApprovalNotAllowed):
		Forbidden(w, "Only managers or hr can decide leave requests")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrAlreadyPaid):
		BadRequest(w, "Payroll record already paid", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
