package leave

import "errors"

var (
	ErrLeaveNotFound      = errors.New("leave request not found")
	ErrInvalidDateRange   = errors.New("end date must not be before start date")
	ErrAlreadyProcessed   = errors.New("leave request already processed")
	ErrApprovalNotAllowed = errors.New("only managers or hr can decide leave requests")
)
