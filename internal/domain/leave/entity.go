package leave

import (
	"time"
)

type Type string

const (
	TypeSick      Type = "sick"
	TypeCasual    Type = "casual"
	TypeAnnual    Type = "annual"
	TypeMaternity Type = "maternity"
)

func ValidTypes() []string {
	return []string{string(TypeSick), string(TypeCasual), string(TypeAnnual), string(TypeMaternity)}
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Leave is a request for time off. ApprovedBy references the deciding user
// and stays nil while the request is pending.
type Leave struct {
	ID            int64
	EmployeeID    int64
	LeaveType     Type
	StartDate     time.Time
	EndDate       time.Time
	DaysRequested int
	Status        Status
	ApprovedBy    *int64
	ApprovedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

// DaysBetween counts the requested days, inclusive of both endpoints.
func DaysBetween(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}
