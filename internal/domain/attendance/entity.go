package attendance

import (
	"time"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
	StatusHalfDay Status = "half_day"
)

type Attendance struct {
	ID         int64
	EmployeeID int64
	Date       time.Time
	CheckIn    *time.Time
	CheckOut   *time.Time
	Status     Status
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}
