package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	Create(ctx context.Context, newAttendance Attendance) (Attendance, error)
	GetByEmployeeID(ctx context.Context, employeeID int64) ([]Attendance, error)
	GetByEmployeeIDAndDate(ctx context.Context, employeeID int64, date time.Time) (Attendance, error)
	SetCheckOut(ctx context.Context, id int64, checkOut time.Time) (Attendance, error)
}
