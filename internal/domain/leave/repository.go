package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	Create(ctx context.Context, newLeave Leave) (Leave, error)
	GetByID(ctx context.Context, id int64) (Leave, error)
	GetByEmployeeID(ctx context.Context, employeeID int64) ([]Leave, error)
	UpdateStatus(ctx context.Context, id int64, status Status, approvedBy int64, approvedAt time.Time) (Leave, error)
}
