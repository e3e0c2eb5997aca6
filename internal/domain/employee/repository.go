package employee

import (
	"context"
)

type EmployeeRepository interface {
	GetByUserID(ctx context.Context, userID int64) (Employee, error)
	GetByID(ctx context.Context, id int64) (Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
}
