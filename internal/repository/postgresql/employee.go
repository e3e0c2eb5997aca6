package postgresql

import (
	"context"

	"github.com/hrms-app/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-app/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, user_id, first_name, last_name, phone, address, department, position,
	   hire_date, salary, created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var found employee.Employee
	err := row.Scan(
		&found.ID,
		&found.UserID,
		&found.FirstName,
		&found.LastName,
		&found.Phone,
		&found.Address,
		&found.Department,
		&found.Position,
		&found.HireDate,
		&found.Salary,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}
	return found, nil
}

// GetByUserID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByUserID(ctx context.Context, userID int64) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE user_id = $1
	`

	return scanEmployee(q.QueryRow(ctx, query, userID))
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE id = $1
	`

	return scanEmployee(q.QueryRow(ctx, query, id))
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (user_id, first_name, last_name, phone, address, department, position, hire_date, salary)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + employeeColumns + `
	`

	return scanEmployee(q.QueryRow(ctx, query,
		newEmployee.UserID,
		newEmployee.FirstName,
		newEmployee.LastName,
		newEmployee.Phone,
		newEmployee.Address,
		newEmployee.Department,
		newEmployee.Position,
		newEmployee.HireDate,
		newEmployee.Salary,
	))
}
