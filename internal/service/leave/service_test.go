package leave

import (
	"context"
	"testing"
	"time"

	"github.com/hrms-app/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-app/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-app/hrms-backend-go/internal/domain/user"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepository struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepository) GetByUserID(ctx context.Context, userID int64) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.UserID == userID {
			return emp, nil
		}
	}
	return employee.Employee{}, pgx.ErrNoRows
}

func (f *fakeEmployeeRepository) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, pgx.ErrNoRows
}

func (f *fakeEmployeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	newEmployee.ID = int64(len(f.employees) + 1)
	f.employees = append(f.employees, newEmployee)
	return newEmployee, nil
}

type fakeUserRepository struct {
	users []user.User
}

func (f *fakeUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, pgx.ErrNoRows
}

func (f *fakeUserRepository) GetByEmployeeID(ctx context.Context, employeeID string) (user.User, error) {
	for _, u := range f.users {
		if u.EmployeeID == employeeID {
			return u, nil
		}
	}
	return user.User{}, pgx.ErrNoRows
}

func (f *fakeUserRepository) GetByID(ctx context.Context, id int64) (user.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, pgx.ErrNoRows
}

func (f *fakeUserRepository) Create(ctx context.Context, newUser user.User) (user.User, error) {
	newUser.ID = int64(len(f.users) + 1)
	f.users = append(f.users, newUser)
	return newUser, nil
}

type fakeLeaveRepository struct {
	leaves []leave.Leave
}

func (f *fakeLeaveRepository) Create(ctx context.Context, newLeave leave.Leave) (leave.Leave, error) {
	newLeave.ID = int64(len(f.leaves) + 1)
	f.leaves = append(f.leaves, newLeave)
	return newLeave, nil
}

func (f *fakeLeaveRepository) GetByID(ctx context.Context, id int64) (leave.Leave, error) {
	for _, l := range f.leaves {
		if l.ID == id {
			return l, nil
		}
	}
	return leave.Leave{}, pgx.ErrNoRows
}

func (f *fakeLeaveRepository) GetByEmployeeID(ctx context.Context, employeeID int64) ([]leave.Leave, error) {
	var out []leave.Leave
	for _, l := range f.leaves {
		if l.EmployeeID == employeeID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepository) UpdateStatus(ctx context.Context, id int64, status leave.Status, approvedBy int64, approvedAt time.Time) (leave.Leave, error) {
	for i, l := range f.leaves {
		if l.ID == id {
			f.leaves[i].Status = status
			f.leaves[i].ApprovedBy = &approvedBy
			f.leaves[i].ApprovedAt = &approvedAt
			return f.leaves[i], nil
		}
	}
	return leave.Leave{}, pgx.ErrNoRows
}

// passthroughTx runs the callback without a real transaction.
func passthroughTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

func TestLeaveService_Request_CountsDaysInclusive(t *testing.T) {
	employeeRepo := &fakeEmployeeRepository{employees: []employee.Employee{{ID: 10, UserID: 1}}}
	leaveRepo := &fakeLeaveRepository{}
	svc := &LeaveServiceImpl{
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
		userRepo:     &fakeUserRepository{},
		now:          time.Now,
		runTx:        passthroughTx,
	}

	resp, err := svc.Request(context.Background(), 1, leave.CreateLeaveRequest{
		LeaveType: "annual",
		StartDate: "2026-03-09",
		EndDate:   "2026-03-13",
	})

	require.NoError(t, err)
	assert.Equal(t, 5, resp.DaysRequested)
	assert.Equal(t, leave.StatusPending, resp.Status)
	assert.Nil(t, resp.ApprovedBy)
}

func TestLeaveService_Request_InvalidDateRange(t *testing.T) {
	employeeRepo := &fakeEmployeeRepository{employees: []employee.Employee{{ID: 10, UserID: 1}}}
	svc := NewLeaveService(nil, &fakeLeaveRepository{}, employeeRepo, &fakeUserRepository{})

	_, err := svc.Request(context.Background(), 1, leave.CreateLeaveRequest{
		LeaveType: "annual",
		StartDate: "2026-03-15",
		EndDate:   "2026-03-10",
	})

	assert.ErrorIs(t, err, leave.ErrInvalidDateRange)
}

func TestLeaveService_Request_NoProfile(t *testing.T) {
	svc := NewLeaveService(nil, &fakeLeaveRepository{}, &fakeEmployeeRepository{}, &fakeUserRepository{})

	_, err := svc.Request(context.Background(), 1, leave.CreateLeaveRequest{
		LeaveType: "sick",
		StartDate: "2026-03-10",
		EndDate:   "2026-03-11",
	})

	assert.ErrorIs(t, err, employee.ErrProfileNotFound)
}

func TestLeaveService_Request_UnknownType(t *testing.T) {
	employeeRepo := &fakeEmployeeRepository{employees: []employee.Employee{{ID: 10, UserID: 1}}}
	svc := NewLeaveService(nil, &fakeLeaveRepository{}, employeeRepo, &fakeUserRepository{})

	_, err := svc.Request(context.Background(), 1, leave.CreateLeaveRequest{
		LeaveType: "sabbatical",
		StartDate: "2026-03-10",
		EndDate:   "2026-03-11",
	})

	assert.Error(t, err)
}

func TestLeaveService_Decide_ApproverMustBeManagerOrHR(t *testing.T) {
	userRepo := &fakeUserRepository{users: []user.User{
		{ID: 1, Role: user.RoleEmployee, IsActive: true},
	}}
	leaveRepo := &fakeLeaveRepository{leaves: []leave.Leave{
		{ID: 5, EmployeeID: 10, Status: leave.StatusPending},
	}}
	svc := NewLeaveService(nil, leaveRepo, &fakeEmployeeRepository{}, userRepo)

	_, err := svc.Decide(context.Background(), 1, 5, true)

	assert.ErrorIs(t, err, leave.ErrApprovalNotAllowed)
}

func TestLeaveService_Decide_ApproveAndReject(t *testing.T) {
	manager := user.User{ID: 2, Role: user.RoleManager, IsActive: true}

	for _, approve := range []bool{true, false} {
		userRepo := &fakeUserRepository{users: []user.User{manager}}
		leaveRepo := &fakeLeaveRepository{leaves: []leave.Leave{
			{ID: 5, EmployeeID: 10, Status: leave.StatusPending},
		}}
		svc := &LeaveServiceImpl{
			leaveRepo:    leaveRepo,
			employeeRepo: &fakeEmployeeRepository{},
			userRepo:     userRepo,
			now:          func() time.Time { return time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC) },
			runTx:        passthroughTx,
		}

		resp, err := svc.Decide(context.Background(), 2, 5, approve)

		require.NoError(t, err)
		if approve {
			assert.Equal(t, leave.StatusApproved, resp.Status)
		} else {
			assert.Equal(t, leave.StatusRejected, resp.Status)
		}
		require.NotNil(t, resp.ApprovedBy)
		assert.Equal(t, int64(2), *resp.ApprovedBy)
	}
}

func TestLeaveService_Decide_AlreadyProcessed(t *testing.T) {
	userRepo := &fakeUserRepository{users: []user.User{
		{ID: 2, Role: user.RoleHR, IsActive: true},
	}}
	leaveRepo := &fakeLeaveRepository{leaves: []leave.Leave{
		{ID: 5, EmployeeID: 10, Status: leave.StatusApproved},
	}}
	svc := NewLeaveService(nil, leaveRepo, &fakeEmployeeRepository{}, userRepo)

	_, err := svc.Decide(context.Background(), 2, 5, false)

	assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)
}

func TestLeaveService_Decide_LeaveNotFound(t *testing.T) {
	userRepo := &fakeUserRepository{users: []user.User{
		{ID: 2, Role: user.RoleHR, IsActive: true},
	}}
	svc := NewLeaveService(nil, &fakeLeaveRepository{}, &fakeEmployeeRepository{}, userRepo)

	_, err := svc.Decide(context.Background(), 2, 99, true)

	assert.ErrorIs(t, err, leave.ErrLeaveNotFound)
}

func TestLeaveService_MyLeaves(t *testing.T) {
	employeeRepo := &fakeEmployeeRepository{employees: []employee.Employee{{ID: 10, UserID: 1}}}
	leaveRepo := &fakeLeaveRepository{leaves: []leave.Leave{
		{ID: 1, EmployeeID: 10, LeaveType: leave.TypeAnnual, Status: leave.StatusPending,
			StartDate: time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC),
			DaysRequested: 3},
		{ID: 2, EmployeeID: 77, LeaveType: leave.TypeSick, Status: leave.StatusPending},
	}}
	svc := NewLeaveService(nil, leaveRepo, employeeRepo, &fakeUserRepository{})

	records, err := svc.MyLeaves(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2026-03-10", records[0].StartDate)
	assert.Equal(t, 3, records[0].DaysRequested)
}
