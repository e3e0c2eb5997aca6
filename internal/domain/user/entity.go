package user

import "time"

type Role string

const (
	RoleEmployee Role = "employee" // Regular employee
	RoleManager  Role = "manager"  // Can approve leave requests
	RoleHR       Role = "hr"       // Full record administration
)

func ValidRoles() []string {
	return []string{string(RoleEmployee), string(RoleManager), string(RoleHR)}
}

type User struct {
	ID           int64
	Email        string
	EmployeeID   string
	PasswordHash string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// IsHR checks if user administers HR records
func (u *User) IsHR() bool {
	return u.Role == RoleHR
}

// IsManager checks if user is manager or HR
func (u *User) IsManager() bool {
	return u.Role == RoleManager || u.Role == RoleHR
}

// CanApprove checks if user can approve leave requests
func (u *User) CanApprove() bool {
	return u.IsManager()
}
