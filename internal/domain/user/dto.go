package user

import "time"

// UserResponse carries the public user fields; the password hash never
// leaves the service layer.
type UserResponse struct {
	ID         int64      `json:"id"`
	Email      string     `json:"email"`
	EmployeeID string     `json:"employee_id"`
	Role       Role       `json:"role"`
	IsActive   bool       `json:"is_active"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		EmployeeID: u.EmployeeID,
		Role:       u.Role,
		IsActive:   u.IsActive,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}
