package auth

import (
	"context"

	"github.com/hrms-app/hrms-backend-go/internal/domain/user"
)

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (user.UserResponse, error)
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	CurrentUser(ctx context.Context, userID int64) (user.UserResponse, error)
}
