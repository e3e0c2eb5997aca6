package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hrms-app/hrms-backend-go/internal/domain/auth"
	"github.com/hrms-app/hrms-backend-go/internal/domain/user"
	"github.com/hrms-app/hrms-backend-go/internal/pkg/database"
	"github.com/hrms-app/hrms-backend-go/internal/pkg/jwt"
	"github.com/hrms-app/hrms-backend-go/internal/pkg/password"
	"github.com/hrms-app/hrms-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type AuthServiceImpl struct {
	userRepo   user.UserRepository
	jwtService jwt.Service
	runTx      func(ctx context.Context, fn func(txCtx context.Context) error) error
}

func NewAuthService(db *database.DB, userRepo user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		runTx: func(ctx context.Context, fn func(txCtx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

// Register implements auth.AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser := user.User{
		// Emails are stored lowercase so the unique index and lookups agree.
		Email:        strings.ToLower(req.Email),
		EmployeeID:   req.EmployeeID,
		PasswordHash: hashed,
		Role:         user.Role(req.Role),
		IsActive:     true,
	}

	var created user.User
	err = a.runTx(ctx, func(txCtx context.Context) error {
		created, err = a.userRepo.Create(txCtx, newUser)
		return err
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return user.UserResponse{}, user.ErrIdentifierExists
		}
		return user.UserResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	return user.ToResponse(created), nil
}

// getUserByIdentifier resolves a user by email first, then by employee id.
// Login accepts either identifier and the email path always wins, so the
// fallback order lives in one place.
func (a *AuthServiceImpl) getUserByIdentifier(ctx context.Context, identifier string) (user.User, error) {
	found, err := a.userRepo.GetByEmail(ctx, strings.ToLower(identifier))
	if err == nil {
		return found, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	found, err = a.userRepo.GetByEmployeeID(ctx, identifier)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, auth.ErrInvalidCredentials
		}
		return user.User{}, fmt.Errorf("failed to get user by employee id: %w", err)
	}
	return found, nil
}

// Login implements auth.AuthService. Every credential failure collapses into
// ErrInvalidCredentials so the response never reveals whether the identifier
// is registered.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := a.getUserByIdentifier(ctx, req.Identifier)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	if !userData.IsActive {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if !password.Verify(req.Password, userData.PasswordHash) {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := a.jwtService.GenerateAccessToken(userData.ID, userData.Email, userData.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
		User:        user.ToResponse(userData),
	}, nil
}

// CurrentUser implements auth.AuthService.
func (a *AuthServiceImpl) CurrentUser(ctx context.Context, userID int64) (user.UserResponse, error) {
	userData, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.UserResponse{}, user.ErrUserNotFound
		}
		return user.UserResponse{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user.ToResponse(userData), nil
}
