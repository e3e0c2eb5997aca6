package auth

import (
	"context"
	"testing"

	"github.com/hrms-app/hrms-backend-go/internal/domain/auth"
	"github.com/hrms-app/hrms-backend-go/internal/domain/user"
	"github.com/hrms-app/hrms-backend-go/internal/pkg/jwt"
	"github.com/hrms-app/hrms-backend-go/internal/pkg/password"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

// fakeUserRepository backs the service with an in-memory user set so the
// lookup and credential logic can be tested without a database.
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
	for _, u := range f.users {
		if u.Email == newUser.Email || u.EmployeeID == newUser.EmployeeID {
			return user.User{}, &pgconn.PgError{Code: "23505"}
		}
	}
	newUser.ID = int64(len(f.users) + 1)
	f.users = append(f.users, newUser)
	return newUser, nil
}

func newTestService(t *testing.T, users ...user.User) auth.AuthService {
	t.Helper()
	return &AuthServiceImpl{
		userRepo:   &fakeUserRepository{users: users},
		jwtService: jwt.NewJWTService(testSecret, 30),
		runTx: func(ctx context.Context, fn func(txCtx context.Context) error) error {
			return fn(ctx)
		},
	}
}

func testUser(t *testing.T, id int64, email, employeeID, plaintext string) user.User {
	t.Helper()
	hashed, err := password.Hash(plaintext)
	require.NoError(t, err)
	return user.User{
		ID:           id,
		Email:        email,
		EmployeeID:   employeeID,
		PasswordHash: hashed,
		Role:         user.RoleEmployee,
		IsActive:     true,
	}
}

func TestAuthService_Register(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.Register(context.Background(), auth.RegisterRequest{
		Email:      "A@X.com",
		EmployeeID: "EMP1",
		Password:   "password123",
		Role:       "employee",
	})

	require.NoError(t, err)
	// Stored lowercase regardless of input casing.
	assert.Equal(t, "a@x.com", resp.Email)
	assert.Equal(t, "EMP1", resp.EmployeeID)
	assert.Equal(t, user.RoleEmployee, resp.Role)
	assert.True(t, resp.IsActive)
}

func TestAuthService_Register_DuplicateIdentifier(t *testing.T) {
	svc := newTestService(t, testUser(t, 1, "a@x.com", "EMP1", "password123"))

	_, err := svc.Register(context.Background(), auth.RegisterRequest{
		Email:      "a@x.com",
		EmployeeID: "EMP2",
		Password:   "password123",
		Role:       "employee",
	})
	assert.ErrorIs(t, err, user.ErrIdentifierExists)

	_, err = svc.Register(context.Background(), auth.RegisterRequest{
		Email:      "b@x.com",
		EmployeeID: "EMP1",
		Password:   "password123",
		Role:       "employee",
	})
	assert.ErrorIs(t, err, user.ErrIdentifierExists)
}

func TestAuthService_Register_InvalidPayload(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Register(context.Background(), auth.RegisterRequest{
		Email:      "not-an-email",
		EmployeeID: "EMP1",
		Password:   "short",
		Role:       "superuser",
	})

	assert.Error(t, err)
	assert.NotErrorIs(t, err, user.ErrIdentifierExists)
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Register(context.Background(), auth.RegisterRequest{
		Email:      "a@x.com",
		EmployeeID: "EMP1",
		Password:   "password123",
		Role:       "hr",
	})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{Identifier: "EMP1", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, user.RoleHR, resp.User.Role)
}

func TestAuthService_Login_WithEmail(t *testing.T) {
	svc := newTestService(t, testUser(t, 1, "a@x.com", "EMP1", "password123"))

	resp, err := svc.Login(context.Background(), auth.LoginRequest{Identifier: "a@x.com", Password: "password123"})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, "a@x.com", resp.User.Email)
	assert.Equal(t, "EMP1", resp.User.EmployeeID)
}

func TestAuthService_Login_WithEmployeeID(t *testing.T) {
	svc := newTestService(t, testUser(t, 1, "a@x.com", "EMP1", "password123"))

	resp, err := svc.Login(context.Background(), auth.LoginRequest{Identifier: "EMP1", Password: "password123"})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, int64(1), resp.User.ID)
}

func TestAuthService_Login_EmailUppercased(t *testing.T) {
	svc := newTestService(t, testUser(t, 1, "a@x.com", "EMP1", "password123"))

	resp, err := svc.Login(context.Background(), auth.LoginRequest{Identifier: "A@X.COM", Password: "password123"})

	require.NoError(t, err)
	assert.Equal(t, "a@x.com", resp.User.Email)
}

func TestAuthService_Login_EmailLookupWinsOverEmployeeID(t *testing.T) {
	// One user's employee id collides with another user's email-shaped
	// identifier; the email path must be tried first.
	first := testUser(t, 1, "shared@x.com", "EMP1", "firstpass123")
	second := testUser(t, 2, "b@x.com", "shared@x.com", "secondpass123")
	svc := newTestService(t, first, second)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{Identifier: "shared@x.com", Password: "firstpass123"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.User.ID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := newTestService(t, testUser(t, 1, "a@x.com", "EMP1", "password123"))

	_, err := svc.Login(context.Background(), auth.LoginRequest{Identifier: "a@x.com", Password: "wrongpassword"})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownIdentifier(t *testing.T) {
	svc := newTestService(t, testUser(t, 1, "a@x.com", "EMP1", "password123"))

	_, err := svc.Login(context.Background(), auth.LoginRequest{Identifier: "nobody@x.com", Password: "password123"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), auth.LoginRequest{Identifier: "EMP999", Password: "password123"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_InactiveUser(t *testing.T) {
	inactive := testUser(t, 1, "a@x.com", "EMP1", "password123")
	inactive.IsActive = false
	svc := newTestService(t, inactive)

	_, err := svc.Login(context.Background(), auth.LoginRequest{Identifier: "a@x.com", Password: "password123"})

	// Inactive accounts fail the same way as bad credentials.
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_TokenRoundTrip(t *testing.T) {
	jwtSvc := jwt.NewJWTService(testSecret, 30)
	svc := NewAuthService(nil, &fakeUserRepository{users: []user.User{testUser(t, 7, "a@x.com", "EMP1", "password123")}}, jwtSvc)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{Identifier: "EMP1", Password: "password123"})
	require.NoError(t, err)

	userID, err := jwtSvc.ValidateAccessToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(7), userID)
}

func TestAuthService_CurrentUser(t *testing.T) {
	svc := newTestService(t, testUser(t, 1, "a@x.com", "EMP1", "password123"))

	resp, err := svc.CurrentUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", resp.Email)

	_, err = svc.CurrentUser(context.Background(), 999)
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
