package jwt

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/hrms-app/hrms-backend-go/internal/domain/user"
)

var ErrInvalidToken = errors.New("invalid or expired token")

type Service interface {
	GenerateAccessToken(userID int64, email string, role user.Role) (token string, expiresAt int64, err error)
	ValidateAccessToken(tokenString string) (userID int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey     string
	accessExpires time.Duration
	tokenAuth     *jwtauth.JWTAuth
}

// NewJWTService signs HS256 access tokens that live for accessExpireMinutes.
// There is no skew allowance: a token whose expiry is not strictly in the
// future is already invalid, so a zero-TTL token is rejected immediately.
func NewJWTService(secretKey string, accessExpireMinutes int) Service {
	return &JWTService{
		secretKey:     secretKey,
		accessExpires: time.Duration(accessExpireMinutes) * time.Minute,
		tokenAuth:     jwtauth.New("HS256", []byte(secretKey), nil),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(userID int64, email string, role user.Role) (token string, expiresAt int64, err error) {
	now := time.Now()
	expiresAt = now.Add(j.accessExpires).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"sub":   strconv.FormatInt(userID, 10),
		"email": email,
		"role":  string(role),
		"type":  "access",
		"iat":   now.Unix(),
		"exp":   expiresAt,
	})
	return tokenString, expiresAt, err
}

// ValidateAccessToken checks signature integrity and expiry; any failure
// yields ErrInvalidToken, never a partial result.
func (j *JWTService) ValidateAccessToken(tokenString string) (int64, error) {
	token, err := jwtauth.VerifyToken(j.tokenAuth, tokenString)
	if err != nil {
		return 0, ErrInvalidToken
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != "access" {
		return 0, ErrInvalidToken
	}

	userID, err := strconv.ParseInt(token.Subject(), 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}

	return userID, nil
}
