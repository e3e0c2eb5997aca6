package jwt

import (
	"strings"
	"testing"

	"github.com/hrms-app/hrms-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func TestGenerateAndValidateAccessToken(t *testing.T) {
	svc := NewJWTService(testSecret, 30)

	token, expiresAt, err := svc.GenerateAccessToken(42, "user@example.com", user.RoleEmployee)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, int64(0))

	userID, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestValidateAccessToken_ZeroTTLRejectedImmediately(t *testing.T) {
	svc := NewJWTService(testSecret, 0)

	token, _, err := svc.GenerateAccessToken(42, "user@example.com", user.RoleEmployee)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateAccessToken_TamperedSignature(t *testing.T) {
	svc := NewJWTService(testSecret, 30)

	token, _, err := svc.GenerateAccessToken(42, "user@example.com", user.RoleEmployee)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "." + "AAAA" + parts[2][4:]

	_, err = svc.ValidateAccessToken(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateAccessToken_WrongSecret(t *testing.T) {
	issuer := NewJWTService(testSecret, 30)
	verifier := NewJWTService("a-completely-different-secret", 30)

	token, _, err := issuer.GenerateAccessToken(42, "user@example.com", user.RoleManager)
	require.NoError(t, err)

	_, err = verifier.ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateAccessToken_Garbage(t *testing.T) {
	svc := NewJWTService(testSecret, 30)

	_, err := svc.ValidateAccessToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ValidateAccessToken("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
