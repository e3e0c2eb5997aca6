package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hrms-app/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-app/hrms-backend-go/internal/domain/auth"
	"github.com/hrms-app/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-app/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-app/hrms-backend-go/internal/domain/payroll"
	"github.com/hrms-app/hrms-backend-go/internal/domain/user"
	"github.com/hrms-app/hrms-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"identifier exists", user.ErrIdentifierExists, http.StatusBadRequest, "BAD_REQUEST"},
		{"insufficient role", user.ErrInsufficientRole, http.StatusForbidden, "FORBIDDEN"},
		{"user not found", user.ErrUserNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"profile exists", employee.ErrProfileExists, http.StatusBadRequest, "BAD_REQUEST"},
		{"profile not found", employee.ErrProfileNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"already checked in", attendance.ErrAlreadyCheckedIn, http.StatusBadRequest, "BAD_REQUEST"},
		{"already checked out", attendance.ErrAlreadyCheckedOut, http.StatusBadRequest, "BAD_REQUEST"},
		{"not checked in", attendance.ErrNotCheckedIn, http.StatusBadRequest, "BAD_REQUEST"},
		{"leave not found", leave.ErrLeaveNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"invalid date range", leave.ErrInvalidDateRange, http.StatusBadRequest, "BAD_REQUEST"},
		{"already processed", leave.ErrAlreadyProcessed, http.StatusBadRequest, "BAD_REQUEST"},
		{"approval not allowed", leave.ErrApprovalNotAllowed, http.StatusForbidden, "FORBIDDEN"},
		{"payroll not found", payroll.ErrPayrollNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"already paid", payroll.ErrAlreadyPaid, http.StatusBadRequest, "BAD_REQUEST"},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
		})
	}
}

func TestHandleError_ValidationErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, validator.ValidationErrors{
		{Field: "email", Message: "email is required"},
		{Field: "password", Message: "password is required"},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Equal(t, "email is required", body.Error.Details["email"])
	assert.Equal(t, "password is required", body.Error.Details["password"])
}

func TestHandleError_UnknownErrorHidesDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, errors.New("pq: connection refused at 10.0.0.3"))

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.NotContains(t, body.Error.Message, "10.0.0.3")
}

func TestUnauthorized_SetsChallengeHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	Unauthorized(rec, "missing token")

	assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
}
