package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shaik-naseema17/employee-management-backend/internal/domain/auth"
	"github.com/shaik-naseema17/employee-management-backend/internal/domain/employee"
	"github.com/shaik-naseema17/employee-management-backend/internal/domain/leave"
	"github.com/shaik-naseema17/employee-management-backend/internal/domain/user"
	"github.com/shaik-naseema17/employee-management-backend/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorBody {
	t.Helper()
	var body ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"unknown user", auth.ErrUserNotFound, http.StatusNotFound, "User does not exist"},
		{"bad password", auth.ErrInvalidPassword, http.StatusUnauthorized, "Invalid password"},
		{"wrong old password", auth.ErrWrongOldPassword, http.StatusBadRequest, "Wrong old password"},
		{"duplicate email", user.ErrUserEmailExists, http.StatusBadRequest, "User already registered in employee system"},
		{"wrapped not found", fmt.Errorf("failed to update: %w", employee.ErrEmployeeNotFound), http.StatusNotFound, "Employee not found"},
		{"leave not found", leave.ErrLeaveNotFound, http.StatusNotFound, "Leave not found"},
		{"forbidden", auth.ErrForbidden, http.StatusForbidden, "You are not allowed to perform this action"},
		{"unexpected", errors.New("connection refused"), http.StatusInternalServerError, "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)

			assert.Equal(t, tt.status, rec.Code)
			body := decodeError(t, rec)
			assert.False(t, body.Success)
			assert.Equal(t, tt.message, body.Error)
		})
	}
}

func TestHandleError_Validation(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, validator.Single("email", "email is required"))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "email is required", body.Details["email"])
}

func TestSuccess_FlatEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, Body{"removed": 2})

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(2), body["removed"])
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}
