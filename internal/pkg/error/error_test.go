package error

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainConstructors(t *testing.T) {
	testCases := []struct {
		name      string
		err       *Error
		httpCode  int
		errorCode int
	}{
		{"already migrated", AlreadyMigrated("x"), http.StatusConflict, ALREADY_MIGRATED},
		{"circular supervision", CircularSupervision("x"), http.StatusConflict, CIRCULAR_SUPERVISION},
		{"self supervision", SelfSupervision("x"), http.StatusBadRequest, SELF_SUPERVISION},
		{"employee id exists", EmployeeIDExists("x"), http.StatusConflict, EMPLOYEE_ID_EXISTS},
		{"has active subordinates", HasActiveSubordinates("x"), http.StatusConflict, HAS_ACTIVE_SUBORDINATES},
		{"invalid status transition", InvalidStatusTransition("x"), http.StatusBadRequest, INVALID_STATUS_TRANSITION},
		{"email exists", EmailExists("x"), http.StatusConflict, EMAIL_EXISTS},
		{"not terminated", NotTerminated("x"), http.StatusBadRequest, NOT_TERMINATED},
		{"supervisor inactive", SupervisorInactive("x"), http.StatusBadRequest, SUPERVISOR_INACTIVE},
		{"invalid province", InvalidProvince("x"), http.StatusBadRequest, INVALID_PROVINCE},
		{"invalid document type", InvalidDocumentType("x"), http.StatusBadRequest, INVALID_DOCUMENT_TYPE},
		{"rate limit exceeded", RateLimitExceeded("x"), http.StatusTooManyRequests, RATE_LIMIT_EXCEEDED},
		{"storage error", StorageError("x"), http.StatusBadGateway, STORAGE_ERROR},
		{"invalid session", InvalidSession("x"), http.StatusUnauthorized, INVALID_SESSION},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.httpCode, tc.err.HttpCode())
			assert.Equal(t, tc.errorCode, tc.err.ErrorCode())
			assert.Equal(t, "x", tc.err.ErrorDesc())
		})
	}
}

func TestFrom(t *testing.T) {
	original := NotFound("gone")
	assert.Same(t, original, From(original))

	wrapped := From(errors.New("plain"))
	assert.Equal(t, http.StatusInternalServerError, wrapped.HttpCode())
	assert.Equal(t, INTERNAL_ERROR, wrapped.ErrorCode())
}
