package errors

import (
	"net/http"
	"testing"

	"surveyor/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesDetailedCopies(t *testing.T) {
	detailed := ErrInvalidInput.WithDetails("email is required")
	wrapped := errors.Wrap(detailed, "register failed")

	assert.True(t, errors.Is(wrapped, ErrInvalidInput))
	assert.False(t, errors.Is(wrapped, ErrUnauthorized))

	var appErr AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "email is required", appErr.Details())
}

func TestDatabaseExecuteError_IsUnavailable(t *testing.T) {
	cause := errors.New("connection refused")
	err := errors.Wrap(NewDatabaseExecuteError(cause, "find principal"), "login failed")

	assert.True(t, errors.Is(err, ErrUnavailable))
	assert.True(t, errors.Is(err, cause))

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusServiceUnavailable, appErr.HTTPCode())
	assert.Equal(t, "SERVICE_UNAVAILABLE", appErr.ErrorCode())
	assert.Equal(t, "find principal", appErr.Details())
}
