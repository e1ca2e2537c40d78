package errors

import (
	"net/http"

	"surveyor/internal/errors"
)

// AppError is an error the delivery layer can render for clients.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
	Details() string
}

// BaseError is a taxonomy entry. Detailed copies match their origin under errors.Is.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{httpCode: httpCode, errorCode: errorCode, message: message, details: details}
}

func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && e.errorCode == t.errorCode
}

// WithDetails returns a copy carrying client-facing details.
func (e *BaseError) WithDetails(details string) *BaseError {
	cp := *e
	cp.details = details

	return &cp
}

var (
	// InvalidInput
	ErrInvalidInput = NewBaseError(http.StatusBadRequest, "INVALID_INPUT", "invalid input", "")

	// Unauthorized. Every token and credential failure collapses to this one value.
	ErrUnauthorized = NewBaseError(http.StatusUnauthorized, "UNAUTHORIZED", "authentication failed", "")

	// NotFound
	ErrPrincipalNotFound = NewBaseError(http.StatusNotFound, "PRINCIPAL_NOT_FOUND", "principal not found", "")

	// Conflict
	ErrPrincipalAlreadyExists = NewBaseError(http.StatusConflict, "PRINCIPAL_ALREADY_EXISTS", "this email is already registered", "")

	// Unavailable
	ErrUnavailable = NewBaseError(http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "service temporarily unavailable", "")

	ErrPasswordHashFailed = NewBaseError(http.StatusInternalServerError, "PASSWORD_HASH_FAILED", "password processing failed", "")
	ErrTokenIssueFailed   = NewBaseError(http.StatusInternalServerError, "TOKEN_ISSUE_FAILED", "session token could not be issued", "")
	ErrInternalError      = NewBaseError(http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error", "")
)

// DatabaseExecuteError wraps a store failure. It reports as ErrUnavailable to
// clients and still unwraps to the driver error for logs.
type DatabaseExecuteError struct {
	err       error
	operation string
}

func NewDatabaseExecuteError(err error, operation string) AppError {
	return &DatabaseExecuteError{err: err, operation: operation}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, e.operation+": database execution failed").Error()
}

func (e *DatabaseExecuteError) Unwrap() error { return e.err }

func (e *DatabaseExecuteError) Is(target error) bool {
	return target == ErrUnavailable
}

func (e *DatabaseExecuteError) HTTPCode() int     { return ErrUnavailable.HTTPCode() }
func (e *DatabaseExecuteError) ErrorCode() string { return ErrUnavailable.ErrorCode() }
func (e *DatabaseExecuteError) Message() string   { return ErrUnavailable.Message() }
func (e *DatabaseExecuteError) Details() string   { return e.operation }
