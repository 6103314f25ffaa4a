// Package errors defines the application error taxonomy: validation,
// authorization, not-found, conflict and capacity failures, plus the wrapped
// database error. Every failure surfaced to a caller is one of these.
package errors

import (
	"fmt"
	"net/http"

	"eventer/internal/errors"
)

// Business error codes carried by AppError values.
const (
	CodeValidation   = "VALIDATION_FAILED"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeCapacity     = "EVENT_FULL"
	CodeDatabase     = "DATABASE_EXECUTE_FAILED"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// NewValidationError creates a validation failure carrying the human-readable
// reason detected at entity construction.
func NewValidationError(reason string) *BaseError {
	return NewBaseError(http.StatusBadRequest, CodeValidation, reason, "")
}

// NewEventNotFoundError creates the not-found failure for an unknown event id.
func NewEventNotFoundError(id int64) *BaseError {
	return NewBaseError(http.StatusNotFound, CodeNotFound, fmt.Sprintf("No event with id %d found.", id), "")
}

// Predefined error values. Comparisons use errors.Is against these pointers.
var (
	// Authorization failures for role-gated event mutation.
	ErrEditForbidden = NewBaseError(
		http.StatusForbidden,
		CodeForbidden,
		"Only an administrator or event moderator can edit events.",
		"",
	)

	ErrDeleteForbidden = NewBaseError(
		http.StatusForbidden,
		CodeForbidden,
		"Only an administrator can delete events.",
		"",
	)

	// Participation failures.
	ErrAlreadyJoined = NewBaseError(
		http.StatusConflict,
		CodeConflict,
		"User already joined this event",
		"",
	)

	ErrEventFull = NewBaseError(
		http.StatusConflict,
		CodeCapacity,
		"Event is full",
		"",
	)

	// Account and profile failures.
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		CodeNotFound,
		"User not found",
		"",
	)

	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		CodeNotFound,
		"No profile found for this user.",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		CodeConflict,
		"Username or email is already registered",
		"",
	)

	ErrProfileAlreadyExists = NewBaseError(
		http.StatusConflict,
		CodeConflict,
		"Profile already completed for this account",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		CodeUnauthorized,
		"Invalid username or password",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return CodeDatabase
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database Error"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
