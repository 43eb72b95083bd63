// Package apperr defines the error taxonomy shared by the write operations,
// the reporting engine and the persistence gateway. Handlers translate an
// AppError into an HTTP status with HTTPStatus.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Type classifies an AppError.
type Type string

const (
	TypeValidation          Type = "validation_error"
	TypeConstraintViolation Type = "constraint_violation"
	TypeConnection          Type = "connection_error"
	TypeNotFound            Type = "not_found"
	TypeInternal            Type = "internal_error"
)

// AppError carries a classified failure. Err keeps the underlying cause
// (usually a driver error) so callers can still inspect it with errors.As.
type AppError struct {
	Type    Type   `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Type, e.Message)
	if e.Details != "" {
		msg += " (" + e.Details + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *AppError) Unwrap() error { return e.Err }

// NewValidationError reports caller input that fails a declared constraint.
func NewValidationError(message string, details ...string) *AppError {
	return &AppError{Type: TypeValidation, Message: message, Details: first(details)}
}

// NewConstraintViolation reports a write the store rejected (FK, PK, type).
func NewConstraintViolation(message string, cause error) *AppError {
	return &AppError{Type: TypeConstraintViolation, Message: message, Err: cause}
}

// NewConnectionError reports an unreachable or broken store connection.
func NewConnectionError(message string, cause error) *AppError {
	return &AppError{Type: TypeConnection, Message: message, Err: cause}
}

// NewNotFoundError reports a lookup by identity that matched no row.
func NewNotFoundError(message string, details ...string) *AppError {
	return &AppError{Type: TypeNotFound, Message: message, Details: first(details)}
}

// NewInternalError wraps anything that does not fit the other types.
func NewInternalError(message string, cause error) *AppError {
	return &AppError{Type: TypeInternal, Message: message, Err: cause}
}

func first(details []string) string {
	if len(details) > 0 {
		return details[0]
	}
	return ""
}

// Get extracts the AppError from an error chain.
func Get(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func is(err error, t Type) bool {
	appErr, ok := Get(err)
	return ok && appErr.Type == t
}

func IsValidation(err error) bool          { return is(err, TypeValidation) }
func IsConstraintViolation(err error) bool { return is(err, TypeConstraintViolation) }
func IsConnection(err error) bool          { return is(err, TypeConnection) }
func IsNotFound(err error) bool            { return is(err, TypeNotFound) }

// HTTPStatus maps an error to the status code the presentation layer uses.
func HTTPStatus(err error) int {
	appErr, ok := Get(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch appErr.Type {
	case TypeValidation:
		return http.StatusBadRequest
	case TypeConstraintViolation:
		return http.StatusConflict
	case TypeConnection:
		return http.StatusServiceUnavailable
	case TypeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
