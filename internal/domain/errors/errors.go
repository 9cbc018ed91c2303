// Package errors defines the application errors returned by usecases and rendered by the API.
package errors

import (
	"net/http"

	"pricing/internal/errors"
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

// Is matches any BaseError carrying the same error code, so copies made by WithDetails
// still satisfy errors.Is against the predefined values.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
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

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Pricing engine errors
	ErrNoActiveRules = NewBaseError(
		http.StatusUnprocessableEntity,
		"NO_ACTIVE_RULES",
		"No active pricing rules",
		"",
	)

	ErrEmptyCategory = NewBaseError(
		http.StatusNotFound,
		"EMPTY_CATEGORY",
		"No products found for the selected category",
		"",
	)

	ErrInvalidPercent = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PERCENT",
		"Percent must be a positive number",
		"",
	)

	ErrRepositoryUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"REPOSITORY_UNAVAILABLE",
		"Storage is unavailable, please try again",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"PRICE_CONFLICT",
		"Price was changed by someone else",
		"",
	)

	// Lookup errors
	ErrRuleNotFound = NewBaseError(
		http.StatusNotFound,
		"RULE_NOT_FOUND",
		"Pricing rule not found",
		"",
	)

	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)
)

// RepositoryUnavailableError wraps an I/O failure from a storage collaborator.
// It satisfies errors.Is(err, ErrRepositoryUnavailable).
type RepositoryUnavailableError struct {
	err     error
	details string
}

// NewRepositoryUnavailableError creates a storage-related error
func NewRepositoryUnavailableError(err error, details string) AppError {
	return &RepositoryUnavailableError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *RepositoryUnavailableError) Error() string {
	if e.err == nil {
		return ErrRepositoryUnavailable.message + ": " + e.details
	}

	return errors.Wrap(e.err, e.details).Error()
}

// Unwrap returns the underlying I/O error
func (e *RepositoryUnavailableError) Unwrap() error {
	return e.err
}

// Is matches ErrRepositoryUnavailable and copies of it
func (e *RepositoryUnavailableError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == ErrRepositoryUnavailable.errorCode
}

// HTTPCode returns the HTTP status code
func (e *RepositoryUnavailableError) HTTPCode() int {
	return ErrRepositoryUnavailable.HTTPCode()
}

// ErrorCode returns the business error code
func (e *RepositoryUnavailableError) ErrorCode() string {
	return ErrRepositoryUnavailable.ErrorCode()
}

// Message returns the user-friendly error message
func (e *RepositoryUnavailableError) Message() string {
	return ErrRepositoryUnavailable.Message()
}

// Details returns detailed error information
func (e *RepositoryUnavailableError) Details() string {
	return e.details
}
