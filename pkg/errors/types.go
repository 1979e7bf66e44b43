package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode represents a structured error code
type ErrorCode string

const (
	// Relay errors
	ErrCodeMissingParameter ErrorCode = "MISSING_PARAMETER"
	ErrCodeForbiddenDomain  ErrorCode = "FORBIDDEN_DOMAIN"
	ErrCodeUpstreamStatus   ErrorCode = "UPSTREAM_STATUS"
	ErrCodeUnknownFailure   ErrorCode = "UNKNOWN_FAILURE"

	// Resource errors
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// Validation errors
	ErrCodeValidation ErrorCode = "VALIDATION"

	// Storage errors
	ErrCodeDatabase ErrorCode = "DATABASE"

	// Configuration errors
	ErrCodeConfigInvalid ErrorCode = "CONFIG_INVALID"

	ErrCodeInternal ErrorCode = "INTERNAL"
)

// Public messages for the relay taxonomy. Browser clients match on these.
const (
	MsgMissingParameter = "URL parameter required"
	MsgForbiddenDomain  = "Domain not allowed"
	MsgUpstreamStatus   = "Failed to fetch image"
	MsgUnknownFailure   = "Proxy failed"
)

// AppError represents a structured application error
type AppError struct {
	Code     ErrorCode      `json:"code"`
	Message  string         `json:"message"`
	Details  map[string]any `json:"details,omitempty"`
	Cause    error          `json:"-"`
	HTTPCode int            `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying cause
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// GetHTTPCode returns the appropriate HTTP status code
func (e *AppError) GetHTTPCode() int {
	if e.HTTPCode != 0 {
		return e.HTTPCode
	}
	return getDefaultHTTPCode(e.Code)
}

// New creates a new AppError
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: getDefaultHTTPCode(code),
	}
}

// Newf creates a new AppError with formatted message
func Newf(code ErrorCode, format string, args ...any) *AppError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with an AppError
func Wrap(cause error, code ErrorCode, message string) *AppError {
	return New(code, message).WithCause(cause)
}

func getDefaultHTTPCode(code ErrorCode) int {
	switch code {
	case ErrCodeMissingParameter, ErrCodeValidation:
		return http.StatusBadRequest
	case ErrCodeForbiddenDomain:
		return http.StatusForbidden
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeUpstreamStatus:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// MissingParameter is returned when the relay is called without a target URL
func MissingParameter(param string) *AppError {
	return New(ErrCodeMissingParameter, MsgMissingParameter).
		WithDetail("param", param)
}

// ForbiddenDomain is returned when a relay target matches no allow-list token
func ForbiddenDomain(target string) *AppError {
	return New(ErrCodeForbiddenDomain, MsgForbiddenDomain).
		WithDetail("url", target)
}

// UpstreamStatus carries a non-success upstream status through to the client.
func UpstreamStatus(status int) *AppError {
	err := New(ErrCodeUpstreamStatus, MsgUpstreamStatus).
		WithDetail("upstream_status", status)
	err.HTTPCode = status
	return err
}

// UnknownFailure wraps any transport or read failure in the relay
func UnknownFailure(cause error) *AppError {
	return Wrap(cause, ErrCodeUnknownFailure, MsgUnknownFailure)
}

// NotFound creates a not found error
func NotFound(resource string, id any) *AppError {
	return New(ErrCodeNotFound, fmt.Sprintf("%s not found", resource)).
		WithDetail("resource", resource).
		WithDetail("id", id)
}

// ValidationError creates a validation error
func ValidationError(field string, reason string) *AppError {
	return New(ErrCodeValidation, fmt.Sprintf("validation failed for field '%s': %s", field, reason)).
		WithDetail("field", field).
		WithDetail("reason", reason)
}

// DatabaseError creates a database error
func DatabaseError(operation string, cause error) *AppError {
	return Wrap(cause, ErrCodeDatabase, fmt.Sprintf("database %s failed", operation)).
		WithDetail("operation", operation)
}

// ConfigError creates a configuration error
func ConfigError(key string, reason string) *AppError {
	return Newf(ErrCodeConfigInvalid, "configuration error for '%s': %s", key, reason).
		WithDetail("key", key).
		WithDetail("reason", reason)
}

// As returns the AppError in err's chain, if any
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Is checks if an error is of a specific type
func Is(err error, code ErrorCode) bool {
	if appErr, ok := As(err); ok {
		return appErr.Code == code
	}
	return false
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	if appErr, ok := As(err); ok {
		return appErr.Code
	}
	return ErrCodeInternal
}

// GetHTTPCode extracts the HTTP status code from an error
func GetHTTPCode(err error) int {
	if appErr, ok := As(err); ok {
		return appErr.GetHTTPCode()
	}
	return http.StatusInternalServerError
}
