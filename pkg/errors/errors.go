package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType classifies a failure
type ErrorType string

const (
	// Local errors, raised before any request leaves the process
	ErrorTypeValidation ErrorType = "VALIDATION"

	// Upstream store errors
	ErrorTypeNotFound ErrorType = "NOT_FOUND"
	ErrorTypeNetwork  ErrorType = "NETWORK"
	ErrorTypeAPI      ErrorType = "API"

	ErrorTypeInternal ErrorType = "INTERNAL"
)

// AppError is the failure value every layer of the sync core returns.
// Validation errors never reach the network layer; network and API errors
// carry enough context for the caller to render a human-readable message.
type AppError struct {
	Type       ErrorType              `json:"type"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	Cause      error                  `json:"-"`
	HTTPStatus int                    `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithCause wraps an underlying error
func (e *AppError) WithCause(err error) *AppError {
	e.Cause = err
	return e
}

// Field returns the violated field name for validation errors, or "".
func (e *AppError) Field() string {
	if f, ok := e.Details["field"].(string); ok {
		return f
	}
	return ""
}

// NewValidationError creates a pre-submission validation error
func NewValidationError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewFieldValidationError creates a validation error naming the violated field
func NewFieldValidationError(field, message string) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Message:    message,
		Details:    map[string]interface{}{"field": field},
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
	}
}

// NewNetworkError creates a transport-level error (store unreachable)
func NewNetworkError(message string, err error) *AppError {
	return &AppError{
		Type:       ErrorTypeNetwork,
		Message:    message,
		Cause:      err,
		HTTPStatus: http.StatusBadGateway,
	}
}

// NewAPIError creates an error for a non-2xx response from the store
func NewAPIError(status int, message string) *AppError {
	return &AppError{
		Type:       ErrorTypeAPI,
		Message:    message,
		Details:    map[string]interface{}{"status": status},
		HTTPStatus: status,
	}
}

// NewInternalError creates an internal error
func NewInternalError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// GetAppError extracts AppError from an error chain
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsType checks if an error is of a specific type
func IsType(err error, errType ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == errType
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return IsType(err, ErrorTypeNotFound)
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return IsType(err, ErrorTypeValidation)
}

// IsNetwork checks if an error is a transport error
func IsNetwork(err error) bool {
	return IsType(err, ErrorTypeNetwork)
}

// IsAPI checks if an error is an upstream rejection
func IsAPI(err error) bool {
	return IsType(err, ErrorTypeAPI)
}

// APIStatus returns the upstream HTTP status carried by an API error, or 0.
func APIStatus(err error) int {
	appErr := GetAppError(err)
	if appErr == nil {
		return 0
	}
	if s, ok := appErr.Details["status"].(int); ok {
		return s
	}
	return 0
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}

	if appErr := GetAppError(err); appErr != nil {
		appErr.Message = fmt.Sprintf("%s: %s", message, appErr.Message)
		return appErr
	}

	return NewInternalError(message).WithCause(err)
}
