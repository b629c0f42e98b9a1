package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrBadRequest       = errors.New("bad request")

	// Authentication errors (admin surface)
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
)

// Subscription errors
var (
	ErrAlreadySubscribed = errors.New("email already subscribed")
	ErrEmailSendFailed   = errors.New("email delivery failed")
)

// Student hub errors
var (
	ErrSessionNotFound     = errors.New("wizard session not found")
	ErrRequestNotFound     = errors.New("student request not found")
	ErrPaymentRequired     = errors.New("payment not completed")
	ErrPaymentNotConfirmed = errors.New("payment not confirmed")
	ErrCheckoutFailed      = errors.New("checkout session creation failed")
	ErrInvalidRequestType  = errors.New("unknown request type")
)

// Content errors
var (
	ErrUnknownIcon     = errors.New("unknown icon identifier")
	ErrUnknownTemplate = errors.New("unknown email template")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewValidationError creates a validation error carrying per-field messages
func NewValidationError(fields map[string]string) *CustomError {
	details := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		details[k] = v
	}
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: "validation failed",
		Details: details,
	}
}
